package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/homecalc/homeownership-calculator/internal/domain"
)

// HTMLFormatter renders the results page: an inputs summary, the schedule
// summary and the yearly table. DownloadURL, when set, is linked as the CSV
// export for the same inputs.
type HTMLFormatter struct {
	DownloadURL string
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/results.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("results").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
}).Parse(htmlTemplateSource))

type tableRow struct {
	Year  int
	Cells []string
}

type resultsPage struct {
	Name             string
	Input            domain.ProjectionInput
	CapGainsTotalPct float64
	Summary          domain.ScheduleSummary
	Assumptions      []string
	Columns          []column
	Rows             []tableRow
	DownloadURL      string
}

func (h HTMLFormatter) Format(p *domain.Projection) ([]byte, error) {
	page := resultsPage{
		Name:             p.Name,
		Input:            p.Input,
		CapGainsTotalPct: p.CapGainsTotalPct,
		Summary:          p.Summary,
		Assumptions:      GenerateAssumptions(p.Input),
		Columns:          rowColumns,
		Rows:             make([]tableRow, 0, len(p.Rows)),
		DownloadURL:      h.DownloadURL,
	}
	for _, r := range p.Rows {
		page.Rows = append(page.Rows, tableRow{Year: r.Year, Cells: rowValues(r, FormatCurrency)})
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
