package output

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/homecalc/homeownership-calculator/internal/domain"
)

// ComparisonFormatter is implemented by formatters that can also render a
// whole scenario comparison in one document.
type ComparisonFormatter interface {
	FormatComparison(c *domain.ScenarioComparison) ([]byte, error)
}

// FormatComparison writes every scenario's rows into one CSV, prefixed with
// the scenario name, in scenario order.
func (c CSVExporter) FormatComparison(cmp *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	w.UseCRLF = true
	header := append([]string{"scenario"}, CSVHeader...)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range cmp.Projections {
		for _, r := range p.Rows {
			record := append([]string{p.Name, strconv.Itoa(r.Year)}, rowValues(r, FormatFixed)...)
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// WriteComparison writes a comparison document for formatters that support
// one. ok is false when f renders single projections only.
func WriteComparison(f Formatter, cmp *domain.ScenarioComparison, dir string) (filename string, ok bool, err error) {
	cf, ok := f.(ComparisonFormatter)
	if !ok {
		return "", false, nil
	}
	data, err := cf.FormatComparison(cmp)
	if err != nil {
		return "", true, err
	}
	filename = filepath.Join(dir, reportFilename("comparison", nowFunc(), Extension(f.Name())))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", true, err
	}
	return filename, true, nil
}
