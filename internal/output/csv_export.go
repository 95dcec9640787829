package output

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/homecalc/homeownership-calculator/internal/domain"
)

// CSVExporter writes the yearly schedule as CSV, one record per year.
type CSVExporter struct{}

func (c CSVExporter) Name() string { return "csv" }

func (c CSVExporter) Format(p *domain.Projection) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := WriteCSV(buf, p.Rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCSV writes the header and one record per row, CRLF terminated. The
// year is an integer; every other field has exactly two decimals.
func WriteCSV(w io.Writer, rows []domain.YearlyRow) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := append([]string{strconv.Itoa(r.Year)}, rowValues(r, FormatFixed)...)
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
