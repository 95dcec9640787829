package output

import (
	"encoding/json"

	"github.com/homecalc/homeownership-calculator/internal/domain"
)

// JSONFormatter serializes the projection as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(p *domain.Projection) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// FormatComparison serializes a whole scenario comparison.
func (j JSONFormatter) FormatComparison(c *domain.ScenarioComparison) ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}
