package calculation

import (
	"context"
	"fmt"

	"github.com/homecalc/homeownership-calculator/internal/domain"
)

// CalculationEngine runs projections and scenario comparisons. It holds no
// per-request state and is safe for concurrent use.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Run builds the yearly schedule and its summary for a single input.
func (ce *CalculationEngine) Run(ctx context.Context, in domain.ProjectionInput) (*domain.Projection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, capGainsTotal := BuildYearlySchedule(in)
	summary := Summarize(in, rows)

	ce.Logger.Debugf("projection built: years=%d loan=%.2f payment=%.2f cap_gains_total=%.2f",
		len(rows), summary.LoanAmount, summary.MonthlyPayment, capGainsTotal)
	if in.LoanYears <= 0 {
		ce.Logger.Warnf("loan years %d produces an empty schedule", in.LoanYears)
	}

	return &domain.Projection{
		Input:            in,
		Rows:             rows,
		CapGainsTotalPct: capGainsTotal,
		Summary:          summary,
	}, nil
}

// RunScenarios runs every named scenario in order and ranks the results.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, scenarios []domain.NamedInput) (*domain.ScenarioComparison, error) {
	comparison := &domain.ScenarioComparison{
		Projections: make([]domain.Projection, 0, len(scenarios)),
	}
	for _, sc := range scenarios {
		p, err := ce.Run(ctx, sc.Input)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		p.Name = sc.Name
		comparison.Projections = append(comparison.Projections, *p)
	}
	comparison.BestByProceeds, comparison.EarliestBreakEven = rankProjections(comparison.Projections)
	ce.Logger.Infof("ran %d scenarios (best by proceeds: %q)", len(scenarios), comparison.BestByProceeds)
	return comparison, nil
}

// rankProjections picks the scenario with the highest final net proceeds and
// the one with the earliest break-even year. Ties keep the first scenario.
func rankProjections(projections []domain.Projection) (bestProceeds, earliestBreakEven string) {
	var best *domain.Projection
	var earliest *domain.Projection
	for i := range projections {
		p := &projections[i]
		if len(p.Rows) > 0 && (best == nil || p.Summary.FinalNetProceeds > best.Summary.FinalNetProceeds) {
			best = p
		}
		if p.Summary.BreakEvenYear > 0 && (earliest == nil || p.Summary.BreakEvenYear < earliest.Summary.BreakEvenYear) {
			earliest = p
		}
	}
	if best != nil {
		bestProceeds = best.Name
	}
	if earliest != nil {
		earliestBreakEven = earliest.Name
	}
	return bestProceeds, earliestBreakEven
}
