package calculation

import (
	"math"

	"github.com/homecalc/homeownership-calculator/internal/domain"
)

// Summarize reduces a yearly schedule to headline totals.
func Summarize(in domain.ProjectionInput, rows []domain.YearlyRow) domain.ScheduleSummary {
	s := domain.ScheduleSummary{
		LoanAmount:     in.LoanAmount(),
		MonthlyPayment: MonthlyPayment(in.LoanAmount(), in.MortgageRatePct, in.LoanYears*monthsPerYear),
	}
	for _, r := range rows {
		s.TotalInterest += r.InterestPaid
		s.TotalPrincipal += r.PrincipalPaid
		s.TotalMortgagePayment += r.MortgagePayment
		s.TotalTaxSavings += r.TaxSavings
		s.TotalSavedRent += r.SavedRent
		s.TotalNetCashflow += r.NetCashflow
		if s.PayoffYear == 0 && roundCents(r.MortgageBalance) == 0 {
			s.PayoffYear = r.Year
		}
	}
	if len(rows) > 0 {
		last := rows[len(rows)-1]
		s.FinalHomePrice = last.HomePrice
		s.FinalEquity = last.Equity
		s.FinalNetProceeds = last.NetProceeds
	}
	if be := CumulativeBreakEven(in.DownPayment, rows); be != nil {
		s.BreakEvenYear = be.Year
	}
	return s
}

// BreakEven describes the first year in which selling the home returns at
// least everything put into it.
type BreakEven struct {
	Year int
	// Position is net proceeds minus the down payment and all net cashflows
	// paid through Year.
	Position float64
}

// CumulativeBreakEven walks the schedule and returns the first year whose
// ownership position is non-negative, or nil if it never gets there.
func CumulativeBreakEven(downPayment float64, rows []domain.YearlyRow) *BreakEven {
	var cumulativeCashflow float64
	for _, r := range rows {
		cumulativeCashflow += r.NetCashflow
		position := r.NetProceeds - downPayment - cumulativeCashflow
		if position >= 0 {
			return &BreakEven{Year: r.Year, Position: position}
		}
	}
	return nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
