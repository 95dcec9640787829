package calculation

import (
	"math"

	"github.com/homecalc/homeownership-calculator/internal/domain"
)

// MonthlyPayment returns the fixed monthly installment for a fully amortizing
// loan. A zero-length term yields 0 and a zero rate is repaid straight-line.
// No validation is performed; negative inputs produce the arithmetic result.
func MonthlyPayment(principal, annualRatePct float64, months int) float64 {
	if months == 0 {
		return 0
	}
	r := monthlyRate(annualRatePct)
	if r == 0 {
		return principal / float64(months)
	}
	return principal * r / (1 - math.Pow(1+r, float64(-months)))
}

func monthlyRate(annualRatePct float64) float64 {
	return annualRatePct / 100 / 12
}

// amortizer steps a loan balance one month at a time.
type amortizer struct {
	balance float64
	rate    float64
	payment float64
}

func newAmortizer(principal, annualRatePct float64, months int) *amortizer {
	return &amortizer{
		balance: principal,
		rate:    monthlyRate(annualRatePct),
		payment: MonthlyPayment(principal, annualRatePct, months),
	}
}

// paidOff reports whether no further installments are due.
func (a *amortizer) paidOff() bool { return a.balance <= 0 }

// step applies one installment. The final installment is clamped so the
// principal never exceeds the outstanding balance.
func (a *amortizer) step() (interest, principal float64) {
	interest = a.balance * a.rate
	principal = a.payment - interest
	if principal > a.balance {
		principal = a.balance
	}
	a.balance -= principal
	return interest, principal
}

// MonthlyInstallments replays the amortization month by month until the
// term ends or the balance is exhausted.
func MonthlyInstallments(principal, annualRatePct float64, months int) []domain.Installment {
	if months <= 0 {
		return nil
	}
	a := newAmortizer(principal, annualRatePct, months)
	trail := make([]domain.Installment, 0, min(months, maxPreallocYears*monthsPerYear))
	for m := 1; m <= months; m++ {
		if a.paidOff() {
			break
		}
		interest, principalPart := a.step()
		trail = append(trail, domain.Installment{
			Month:     m,
			Payment:   interest + principalPart,
			Interest:  interest,
			Principal: principalPart,
			Balance:   math.Max(a.balance, 0),
		})
	}
	return trail
}
