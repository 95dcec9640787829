package calculation

import (
	"math"

	"github.com/homecalc/homeownership-calculator/internal/domain"
)

const monthsPerYear = 12

// maxPreallocYears caps up-front slice capacity; longer terms grow on append.
const maxPreallocYears = 100

// BuildYearlySchedule simulates monthly amortization and aggregates it into
// one row per loan year, layering recurring costs, the interest deduction,
// avoided rent and the economics of selling at each year end. It also returns
// the combined capital gains rate used for the sale simulation.
//
// A non-positive LoanYears yields no rows. StockReturnPct and BuyClosingPct
// do not enter any figure.
func BuildYearlySchedule(in domain.ProjectionInput) ([]domain.YearlyRow, float64) {
	capGainsTotal := in.CapGainsTotalPct()
	if in.LoanYears <= 0 {
		return []domain.YearlyRow{}, capGainsTotal
	}

	loan := newAmortizer(in.LoanAmount(), in.MortgageRatePct, in.LoanYears*monthsPerYear)
	currentAnnualRent := in.InitialMonthlyRent * monthsPerYear

	rows := make([]domain.YearlyRow, 0, min(in.LoanYears, maxPreallocYears))
	for year := 1; year <= in.LoanYears; year++ {
		var yearInterest, yearPrincipal float64
		for m := 0; m < monthsPerYear; m++ {
			if loan.paidOff() {
				break
			}
			interest, principal := loan.step()
			yearInterest += interest
			yearPrincipal += principal
		}

		// Appreciation always compounds from the purchase price.
		homePrice := in.Price * math.Pow(1+in.AppreciationPct/100, float64(year))

		propertyTax := homePrice * (in.PropertyTaxPct / 100)
		insurance := homePrice * (in.InsurancePct / 100)
		maintenance := homePrice * (in.MaintenancePct / 100)

		taxSavings := yearInterest * (in.MarginalTaxPct / 100)
		savedRent := currentAnnualRent
		mortgagePayment := yearInterest + yearPrincipal
		netCashflow := mortgagePayment + propertyTax + insurance + maintenance - taxSavings - savedRent

		balance := math.Max(loan.balance, 0)
		rows = append(rows, domain.YearlyRow{
			Year:            year,
			HomePrice:       homePrice,
			MortgageBalance: balance,
			Equity:          homePrice - balance,
			InterestPaid:    yearInterest,
			PrincipalPaid:   yearPrincipal,
			MortgagePayment: mortgagePayment,
			PropertyTax:     propertyTax,
			Insurance:       insurance,
			Maintenance:     maintenance,
			TaxSavings:      taxSavings,
			SavedRent:       savedRent,
			NetCashflow:     netCashflow,
			NetProceeds:     saleProceeds(homePrice, balance, in, capGainsTotal),
		})

		currentAnnualRent *= 1 + in.RentGrowthPct/100
	}
	return rows, capGainsTotal
}

// saleProceeds is the cash left after selling at salePrice, paying selling
// costs, retiring the outstanding balance and paying capital gains tax. The
// gain is measured against the purchase price; a loss is not taxed and earns
// no credit.
func saleProceeds(salePrice, balance float64, in domain.ProjectionInput, capGainsTotalPct float64) float64 {
	sellingCosts := salePrice * (in.SellCostPct / 100)
	capitalGain := salePrice - in.Price
	capitalGainTax := math.Max(capitalGain, 0) * (capGainsTotalPct / 100)
	return salePrice - sellingCosts - balance - capitalGainTax
}
