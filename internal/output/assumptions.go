package output

import (
	"fmt"

	"github.com/homecalc/homeownership-calculator/internal/domain"
)

// GenerateAssumptions lists the modeling assumptions behind a projection,
// filled in with the rates it actually used.
func GenerateAssumptions(in domain.ProjectionInput) []string {
	return []string{
		"Mortgage amortization is monthly; results are aggregated yearly",
		fmt.Sprintf("Home price appreciation: %s annually, compounded from the purchase price", FormatPercentage(in.AppreciationPct)),
		fmt.Sprintf("Property tax %s, insurance %s and maintenance %s of the current home price each year",
			FormatPercentage(in.PropertyTaxPct), FormatPercentage(in.InsurancePct), FormatPercentage(in.MaintenancePct)),
		fmt.Sprintf("Mortgage interest deducted at a %s marginal rate", FormatPercentage(in.MarginalTaxPct)),
		fmt.Sprintf("Rent avoided by owning starts at %s/month and grows %s annually",
			FormatCurrency(in.InitialMonthlyRent), FormatPercentage(in.RentGrowthPct)),
		fmt.Sprintf("Selling costs %s of the sale price; gains over the purchase price taxed at %s",
			FormatPercentage(in.SellCostPct), FormatPercentage(in.CapGainsTotalPct())),
		"Stock market returns and buy closing costs are not modeled",
	}
}
