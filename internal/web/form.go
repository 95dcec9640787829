package web

import (
	"strconv"

	"github.com/homecalc/homeownership-calculator/internal/config"
)

type formField struct {
	Key   string
	Label string
	Step  string
	Value string
}

type indexPage struct {
	Primary     []formField
	Assumptions []formField
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// newIndexPage pre-fills the purchase fields with a sample home and the
// assumption fields with the intake defaults.
func newIndexPage() indexPage {
	def := func(key, label string) formField {
		return formField{Key: key, Label: label, Step: "0.01", Value: num(config.Defaults[key])}
	}
	return indexPage{
		Primary: []formField{
			{Key: config.KeyPrice, Label: "Total cost of the house (USD)", Step: "0.01", Value: "600000"},
			{Key: config.KeyDownPayment, Label: "Down payment (USD)", Step: "0.01", Value: "120000"},
			{Key: config.KeyMortgageRate, Label: "Mortgage interest rate (annual %, e.g. 3.5)", Step: "0.01", Value: "3.5"},
			{Key: config.KeyAppreciation, Label: "Home price appreciation per year (%)", Step: "0.01", Value: "3"},
			{Key: config.KeyStockReturn, Label: "Percentage return every year if invested in stocks (annual %, S&P)", Step: "0.01", Value: "7"},
			{Key: config.KeyInitialRent, Label: "Initial monthly rent (USD)", Step: "0.01", Value: "2500"},
			{Key: config.KeyRentGrowth, Label: "Rent increase per year (%)", Step: "0.01", Value: num(config.Defaults[config.KeyRentGrowth])},
			{Key: config.KeyLoanYears, Label: "Loan tenure (years)", Step: "1", Value: num(config.Defaults[config.KeyLoanYears])},
		},
		Assumptions: []formField{
			def(config.KeyPropertyTax, "Property tax (annual % of home price)"),
			def(config.KeyInsurance, "Home insurance (annual % of home price)"),
			def(config.KeyMaintenance, "Maintenance (annual % of home price)"),
			def(config.KeyBuyClosing, "Buy closing cost (% of purchase price)"),
			def(config.KeySellCost, "Sell cost (broker+closing) (% of sale price)"),
			def(config.KeyCapGainsFed, "Federal long-term cap gains rate"),
			def(config.KeyNIIT, "Net investment income tax (NIIT %)"),
			def(config.KeyStateRate, "State capital gains / income rate (%)"),
			def(config.KeyMarginalTax, "Combined marginal income tax rate for mortgage interest deduction (%)"),
		},
	}
}
