package output

import "github.com/homecalc/homeownership-calculator/internal/domain"

// column describes one money column of the yearly table. CSV and HTML both
// iterate this list, so they always agree on order and values.
type column struct {
	Key   string
	Title string
	Value func(domain.YearlyRow) float64
}

var rowColumns = []column{
	{"home_price", "Home Price", func(r domain.YearlyRow) float64 { return r.HomePrice }},
	{"mort_balance", "Mortgage Balance", func(r domain.YearlyRow) float64 { return r.MortgageBalance }},
	{"equity", "Equity", func(r domain.YearlyRow) float64 { return r.Equity }},
	{"interest_paid", "Interest Paid (yr)", func(r domain.YearlyRow) float64 { return r.InterestPaid }},
	{"principal_paid", "Principal Paid (yr)", func(r domain.YearlyRow) float64 { return r.PrincipalPaid }},
	{"mortgage_payment", "Annual Mortgage Payment", func(r domain.YearlyRow) float64 { return r.MortgagePayment }},
	{"property_tax", "Property Tax", func(r domain.YearlyRow) float64 { return r.PropertyTax }},
	{"insurance", "Insurance", func(r domain.YearlyRow) float64 { return r.Insurance }},
	{"maintenance", "Maintenance", func(r domain.YearlyRow) float64 { return r.Maintenance }},
	{"tax_savings", "Tax Savings (interest * marginal)", func(r domain.YearlyRow) float64 { return r.TaxSavings }},
	{"saved_rent", "Saved Rent (yr)", func(r domain.YearlyRow) float64 { return r.SavedRent }},
	{"net_cashflow", "Net Cashflow This Year (owning)", func(r domain.YearlyRow) float64 { return r.NetCashflow }},
	{"net_proceeds", "If sold this year: Net Proceeds after sale & cap gains", func(r domain.YearlyRow) float64 { return r.NetProceeds }},
}

// CSVHeader is the header record of the CSV export.
var CSVHeader = func() []string {
	h := []string{"year"}
	for _, c := range rowColumns {
		h = append(h, c.Key)
	}
	return h
}()

func rowValues(r domain.YearlyRow, format func(float64) string) []string {
	out := make([]string, 0, len(rowColumns))
	for _, c := range rowColumns {
		out = append(out, format(c.Value(r)))
	}
	return out
}
