package domain

import (
	"github.com/shopspring/decimal"

	money "github.com/homecalc/homeownership-calculator/pkg/decimal"
)

// Configuration is the top-level scenario file.
type Configuration struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// Scenario is one named set of purchase assumptions as written in a scenario
// file. Nil fields fall back to the same defaults as the web form.
type Scenario struct {
	Name string `yaml:"name" json:"name"`

	Price       *money.Money `yaml:"price,omitempty" json:"price,omitempty"`
	DownPayment *money.Money `yaml:"down_payment,omitempty" json:"down_payment,omitempty"`
	InitialRent *money.Money `yaml:"initial_rent,omitempty" json:"initial_rent,omitempty"`

	MortgageRate *decimal.Decimal `yaml:"mortgage_rate,omitempty" json:"mortgage_rate,omitempty"`
	Appreciation *decimal.Decimal `yaml:"appreciation,omitempty" json:"appreciation,omitempty"`
	StockReturn  *decimal.Decimal `yaml:"stock_return,omitempty" json:"stock_return,omitempty"`
	RentGrowth   *decimal.Decimal `yaml:"rent_growth,omitempty" json:"rent_growth,omitempty"`
	LoanYears    *decimal.Decimal `yaml:"loan_years,omitempty" json:"loan_years,omitempty"`

	PropertyTax *decimal.Decimal `yaml:"property_tax,omitempty" json:"property_tax,omitempty"`
	Insurance   *decimal.Decimal `yaml:"insurance,omitempty" json:"insurance,omitempty"`
	Maintenance *decimal.Decimal `yaml:"maintenance,omitempty" json:"maintenance,omitempty"`
	BuyClosing  *decimal.Decimal `yaml:"buy_closing,omitempty" json:"buy_closing,omitempty"`
	SellCost    *decimal.Decimal `yaml:"sell_cost,omitempty" json:"sell_cost,omitempty"`

	CapGainsFed *decimal.Decimal `yaml:"cap_gains_fed,omitempty" json:"cap_gains_fed,omitempty"`
	NIIT        *decimal.Decimal `yaml:"niit,omitempty" json:"niit,omitempty"`
	StateRate   *decimal.Decimal `yaml:"state_rate,omitempty" json:"state_rate,omitempty"`
	MarginalTax *decimal.Decimal `yaml:"marginal_tax,omitempty" json:"marginal_tax,omitempty"`
}
