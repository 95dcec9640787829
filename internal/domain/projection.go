package domain

// ProjectionInput holds the scalar assumptions for one calculation request.
// Percentages are expressed in percentage units (3.5 means 3.5%).
type ProjectionInput struct {
	Price              float64 `json:"price" yaml:"price"`
	DownPayment        float64 `json:"down_payment" yaml:"down_payment"`
	MortgageRatePct    float64 `json:"mortgage_rate" yaml:"mortgage_rate"`
	AppreciationPct    float64 `json:"appreciation" yaml:"appreciation"`
	StockReturnPct     float64 `json:"stock_return" yaml:"stock_return"` // accepted, never used in any row
	InitialMonthlyRent float64 `json:"initial_rent" yaml:"initial_rent"`
	RentGrowthPct      float64 `json:"rent_growth" yaml:"rent_growth"`
	LoanYears          int     `json:"loan_years" yaml:"loan_years"`

	// Recurring and transaction cost rates
	PropertyTaxPct float64 `json:"property_tax" yaml:"property_tax"`
	InsurancePct   float64 `json:"insurance" yaml:"insurance"`
	MaintenancePct float64 `json:"maintenance" yaml:"maintenance"`
	BuyClosingPct  float64 `json:"buy_closing" yaml:"buy_closing"` // accepted, never used in any row
	SellCostPct    float64 `json:"sell_cost" yaml:"sell_cost"`

	// Tax rates
	CapGainsFedPct  float64 `json:"cap_gains_fed" yaml:"cap_gains_fed"`
	NIITPct         float64 `json:"niit" yaml:"niit"`
	StateCapitalPct float64 `json:"state_rate" yaml:"state_rate"`
	MarginalTaxPct  float64 `json:"marginal_tax" yaml:"marginal_tax"`
}

// LoanAmount is the financed principal.
func (in ProjectionInput) LoanAmount() float64 {
	return in.Price - in.DownPayment
}

// CapGainsTotalPct is the combined federal, NIIT and state capital gains rate.
func (in ProjectionInput) CapGainsTotalPct() float64 {
	return in.CapGainsFedPct + in.NIITPct + in.StateCapitalPct
}

// YearlyRow is one simulated year of ownership. Field order matches the
// column order of every tabular report.
type YearlyRow struct {
	Year            int     `json:"year"`
	HomePrice       float64 `json:"home_price"`
	MortgageBalance float64 `json:"mort_balance"`
	Equity          float64 `json:"equity"`
	InterestPaid    float64 `json:"interest_paid"`
	PrincipalPaid   float64 `json:"principal_paid"`
	MortgagePayment float64 `json:"mortgage_payment"`
	PropertyTax     float64 `json:"property_tax"`
	Insurance       float64 `json:"insurance"`
	Maintenance     float64 `json:"maintenance"`
	TaxSavings      float64 `json:"tax_savings"`
	SavedRent       float64 `json:"saved_rent"`
	NetCashflow     float64 `json:"net_cashflow"`
	NetProceeds     float64 `json:"net_proceeds"`
}

// Installment is a single month of the amortization trail.
type Installment struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// ScheduleSummary aggregates a yearly schedule into headline figures.
type ScheduleSummary struct {
	LoanAmount     float64 `json:"loan_amount"`
	MonthlyPayment float64 `json:"monthly_payment"`

	TotalInterest        float64 `json:"total_interest"`
	TotalPrincipal       float64 `json:"total_principal"`
	TotalMortgagePayment float64 `json:"total_mortgage_payment"`
	TotalTaxSavings      float64 `json:"total_tax_savings"`
	TotalSavedRent       float64 `json:"total_saved_rent"`
	TotalNetCashflow     float64 `json:"total_net_cashflow"`

	FinalHomePrice   float64 `json:"final_home_price"`
	FinalEquity      float64 `json:"final_equity"`
	FinalNetProceeds float64 `json:"final_net_proceeds"`

	// PayoffYear is the first year whose displayed balance is zero (0 if never).
	PayoffYear int `json:"payoff_year"`
	// BreakEvenYear is the first year in which selling recovers the down
	// payment plus every net cashflow paid so far (0 if never).
	BreakEvenYear int `json:"break_even_year"`
}

// Projection is the full result of one calculation request.
type Projection struct {
	Name             string          `json:"name,omitempty"`
	Input            ProjectionInput `json:"input"`
	Rows             []YearlyRow     `json:"rows"`
	CapGainsTotalPct float64         `json:"cap_gains_total_pct"`
	Summary          ScheduleSummary `json:"summary"`
}

// ScenarioComparison groups the projections of several named scenarios.
type ScenarioComparison struct {
	Projections []Projection `json:"projections"`
	// BestByProceeds names the scenario with the highest final net proceeds.
	BestByProceeds string `json:"best_by_proceeds"`
	// EarliestBreakEven names the scenario that breaks even first.
	EarliestBreakEven string `json:"earliest_break_even"`
}

// NamedInput pairs a scenario name with its resolved inputs.
type NamedInput struct {
	Name  string
	Input ProjectionInput
}
