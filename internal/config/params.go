package config

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/homecalc/homeownership-calculator/internal/domain"
)

// Form and query parameter names shared by the web form, the CSV export link
// and scenario files.
const (
	KeyPrice        = "price"
	KeyDownPayment  = "down_payment"
	KeyMortgageRate = "mortgage_rate"
	KeyAppreciation = "appreciation"
	KeyStockReturn  = "stock_return"
	KeyInitialRent  = "initial_rent"
	KeyRentGrowth   = "rent_growth"
	KeyLoanYears    = "loan_years"
	KeyPropertyTax  = "property_tax"
	KeyInsurance    = "insurance"
	KeyMaintenance  = "maintenance"
	KeyBuyClosing   = "buy_closing"
	KeySellCost     = "sell_cost"
	KeyCapGainsFed  = "cap_gains_fed"
	KeyNIIT         = "niit"
	KeyStateRate    = "state_rate"
	KeyMarginalTax  = "marginal_tax"
)

// ErrMalformedParam is returned when a present parameter is not a number.
var ErrMalformedParam = errors.New("malformed parameter")

// ParamError reports which parameter failed to parse.
type ParamError struct {
	Key   string
	Value string
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: parameter %q value %q: %v", ErrMalformedParam, e.Key, e.Value, e.Err)
}

func (e *ParamError) Unwrap() []error { return []error{ErrMalformedParam, e.Err} }

// MaxLoanYears bounds loan_years; larger terms are rejected as malformed.
const MaxLoanYears = 1000

// Defaults lists the value used for each parameter when it is absent.
var Defaults = map[string]float64{
	KeyPrice:        0,
	KeyDownPayment:  0,
	KeyMortgageRate: 0,
	KeyAppreciation: 0,
	KeyStockReturn:  0,
	KeyInitialRent:  0,
	KeyRentGrowth:   3.0,
	KeyLoanYears:    30,
	KeyPropertyTax:  1.1,
	KeyInsurance:    0.5,
	KeyMaintenance:  1.0,
	KeyBuyClosing:   2.0,
	KeySellCost:     6.0,
	KeyCapGainsFed:  15.0,
	KeyNIIT:         3.8,
	KeyStateRate:    9.3,
	KeyMarginalTax:  41.3,
}

// ParseValues converts a flat parameter mapping into projection inputs.
// Absent keys take their default; present keys must parse as numbers.
// loan_years is parsed as a number and truncated toward zero, and its
// magnitude may not exceed MaxLoanYears.
func ParseValues(values url.Values) (domain.ProjectionInput, error) {
	p := paramReader{values: values}
	in := domain.ProjectionInput{
		Price:              p.float(KeyPrice),
		DownPayment:        p.float(KeyDownPayment),
		MortgageRatePct:    p.float(KeyMortgageRate),
		AppreciationPct:    p.float(KeyAppreciation),
		StockReturnPct:     p.float(KeyStockReturn),
		InitialMonthlyRent: p.float(KeyInitialRent),
		RentGrowthPct:      p.float(KeyRentGrowth),
		LoanYears:          p.truncated(KeyLoanYears),
		PropertyTaxPct:     p.float(KeyPropertyTax),
		InsurancePct:       p.float(KeyInsurance),
		MaintenancePct:     p.float(KeyMaintenance),
		BuyClosingPct:      p.float(KeyBuyClosing),
		SellCostPct:        p.float(KeySellCost),
		CapGainsFedPct:     p.float(KeyCapGainsFed),
		NIITPct:            p.float(KeyNIIT),
		StateCapitalPct:    p.float(KeyStateRate),
		MarginalTaxPct:     p.float(KeyMarginalTax),
	}
	if p.err != nil {
		return domain.ProjectionInput{}, p.err
	}
	return in, nil
}

// paramReader keeps the first parse error so ParseValues reads linearly.
type paramReader struct {
	values url.Values
	err    error
}

func (p *paramReader) float(key string) float64 {
	if p.err != nil {
		return 0
	}
	raw, ok := p.values[key]
	if !ok || len(raw) == 0 {
		return Defaults[key]
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw[0]), 64)
	if err != nil {
		p.err = &ParamError{Key: key, Value: raw[0], Err: err}
		return 0
	}
	return v
}

func (p *paramReader) truncated(key string) int {
	v := p.float(key)
	if p.err != nil {
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(math.Trunc(v)) > MaxLoanYears {
		p.err = &ParamError{Key: key, Value: p.values.Get(key), Err: fmt.Errorf("not a year count within %d", MaxLoanYears)}
		return 0
	}
	return int(v)
}
