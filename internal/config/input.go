package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/homecalc/homeownership-calculator/internal/domain"
	money "github.com/homecalc/homeownership-calculator/pkg/decimal"
)

// ErrNoScenarios is returned when a scenario file lists nothing to run.
var ErrNoScenarios = errors.New("no scenarios provided")

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario file (YAML, or JSON as a YAML subset)
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration checks the structure of a scenario file. Numbers are
// not range checked; the projection accepts any value.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return ErrNoScenarios
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: scenario name is required", i)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate scenario name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true

		if err := validateRequired(&scenario); err != nil {
			return fmt.Errorf("scenario %q validation failed: %w", scenario.Name, err)
		}
	}
	return nil
}

// validateRequired mirrors the required fields of the web form.
func validateRequired(s *domain.Scenario) error {
	switch {
	case s.Price == nil:
		return fmt.Errorf("%s is required", KeyPrice)
	case s.DownPayment == nil:
		return fmt.Errorf("%s is required", KeyDownPayment)
	case s.MortgageRate == nil:
		return fmt.Errorf("%s is required", KeyMortgageRate)
	case s.Appreciation == nil:
		return fmt.Errorf("%s is required", KeyAppreciation)
	case s.InitialRent == nil:
		return fmt.Errorf("%s is required", KeyInitialRent)
	}
	return nil
}

// ScenarioValues flattens a scenario into the form parameter mapping, leaving
// unset fields absent so they take the form defaults.
func ScenarioValues(s *domain.Scenario) url.Values {
	v := url.Values{}
	setMoney := func(key string, m *money.Money) {
		if m != nil {
			v.Set(key, m.Decimal.String())
		}
	}
	setDecimal := func(key string, d *decimal.Decimal) {
		if d != nil {
			v.Set(key, d.String())
		}
	}

	setMoney(KeyPrice, s.Price)
	setMoney(KeyDownPayment, s.DownPayment)
	setMoney(KeyInitialRent, s.InitialRent)
	setDecimal(KeyMortgageRate, s.MortgageRate)
	setDecimal(KeyAppreciation, s.Appreciation)
	setDecimal(KeyStockReturn, s.StockReturn)
	setDecimal(KeyRentGrowth, s.RentGrowth)
	setDecimal(KeyLoanYears, s.LoanYears)
	setDecimal(KeyPropertyTax, s.PropertyTax)
	setDecimal(KeyInsurance, s.Insurance)
	setDecimal(KeyMaintenance, s.Maintenance)
	setDecimal(KeyBuyClosing, s.BuyClosing)
	setDecimal(KeySellCost, s.SellCost)
	setDecimal(KeyCapGainsFed, s.CapGainsFed)
	setDecimal(KeyNIIT, s.NIIT)
	setDecimal(KeyStateRate, s.StateRate)
	setDecimal(KeyMarginalTax, s.MarginalTax)
	return v
}

// Resolve converts every scenario into projection inputs through the same
// intake used by the web form.
func (ip *InputParser) Resolve(config *domain.Configuration) ([]domain.NamedInput, error) {
	inputs := make([]domain.NamedInput, 0, len(config.Scenarios))
	for i := range config.Scenarios {
		sc := &config.Scenarios[i]
		in, err := ParseValues(ScenarioValues(sc))
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		inputs = append(inputs, domain.NamedInput{Name: sc.Name, Input: in})
	}
	return inputs, nil
}

// CreateExampleConfiguration creates an example scenario file comparing a
// 30-year and a 15-year mortgage on the same home
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	m := func(v float64) *money.Money { mv := money.NewMoney(v); return &mv }
	d := func(v float64) *decimal.Decimal { dv := decimal.NewFromFloat(v); return &dv }

	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name:         "30-year fixed",
				Price:        m(600000),
				DownPayment:  m(120000),
				InitialRent:  m(2500),
				MortgageRate: d(3.5),
				Appreciation: d(3),
				StockReturn:  d(7),
				RentGrowth:   d(3),
				LoanYears:    d(30),
			},
			{
				Name:         "15-year fixed",
				Price:        m(600000),
				DownPayment:  m(120000),
				InitialRent:  m(2500),
				MortgageRate: d(2.875),
				Appreciation: d(3),
				StockReturn:  d(7),
				RentGrowth:   d(3),
				LoanYears:    d(15),
				MarginalTax:  d(41.3),
			},
		},
	}
}
