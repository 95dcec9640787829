package config

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValues_Defaults(t *testing.T) {
	in, err := ParseValues(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, 0.0, in.Price)
	assert.Equal(t, 0.0, in.DownPayment)
	assert.Equal(t, 0.0, in.MortgageRatePct)
	assert.Equal(t, 0.0, in.AppreciationPct)
	assert.Equal(t, 0.0, in.StockReturnPct)
	assert.Equal(t, 0.0, in.InitialMonthlyRent)
	assert.Equal(t, 3.0, in.RentGrowthPct)
	assert.Equal(t, 30, in.LoanYears)
	assert.Equal(t, 1.1, in.PropertyTaxPct)
	assert.Equal(t, 0.5, in.InsurancePct)
	assert.Equal(t, 1.0, in.MaintenancePct)
	assert.Equal(t, 2.0, in.BuyClosingPct)
	assert.Equal(t, 6.0, in.SellCostPct)
	assert.Equal(t, 15.0, in.CapGainsFedPct)
	assert.Equal(t, 3.8, in.NIITPct)
	assert.Equal(t, 9.3, in.StateCapitalPct)
	assert.Equal(t, 41.3, in.MarginalTaxPct)
}

func TestParseValues_FullForm(t *testing.T) {
	values := url.Values{
		"price":         {"600000"},
		"down_payment":  {"120000"},
		"mortgage_rate": {"3.5"},
		"appreciation":  {"3"},
		"stock_return":  {"7"},
		"initial_rent":  {"2500"},
		"rent_growth":   {"2.5"},
		"loan_years":    {"15"},
		"property_tax":  {"1.2"},
		"insurance":     {"0.4"},
		"maintenance":   {"0.8"},
		"buy_closing":   {"2.5"},
		"sell_cost":     {"5"},
		"cap_gains_fed": {"20"},
		"niit":          {"0"},
		"state_rate":    {"5"},
		"marginal_tax":  {"30"},
	}
	in, err := ParseValues(values)
	require.NoError(t, err)

	assert.Equal(t, 600000.0, in.Price)
	assert.Equal(t, 120000.0, in.DownPayment)
	assert.Equal(t, 3.5, in.MortgageRatePct)
	assert.Equal(t, 7.0, in.StockReturnPct)
	assert.Equal(t, 2.5, in.RentGrowthPct)
	assert.Equal(t, 15, in.LoanYears)
	assert.Equal(t, 0.0, in.NIITPct)
	assert.Equal(t, 25.0, in.CapGainsTotalPct())
}

func TestParseValues_LoanYearsTruncated(t *testing.T) {
	tests := map[string]int{
		"30":    30,
		"30.9":  30,
		"1e1":   10,
		"-2.5":  -2,
		" 12 ":  12,
		"0.999": 0,
		"1000.9": 1000,
		"-1000": -1000,
	}
	for raw, want := range tests {
		in, err := ParseValues(url.Values{"loan_years": {raw}})
		require.NoError(t, err, raw)
		assert.Equal(t, want, in.LoanYears, raw)
	}
}

func TestParseValues_Malformed(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"price", "six hundred"},
		{"down_payment", ""},
		{"loan_years", "thirty"},
		{"loan_years", "NaN"},
		{"loan_years", "Inf"},
		{"loan_years", "1001"},
		{"loan_years", "2000000000"},
		{"marginal_tax", "41.3%"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			_, err := ParseValues(url.Values{tt.key: {tt.value}})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedParam))

			var pe *ParamError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.key, pe.Key)
			assert.Equal(t, tt.value, pe.Value)
		})
	}
}

func TestParseValues_FirstErrorWins(t *testing.T) {
	_, err := ParseValues(url.Values{"price": {"x"}, "niit": {"y"}})
	var pe *ParamError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "price", pe.Key)
}

func TestParseValues_UnknownKeysIgnored(t *testing.T) {
	in, err := ParseValues(url.Values{"price": {"100"}, "color": {"blue"}})
	require.NoError(t, err)
	assert.Equal(t, 100.0, in.Price)
}

func TestParseValues_NonFiniteRatesAccepted(t *testing.T) {
	// Only numeric parsing is enforced; the engine takes whatever arrives.
	in, err := ParseValues(url.Values{"appreciation": {"inf"}})
	require.NoError(t, err)
	assert.True(t, in.AppreciationPct > 1e308)
}
