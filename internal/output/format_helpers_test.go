package output

import (
	"math"
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1234.567, "$1,234.57"},
		{0, "$0.00"},
		{618000, "$618,000.00"},
		{1456357.4849, "$1,456,357.48"},
		{-7166.49, "$-7,166.49"},
		{999.999, "$1,000.00"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCurrencyNonFinite(t *testing.T) {
	// Degenerate inputs still render something instead of failing.
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := FormatCurrency(v); len(got) <= 1 {
			t.Errorf("FormatCurrency(%v) = %q", v, got)
		}
	}
}

func TestFormatFixed(t *testing.T) {
	tests := map[float64]string{
		470788.1874: "470788.19",
		0:           "0.00",
		-7166.494:   "-7166.49",
		1e6:         "1000000.00",
	}
	for in, want := range tests {
		if got := FormatFixed(in); got != want {
			t.Errorf("FormatFixed(%v) = %q, want %q", in, got, want)
		}
	}
	if got := FormatFixed(math.NaN()); got != "NaN" {
		t.Errorf("FormatFixed(NaN) = %q", got)
	}
}

func TestFormatPercentage(t *testing.T) {
	if got, want := FormatPercentage(3.5), "3.5%"; got != want {
		t.Errorf("FormatPercentage(3.5) = %q, want %q", got, want)
	}
	if got, want := FormatPercentage(3), "3%"; got != want {
		t.Errorf("FormatPercentage(3) = %q, want %q", got, want)
	}
}
