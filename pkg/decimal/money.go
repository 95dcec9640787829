package decimal

import (
	"github.com/shopspring/decimal"
)

// Money represents a currency amount read from or written to scenario files.
// It marshals as text so YAML and JSON keep the exact decimal digits.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}
