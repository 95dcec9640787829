package output

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCurrency renders an amount as dollars with thousands separators and
// two decimals, e.g. "$1,234.57". Negative amounts render as "$-7,166.49".
func FormatCurrency(amount float64) string {
	return "$" + message.NewPrinter(language.English).Sprintf("%.2f", amount)
}

// FormatFixed renders an amount with exactly two decimals and no grouping.
func FormatFixed(amount float64) string { return strconv.FormatFloat(amount, 'f', 2, 64) }

// FormatPercentage renders a percentage-unit value as entered, e.g. "3.5%".
func FormatPercentage(pct float64) string { return strconv.FormatFloat(pct, 'f', -1, 64) + "%" }
