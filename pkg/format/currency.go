// Package format provides display formatting for currency amounts and
// production quantities. Values are rounded exactly with decimal arithmetic
// and printed through an English-locale printer for thousands grouping.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	abs, _ := d.Abs().Float64()
	formatted := printer.Sprintf("$%.2f", abs)
	if d.IsNegative() {
		return "-" + formatted
	}
	return formatted
}

// Quantity returns a production quantity string in tonnes with thousands
// separators (e.g., "38,750.0 t").
func Quantity(amount float64) string {
	rounded, _ := decimal.NewFromFloat(amount).Round(1).Float64()
	return printer.Sprintf("%.1f t", rounded)
}

// Flow returns a fuel flow rate string (e.g., "115.96 kNm3/h").
func Flow(rate float64) string {
	rounded, _ := decimal.NewFromFloat(rate).Round(2).Float64()
	return printer.Sprintf("%.2f kNm3/h", rounded)
}
