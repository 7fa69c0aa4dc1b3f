// Package money formatea montos en francos CFA para las vistas (locale fr).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.French)

// FormatCFA devuelve el monto sin decimales con separadores franceses y el
// símbolo F CFA (el POS opera en XOF/XAF, sin fracciones).
func FormatCFA(amount decimal.Decimal) string {
	v, _ := amount.Round(0).Float64()
	return printer.Sprintf("%v F CFA", number.Decimal(v, number.MaxFractionDigits(0)))
}
