// Package money formatea valores monetarios en pesos colombianos para las vistas y reportes.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// Format devuelve "$ 1.234.567" o "$ 1.234,50" si hay centavos.
func Format(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return printer.Sprintf("$ %d", d.IntPart())
	}
	return printer.Sprintf("$ %.2f", d.Round(2).InexactFloat64())
}

// Quantity formatea una cantidad de sacos con separador de miles.
func Quantity(n int64) string {
	return printer.Sprintf("%d", n)
}
