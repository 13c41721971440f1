// Package moneda formatea montos en pesos con las convenciones locales (es-AR): punto como
// separador de miles y coma decimal, ej. 45000 -> "$45.000", 1234.5 -> "$1.234,5".
package moneda

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-AR"))

// Formato devuelve el monto con signo "$" y como máximo dos decimales.
func Formato(monto decimal.Decimal) string {
	f, _ := monto.Round(2).Float64()
	return "$" + printer.Sprint(number.Decimal(f, number.MaxFractionDigits(2)))
}
