package models

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// brl renders numbers with Brazilian grouping and decimal separators.
var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders a monetary amount as a Brazilian Real string,
// e.g. 1234.5 -> "R$ 1.234,50".
func FormatBRL(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return brl.Sprintf("R$ %v", number.Decimal(f, number.Scale(2)))
}
