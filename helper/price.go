package helper

import (
	"fmt"

	"github.com/govalues/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	currencySymbol = "$"
	minorUnits     = 2
)

var (
	priceLocale   = language.AmericanEnglish
	priceCurrency = currency.USD
)

// FormatPrice renders an amount in cents as en-US dollars, e.g. 123456 -> "$1,234.56".
func FormatPrice(cents int64) string {
	amount, err := decimal.New(cents, minorUnits)
	if err != nil {
		// cents always fits the decimal coefficient
		panic(err)
	}
	var sign string
	if amount.IsNeg() {
		sign = "-"
		amount = amount.Abs()
	}
	whole, frac, ok := amount.Int64(minorUnits)
	if !ok {
		panic(fmt.Sprintf("price: %d cents out of range", cents))
	}
	printer := message.NewPrinter(priceLocale)
	return sign + currencySymbol + printer.Sprintf("%d", whole) + fmt.Sprintf(".%02d", frac)
}

// PriceCurrency is the ISO 4217 code of every formatted price.
func PriceCurrency() string {
	return priceCurrency.String()
}
