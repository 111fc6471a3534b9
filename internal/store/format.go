package store

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount with the currency symbol, grouping and two
// decimal places, e.g. 1234.5 -> "$1,234.50". Presentation only; pure in its
// numeric input.
func FormatCurrency(amount float64) string {
	return FormatCurrencyCode(amount, "USD")
}

// FormatCurrencyCode renders an amount in the given ISO 4217 currency.
// Unknown codes fall back to USD.
func FormatCurrencyCode(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	return printer.Sprintf("%v", currency.NarrowSymbol(unit.Amount(amount)))
}

// FormatPercentage renders a value with one decimal place and a percent sign,
// e.g. 12.345 -> "12.3%".
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}
