package rates

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders a display string for amount: a currency symbol ($ for
// USD and ARS, € for EUR) followed by a grouped two-decimal number.
// Formatting only, no conversion.
func FormatPrice(amount float64, currency string) string {
	symbol := "$"
	if currency == "EUR" {
		symbol = "€"
	}
	return symbol + pricePrinter.Sprintf("%.2f", amount)
}
