package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Format renders an amount with thousand separators for display,
// e.g. 12345.5 -> "12,345.5". Stored amounts are never formatted.
func Format(v float64) string {
	return printer.Sprintf("%v", number.Decimal(v))
}
