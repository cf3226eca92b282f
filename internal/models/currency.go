package models

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var kwanzaPrinter = message.NewPrinter(language.Portuguese)

// FormatKz renders a minor-unit amount as a localized Kwanza string for
// display. Display only, never parsed back.
func FormatKz(amount int64) string {
	return kwanzaPrinter.Sprintf("%v Kz", number.Decimal(amount))
}
