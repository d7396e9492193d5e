package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Minutes renders a minute count as "3h 45m".
func Minutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return printer.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// Amount renders a monetary amount with thousands separators,
// e.g. 1234567 -> "1,234,567". Currency-neutral: the caller decides
// the symbol.
func Amount(amount int64) string {
	return printer.Sprintf("%d", amount)
}
