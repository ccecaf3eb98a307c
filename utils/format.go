package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer formats user-facing messages (thousands separators, decimals).
var Printer = message.NewPrinter(language.AmericanEnglish)

// Sprintf formats a user-facing message with Printer.
func Sprintf(format string, args ...any) string {
	return Printer.Sprintf(format, args...)
}
