package services

import (
	"b2better/internal/core/domain/model/kernel"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// AmountFormatter renders money and counts for human-facing listings using
// en-US digit grouping and at most three fraction digits, e.g. "$1,234.5".
type AmountFormatter struct {
	printer *message.Printer
}

func NewAmountFormatter() AmountFormatter {
	return AmountFormatter{printer: message.NewPrinter(language.AmericanEnglish)}
}

// Currency renders m with a leading dollar sign.
func (f AmountFormatter) Currency(m kernel.Money) string {
	return "$" + f.printer.Sprint(number.Decimal(m.Float64(), number.MaxFractionDigits(3)))
}

// Count renders an integer with grouping, e.g. "12,345".
func (f AmountFormatter) Count(n int) string {
	return f.printer.Sprint(number.Decimal(n))
}
