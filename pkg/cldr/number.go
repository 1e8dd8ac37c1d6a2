package cldr

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberFormatter formats numbers for one locale with CLDR digit grouping
// and separators.
type NumberFormatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewNumberFormatter creates a number formatter for the given BCP 47 locale.
func NewNumberFormatter(locale string) *NumberFormatter {
	tag := language.Make(locale)
	return &NumberFormatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

// Format renders v according to style:
//
//   - "" or "decimal": locale decimal formatting
//   - "integer": decimal with no fraction digits
//   - "percent": v as a percentage (0.5 renders as 50%)
//   - a three-letter ISO 4217 code ("EUR", "USD", ...): currency formatting
//
// Unknown styles fail with an error; the caller treats that as a
// formatter-construction failure and degrades through its fallback chain.
func (nf *NumberFormatter) Format(v float64, style string) (string, error) {
	switch style {
	case "", "decimal":
		return nf.printer.Sprintf("%v", number.Decimal(v)), nil
	case "integer":
		return nf.printer.Sprintf("%v", number.Decimal(v,
			number.MaxFractionDigits(0))), nil
	case "percent":
		return nf.printer.Sprintf("%v", number.Percent(v)), nil
	default:
		if isCurrencyCode(style) {
			return nf.formatCurrency(v, style)
		}
		return "", fmt.Errorf("cldr: unknown number style %q", style)
	}
}

func (nf *NumberFormatter) formatCurrency(v float64, code string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("cldr: invalid currency code %q: %w", code, err)
	}
	return nf.printer.Sprintf("%v", currency.NarrowSymbol(unit.Amount(v))), nil
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
