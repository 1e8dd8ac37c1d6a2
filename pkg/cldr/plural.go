package cldr

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Plural category names as defined by Unicode CLDR.
const (
	Zero  = "zero"
	One   = "one"
	Two   = "two"
	Few   = "few"
	Many  = "many"
	Other = "other"
)

// PluralRules resolves CLDR plural categories for one locale.
type PluralRules struct {
	tag language.Tag
}

// NewPluralRules creates plural rules for the given BCP 47 locale.
// Unrecognized locales fall back to root rules (everything is "other").
func NewPluralRules(locale string) *PluralRules {
	return &PluralRules{tag: language.Make(locale)}
}

// Cardinal returns the cardinal plural category for n.
func (r *PluralRules) Cardinal(n float64) string {
	return r.category(plural.Cardinal, n)
}

// Ordinal returns the ordinal plural category for n.
func (r *PluralRules) Ordinal(n float64) string {
	return r.category(plural.Ordinal, n)
}

// Category resolves a category by style; ordinal selects ordinal rules.
func (r *PluralRules) Category(n float64, ordinal bool) string {
	if ordinal {
		return r.Ordinal(n)
	}
	return r.Cardinal(n)
}

func (r *PluralRules) category(rules *plural.Rules, n float64) string {
	i, v, f := operands(n)
	// w and t are v and f with trailing zeros stripped; the shortest decimal
	// representation used by operands has none.
	form := rules.MatchPlural(r.tag, i, v, v, f, f)
	switch form {
	case plural.Zero:
		return Zero
	case plural.One:
		return One
	case plural.Two:
		return Two
	case plural.Few:
		return Few
	case plural.Many:
		return Many
	default:
		return Other
	}
}

// operands decomposes n into the CLDR plural operands: i (integer digits of
// the absolute value), v (count of visible fraction digits), and f (the
// fraction digits as an integer). Plural rules ignore the sign.
func operands(n float64) (i, v, f int) {
	n = math.Abs(n)
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, 0, 0
	}

	s := strconv.FormatFloat(n, 'f', -1, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	if parsed, err := strconv.Atoi(intPart); err == nil {
		i = parsed
	}
	v = len(fracPart)
	if fracPart != "" {
		if parsed, err := strconv.Atoi(fracPart); err == nil {
			f = parsed
		}
	}
	return i, v, f
}
