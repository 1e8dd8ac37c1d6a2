package intl

import (
	"errors"
	"time"

	"github.com/dmitrymomot/intl/pkg/cache"
	"github.com/dmitrymomot/intl/pkg/cldr"
	"github.com/dmitrymomot/intl/pkg/icu"
)

// FormatMessage resolves and formats d against the bundle's locale context,
// layered with any overrides. It never fails and never returns an empty
// sequence: every step failure degrades to the next step of the fallback
// chain (see the package documentation), bottoming out at the literal
// message id.
func (b *Bundle) FormatMessage(d MessageDescriptor, values Values, overrides ...LocaleContext) icu.Fragments {
	ctx := b.context(overrides...)

	// Step 1: translated template, active locale.
	tmpl, translated := b.lookup(ctx, d.ID)
	if translated {
		frags, err := b.tryFormat(tmpl, ctx.Locale, ctx, values)
		if err == nil {
			return frags
		}
		b.logger.Warn("intl: translated message failed, falling back",
			"id", d.ID, "locale", ctx.Locale, "error", err)
	}

	// Step 2: default template, still formatted for the active locale so
	// numbers and dates stay localized.
	if d.Default != "" {
		frags, err := b.tryFormat(d.Default, ctx.Locale, ctx, values)
		if err == nil {
			return frags
		}
		var serr *icu.SyntaxError
		if errors.As(err, &serr) {
			// A broken default template is a programming error, not a
			// translation gap. Loud, then keep degrading.
			b.logger.Error("intl: default template does not compile",
				"id", d.ID, "error", err)
		} else {
			b.logger.Warn("intl: default template failed, falling back",
				"id", d.ID, "locale", ctx.Locale, "error", err)
		}
	}

	if ctx.DefaultLocale != "" && ctx.DefaultLocale != ctx.Locale {
		// Step 3: translated template, default-locale formatting. Wrong
		// locale context, but something localized is shown.
		if translated {
			frags, err := b.tryFormat(tmpl, ctx.DefaultLocale, ctx, values)
			if err == nil {
				return frags
			}
			b.logger.Warn("intl: translated message failed in default locale",
				"id", d.ID, "locale", ctx.DefaultLocale, "error", err)
		}

		// Step 4: default template, default-locale formatting.
		if d.Default != "" {
			frags, err := b.tryFormat(d.Default, ctx.DefaultLocale, ctx, values)
			if err == nil {
				return frags
			}
			b.logger.Warn("intl: default template failed in default locale",
				"id", d.ID, "locale", ctx.DefaultLocale, "error", err)
		}
	}

	// Step 5: last resort, the raw id. Guarantees visible, non-crashing
	// output even when nothing compiles.
	b.logger.Warn("intl: all fallback steps exhausted, rendering message id",
		"id", d.ID, "locale", ctx.Locale)
	return icu.Fragments{icu.Text(d.ID)}
}

// FormatString is FormatMessage with the fragments joined into a plain
// string. Rich-content values render with fmt.Sprint; callers embedding
// rich content should use FormatMessage.
func (b *Bundle) FormatString(d MessageDescriptor, values Values, overrides ...LocaleContext) string {
	return b.FormatMessage(d, values, overrides...).String()
}

// T is shorthand for FormatString with an inline descriptor. Handy for
// one-off strings; shared messages should declare a MessageDescriptor.
func (b *Bundle) T(id, defaultTemplate string, values Values, overrides ...LocaleContext) string {
	return b.FormatString(MessageDescriptor{ID: id, Default: defaultTemplate}, values, overrides...)
}

// FormatNumber formats v for the active locale (or the override locale).
// Style accepts the tokens documented by the cldr package and named
// formats registered on the bundle.
func (b *Bundle) FormatNumber(v float64, style string, overrides ...LocaleContext) (string, error) {
	ctx := b.context(overrides...)
	return b.numberFormatter(ctx.Locale).Format(v, b.resolveStyle(ctx, ctx.Locale, style))
}

// FormatDate formats t's date part for the active locale.
func (b *Bundle) FormatDate(t time.Time, style string, overrides ...LocaleContext) (string, error) {
	ctx := b.context(overrides...)
	return b.dateFormatter(ctx.Locale).FormatDate(t, b.resolveStyle(ctx, ctx.Locale, style))
}

// FormatTime formats t's time part for the active locale.
func (b *Bundle) FormatTime(t time.Time, style string, overrides ...LocaleContext) (string, error) {
	ctx := b.context(overrides...)
	return b.dateFormatter(ctx.Locale).FormatTime(t, b.resolveStyle(ctx, ctx.Locale, style))
}

// PluralCategory returns the CLDR plural category of n for the active
// locale; ordinal selects selectordinal rules.
func (b *Bundle) PluralCategory(n float64, ordinal bool, overrides ...LocaleContext) string {
	ctx := b.context(overrides...)
	return b.pluralRules(ctx.Locale).Category(n, ordinal)
}

// CompileDefault compiles d's default template, surfacing syntax errors.
// FormatMessage swallows such errors to keep its never-fails contract;
// this is the developer-visible path for catching broken defaults early
// (typically from a test or a startup check).
func (b *Bundle) CompileDefault(d MessageDescriptor) (*icu.Message, error) {
	if d.ID == "" {
		return nil, ErrEmptyMessageID
	}
	return b.compile(d.Default, b.defaultLocale)
}

// tryFormat compiles (memoized) and evaluates one template for one locale.
// Any error is a step failure for the caller to handle.
func (b *Bundle) tryFormat(template, locale string, ctx LocaleContext, values Values) (icu.Fragments, error) {
	msg, err := b.compile(template, locale)
	if err != nil {
		return nil, err
	}
	return icu.Evaluate(msg, values, b.env(locale, ctx))
}

// compile memoizes compilation per (locale, template). The AST shape is
// locale-independent, but category resolution downstream is not; keying
// per-locale keeps cached plans aligned with the formatters they run with.
func (b *Bundle) compile(template, locale string) (*icu.Message, error) {
	return b.plans.GetOrCompute(cache.Key("msg", locale, template), func() (*icu.Message, error) {
		return icu.Compile(template)
	})
}

// env assembles the evaluation environment for one locale, with formatter
// handles memoized for the bundle's lifetime.
func (b *Bundle) env(locale string, ctx LocaleContext) icu.Env {
	nf := b.numberFormatter(locale)
	df := b.dateFormatter(locale)
	rules := b.pluralRules(locale)

	return icu.Env{
		Locale:         locale,
		FormatNumber:   nf.Format,
		FormatDate:     df.FormatDate,
		FormatTime:     df.FormatTime,
		PluralCategory: rules.Category,
		ResolveStyle: func(style string) string {
			return b.resolveStyle(ctx, locale, style)
		},
	}
}

// resolveStyle maps a named format to its style token: context formats
// first, then the bundle's per-locale formats, then default formats.
// Unrecognized names pass through as literal style tokens.
func (b *Bundle) resolveStyle(ctx LocaleContext, locale, style string) string {
	if s, ok := ctx.Formats[style]; ok {
		return s
	}
	if s, ok := b.formats[locale][style]; ok {
		return s
	}
	if base := baseLocale(locale); base != locale {
		if s, ok := b.formats[base][style]; ok {
			return s
		}
	}
	if s, ok := ctx.DefaultFormats[style]; ok {
		return s
	}
	return style
}

func (b *Bundle) numberFormatter(locale string) *cldr.NumberFormatter {
	nf, _ := b.numbers.GetOrCompute(cache.Key("number", locale), func() (*cldr.NumberFormatter, error) {
		return cldr.NewNumberFormatter(locale), nil
	})
	return nf
}

func (b *Bundle) dateFormatter(locale string) *cldr.DateTimeFormatter {
	df, _ := b.dates.GetOrCompute(cache.Key("datetime", locale), func() (*cldr.DateTimeFormatter, error) {
		return cldr.NewDateTimeFormatter(locale), nil
	})
	return df
}

func (b *Bundle) pluralRules(locale string) *cldr.PluralRules {
	pr, _ := b.plurals.GetOrCompute(cache.Key("plural", locale), func() (*cldr.PluralRules, error) {
		return cldr.NewPluralRules(locale), nil
	})
	return pr
}
