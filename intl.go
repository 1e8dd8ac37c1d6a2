package intl

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/intl/pkg/cache"
	"github.com/dmitrymomot/intl/pkg/cldr"
	"github.com/dmitrymomot/intl/pkg/icu"
)

// DefaultLocale is used when no default locale is configured.
const DefaultLocale = "en"

// Bundle is the process-level provider of translations and locale-aware
// formatting. All configuration happens during construction; the Bundle is
// immutable and safe for concurrent use afterwards.
type Bundle struct {
	// Active and default locales.
	locale        string
	defaultLocale string

	// Translated templates: locale -> message id -> ICU template.
	messages map[string]map[string]string

	// Named format styles: locale -> name -> style token, plus the
	// locale-independent defaults.
	formats        map[string]map[string]string
	defaultFormats map[string]string

	// Pre-computed list of locales with translations (default first) and
	// the matcher built over them, for Accept-Language negotiation.
	locales []string
	matcher language.Matcher

	// Process-lifetime memoization of compiled plans and constructed
	// formatter handles.
	plans   *cache.Memo[*icu.Message]
	numbers *cache.Memo[*cldr.NumberFormatter]
	dates   *cache.Memo[*cldr.DateTimeFormatter]
	plurals *cache.Memo[*cldr.PluralRules]

	logger *slog.Logger
}

// New creates a Bundle with the given options.
func New(opts ...Option) (*Bundle, error) {
	b := &Bundle{
		defaultLocale:  DefaultLocale,
		messages:       make(map[string]map[string]string),
		formats:        make(map[string]map[string]string),
		defaultFormats: make(map[string]string),
		plans:          cache.NewMemo[*icu.Message](),
		numbers:        cache.NewMemo[*cldr.NumberFormatter](),
		dates:          cache.NewMemo[*cldr.DateTimeFormatter](),
		plurals:        cache.NewMemo[*cldr.PluralRules](),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("intl: failed to apply option: %w", err)
		}
	}

	if b.defaultLocale == "" {
		return nil, ErrEmptyLocale
	}
	if b.locale == "" {
		b.locale = b.defaultLocale
	}

	b.locales = b.buildLocalesList()
	tags := make([]language.Tag, len(b.locales))
	for i, loc := range b.locales {
		tags[i] = language.Make(loc)
	}
	b.matcher = language.NewMatcher(tags)

	return b, nil
}

// Locale returns the active locale.
func (b *Bundle) Locale() string { return b.locale }

// DefaultLocale returns the default/fallback locale.
func (b *Bundle) DefaultLocale() string { return b.defaultLocale }

// Locales returns the locales with loaded translations, default first.
func (b *Bundle) Locales() []string { return b.locales }

// MatchLocale picks the best available locale for an Accept-Language
// header. An empty or unmatchable header yields the default locale.
func (b *Bundle) MatchLocale(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return b.defaultLocale
	}
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return b.defaultLocale
	}
	_, idx, conf := b.matcher.Match(desired...)
	if conf == language.No {
		return b.defaultLocale
	}
	return b.locales[idx]
}

// lookup finds the translated template for id: the context's message
// override first, then the catalog for the context locale, then the
// catalog for its base language ("en" for "en-US").
func (b *Bundle) lookup(ctx LocaleContext, id string) (string, bool) {
	if tmpl, ok := ctx.Messages[id]; ok {
		return tmpl, true
	}
	if tmpl, ok := b.messages[ctx.Locale][id]; ok {
		return tmpl, true
	}
	if base := baseLocale(ctx.Locale); base != ctx.Locale {
		if tmpl, ok := b.messages[base][id]; ok {
			return tmpl, true
		}
	}
	return "", false
}

// context assembles the effective locale context for a request: the
// bundle's base configuration with the given overrides layered on top.
func (b *Bundle) context(overrides ...LocaleContext) LocaleContext {
	ctx := LocaleContext{
		Locale:         b.locale,
		DefaultLocale:  b.defaultLocale,
		DefaultFormats: b.defaultFormats,
	}
	for _, o := range overrides {
		ctx = ctx.Merge(o)
	}
	if ctx.Locale == "" {
		ctx.Locale = ctx.DefaultLocale
	}
	return ctx
}

func (b *Bundle) buildLocalesList() []string {
	seen := map[string]bool{b.defaultLocale: true}
	out := []string{b.defaultLocale}

	var rest []string
	for loc := range b.messages {
		if !seen[loc] {
			seen[loc] = true
			rest = append(rest, loc)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// baseLocale strips the region from a locale tag ("en-US" -> "en").
// Returns the input unchanged if there is no region.
func baseLocale(locale string) string {
	if i := strings.IndexByte(locale, '-'); i > 0 {
		return locale[:i]
	}
	return locale
}
