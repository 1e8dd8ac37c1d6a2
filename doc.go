// Package intl provides locale-aware formatting of ICU MessageFormat
// templates with a strict, never-failing fallback policy.
//
// A [Bundle] holds translated message catalogs, named formats, and the
// per-locale formatting machinery. It is configured entirely at
// construction, immutable afterwards, and safe for concurrent use.
//
// # Quick Start
//
//	bundle, err := intl.New(
//	    intl.WithDefaultLocale("en"),
//	    intl.WithLocale("fr"),
//	    intl.WithMessages("fr", map[string]string{
//	        "app.greeting": "Bonjour, {name}!",
//	    }),
//	)
//
//	greeting := intl.MessageDescriptor{
//	    ID:      "app.greeting",
//	    Default: "Hello, {name}!",
//	}
//
//	out := bundle.FormatString(greeting, intl.Values{"name": "Eric"})
//	// Output: "Bonjour, Eric!"
//
// # Fallback Policy
//
// FormatMessage never fails and never returns empty output. Each request
// walks a fixed chain, short-circuiting on the first fully successful
// evaluation:
//
//  1. the translated template, formatted for the active locale
//  2. the descriptor's default template, still formatted for the active
//     locale (numbers and dates stay localized even without a translation)
//  3. the translated template, formatted for the default locale
//  4. the default template, formatted for the default locale
//  5. the literal message id
//
// Step failures (a translation that does not compile, a missing argument
// value, an invalid format style) are swallowed and logged as warnings;
// showing something always beats crashing the UI. The one developer-visible
// exception is a default template that does not compile: that is a
// programming error, surfaced by [Bundle.CompileDefault] and logged at
// error level before the chain degrades.
//
// # Rich Content
//
// Substitution values that are neither strings, numbers, nor times pass
// through evaluation untouched, so UI content can be embedded inside
// translated text and re-assembled by the renderer:
//
//	frags := bundle.FormatMessage(msg, intl.Values{"link": myButton})
//	for _, f := range frags { ... }
//
// # Catalog Files
//
// Translations load from fs.FS trees of JSON, YAML, or TOML files laid out
// as {locale}/{namespace}.ext; nested keys flatten to dotted message ids
// ("app.greeting" from en/app.json {"greeting": ...}).
//
// # Relative Time
//
// [Bundle.FormatRelative] renders "3 minutes ago" style labels through the
// regular message fallback chain, so catalogs can translate the wording.
// Self-updating displays are handled by the
// [github.com/dmitrymomot/intl/pkg/relativetime] scheduler, which re-invokes
// the caller exactly when the displayed text would change.
//
// # Memoization Contract
//
// Formatting is a pure function of (descriptor, values, locale context):
// callers may cache output on shallow equality of those inputs. Compiled
// templates and constructed formatters are memoized internally for the
// lifetime of the Bundle.
package intl
