package intl

import (
	"log/slog"
	"maps"
)

// Option configures a Bundle during construction.
type Option func(*Bundle) error

// WithDefaultLocale sets the locale default templates are authored in and
// the final formatting fallback.
func WithDefaultLocale(locale string) Option {
	return func(b *Bundle) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		b.defaultLocale = locale
		return nil
	}
}

// WithLocale sets the active display locale. Defaults to the default
// locale when unset.
func WithLocale(locale string) Option {
	return func(b *Bundle) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		b.locale = locale
		return nil
	}
}

// WithMessages loads translated templates for one locale, keyed by message
// id. Repeated calls for the same locale merge, later entries winning.
func WithMessages(locale string, messages map[string]string) Option {
	return func(b *Bundle) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		if len(messages) == 0 {
			return nil
		}
		if b.messages[locale] == nil {
			b.messages[locale] = make(map[string]string, len(messages))
		}
		maps.Copy(b.messages[locale], messages)
		return nil
	}
}

// WithFormats registers named format styles for one locale. A template can
// then reference {price, number, unitPrice} with "unitPrice" mapped to a
// concrete style token such as "EUR" per locale.
func WithFormats(locale string, formats map[string]string) Option {
	return func(b *Bundle) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		if len(formats) == 0 {
			return nil
		}
		if b.formats[locale] == nil {
			b.formats[locale] = make(map[string]string, len(formats))
		}
		maps.Copy(b.formats[locale], formats)
		return nil
	}
}

// WithDefaultFormats registers named format styles consulted when the
// active locale has no entry for a name.
func WithDefaultFormats(formats map[string]string) Option {
	return func(b *Bundle) error {
		maps.Copy(b.defaultFormats, formats)
		return nil
	}
}

// WithLogger sets the logger for fallback-step warnings. The default
// discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bundle) error {
		if logger != nil {
			b.logger = logger
		}
		return nil
	}
}
