package intl

import "maps"

// LocaleContext is the per-subtree locale configuration a formatting
// request runs under. The Bundle supplies the base context; callers pass
// override contexts for nested UI subtrees. Contexts are plain values:
// copy freely, never mutate shared maps after construction.
type LocaleContext struct {
	// Locale is the active display locale ("fr-CA").
	Locale string

	// DefaultLocale is the locale default templates are authored in.
	DefaultLocale string

	// Messages overrides the bundle catalog for Locale, keyed by message id.
	Messages map[string]string

	// Formats maps names to style tokens for the active locale
	// ("price" -> "EUR").
	Formats map[string]string

	// DefaultFormats is consulted when Formats has no entry for a name.
	DefaultFormats map[string]string
}

// Merge layers child over c field by field: a field set on child wins,
// unset fields fall through to c. Maps merge key-by-key rather than being
// replaced wholesale, so a nested context can override a single format
// without re-declaring the rest. Neither input is mutated.
func (c LocaleContext) Merge(child LocaleContext) LocaleContext {
	out := c
	if child.Locale != "" {
		out.Locale = child.Locale
	}
	if child.DefaultLocale != "" {
		out.DefaultLocale = child.DefaultLocale
	}
	out.Messages = mergeMaps(c.Messages, child.Messages)
	out.Formats = mergeMaps(c.Formats, child.Formats)
	out.DefaultFormats = mergeMaps(c.DefaultFormats, child.DefaultFormats)
	return out
}

func mergeMaps(parent, child map[string]string) map[string]string {
	if len(child) == 0 {
		return parent
	}
	if len(parent) == 0 {
		return child
	}
	out := make(map[string]string, len(parent)+len(child))
	maps.Copy(out, parent)
	maps.Copy(out, child)
	return out
}
