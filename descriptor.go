package intl

// MessageDescriptor identifies one translatable message. Descriptors are
// defined by application code, immutable, and addressed by a unique stable
// ID that doubles as the catalog key and the last-resort display string.
type MessageDescriptor struct {
	// ID is the unique, stable message identifier ("app.greeting").
	ID string

	// Default is the ICU template authored in the default locale, used when
	// no translation exists. A Default that does not compile is a
	// programming error; see Bundle.CompileDefault.
	Default string

	// Description gives translators context. Unused at runtime.
	Description string
}

// Values supplies per-call substitution values for template arguments.
// Values are primitives (string, number, time.Time) or opaque rich-content
// handles, which pass through formatting untouched.
type Values = map[string]any
