// Package icu compiles and evaluates ICU MessageFormat templates.
//
// A template is literal text interspersed with arguments:
//
//	Hello, {name}!
//	{count, plural, offset:1 =0 {nobody} one {# guest} other {# guests}}
//	{rank, selectordinal, one {#st} two {#nd} few {#rd} other {#th}}
//	{gender, select, female {her} male {his} other {their}}
//	{price, number, EUR} due on {due, date, short}
//
// Compile parses a template into an immutable [Message] tree; Evaluate walks
// the tree with substitution values and locale-aware formatting callbacks,
// producing an ordered [Fragments] sequence. Values that are neither strings,
// numbers, nor times pass through evaluation untouched as [Rich] fragments,
// which lets callers embed opaque UI content inside formatted text.
//
// Both operations are pure: compiling the same template always yields an
// equivalent tree, and evaluation depends only on its inputs. Callers may
// cache compiled messages freely (see the cache package).
//
// The mandatory "other" case of plural, selectordinal, and select arguments
// is enforced at compile time: a template without it fails with a
// [*SyntaxError] rather than degrading at evaluation time.
package icu
