// Package cldr supplies the locale-aware formatting primitives the message
// engine consumes: plural category resolution, number formatting, and
// date/time formatting.
//
// Plural categories (cardinal and ordinal) come from the CLDR rule tables
// shipped with golang.org/x/text/feature/plural. Number formatting uses
// golang.org/x/text/message printers with locale digit grouping; currency
// styles resolve symbols through golang.org/x/text/currency. Date and time
// formatting uses per-locale layout tables with short/medium/long/full
// styles.
//
// Formatters are constructed once per locale and are immutable and safe for
// concurrent use afterwards, which makes them suitable for process-lifetime
// caching.
package cldr
