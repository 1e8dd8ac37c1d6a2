package intl

import (
	"time"

	"github.com/dmitrymomot/intl/pkg/relativetime"
)

// Built-in templates for relative timestamps, one descriptor per unit and
// direction. Translations load under these ids like any other message
// ("intl.relative.minute.past" etc).
var relativePast = map[relativetime.Unit]MessageDescriptor{
	relativetime.UnitSecond: {
		ID:      "intl.relative.second.past",
		Default: "{count, plural, =0 {just now} one {# second ago} other {# seconds ago}}",
	},
	relativetime.UnitMinute: {
		ID:      "intl.relative.minute.past",
		Default: "{count, plural, one {# minute ago} other {# minutes ago}}",
	},
	relativetime.UnitHour: {
		ID:      "intl.relative.hour.past",
		Default: "{count, plural, one {# hour ago} other {# hours ago}}",
	},
	relativetime.UnitDay: {
		ID:      "intl.relative.day.past",
		Default: "{count, plural, one {# day ago} other {# days ago}}",
	},
}

var relativeFuture = map[relativetime.Unit]MessageDescriptor{
	relativetime.UnitSecond: {
		ID:      "intl.relative.second.future",
		Default: "{count, plural, =0 {right now} one {in # second} other {in # seconds}}",
	},
	relativetime.UnitMinute: {
		ID:      "intl.relative.minute.future",
		Default: "{count, plural, one {in # minute} other {in # minutes}}",
	},
	relativetime.UnitHour: {
		ID:      "intl.relative.hour.future",
		Default: "{count, plural, one {in # hour} other {in # hours}}",
	},
	relativetime.UnitDay: {
		ID:      "intl.relative.day.future",
		Default: "{count, plural, one {in # day} other {in # days}}",
	},
}

// FormatRelative renders value relative to now for the active locale
// ("3 minutes ago", "il y a 3 minutes"). Unit and magnitude selection
// follows pkg/relativetime; the wording goes through the regular message
// fallback chain, so catalogs can translate the built-in templates.
func (b *Bundle) FormatRelative(value, now time.Time, overrides ...LocaleContext) string {
	count, unit := relativetime.SelectUnit(value, now)

	table := relativePast
	if count < 0 {
		table = relativeFuture
		count = -count
	}
	return b.FormatString(table[unit], Values{"count": count}, overrides...)
}

// RelativeFormatter adapts the bundle to pkg/relativetime's Formatter
// shape, for wiring into a Scheduler's onDue callback.
func (b *Bundle) RelativeFormatter(overrides ...LocaleContext) relativetime.Formatter {
	return func(value, now time.Time) string {
		return b.FormatRelative(value, now, overrides...)
	}
}
