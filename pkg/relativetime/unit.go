package relativetime

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Unit is the granularity a relative-time value is displayed in.
type Unit int

const (
	UnitSecond Unit = iota
	UnitMinute
	UnitHour
	UnitDay
)

// Display thresholds: a delta is shown in a unit while it stays below the
// threshold of the next one (45 seconds reads better as "a minute ago" than
// "45 seconds ago"; same convention for minutes and hours).
const (
	secondThreshold = 45 * time.Second
	minuteThreshold = 45 * time.Minute
	hourThreshold   = 22 * time.Hour
)

// Duration returns the length of one unit step. Days are civil 24h days;
// DST shifts are ignored, matching how the display itself is computed.
func (u Unit) Duration() time.Duration {
	switch u {
	case UnitSecond:
		return time.Second
	case UnitMinute:
		return time.Minute
	case UnitHour:
		return time.Hour
	default:
		return 24 * time.Hour
	}
}

func (u Unit) String() string {
	switch u {
	case UnitSecond:
		return "second"
	case UnitMinute:
		return "minute"
	case UnitHour:
		return "hour"
	default:
		return "day"
	}
}

// SelectUnit picks the display unit and rounded magnitude for a value
// observed at now. The count is negative for future values.
func SelectUnit(value, now time.Time) (count int64, unit Unit) {
	delta := now.Sub(value)
	abs := delta.Abs()

	switch {
	case abs < secondThreshold:
		unit = UnitSecond
	case abs < minuteThreshold:
		unit = UnitMinute
	case abs < hourThreshold:
		unit = UnitHour
	default:
		unit = UnitDay
	}

	// Round half away from zero; plain division truncates toward zero and
	// would under-count future values.
	step := unit.Duration()
	if delta >= 0 {
		count = int64((delta + step/2) / step)
	} else {
		count = int64((delta - step/2) / step)
	}
	return count, unit
}

// Formatter renders a relative-time label for a value observed at now.
// Format is the default English implementation; locale-aware renderers
// (such as a message bundle) satisfy the same shape.
type Formatter func(value, now time.Time) string

// Format renders value relative to now in English ("3 minutes ago",
// "now", "2 days from now"). Localized output goes through the message
// engine instead; this is the standalone default.
func Format(value, now time.Time) string {
	return humanize.RelTime(value, now, "ago", "from now")
}
