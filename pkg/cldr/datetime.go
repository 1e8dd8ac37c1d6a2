package cldr

import (
	"fmt"
	"strings"
	"time"
)

// dateTimeLayouts holds the Go time layouts for one locale family, by style.
type dateTimeLayouts struct {
	dateShort  string
	dateMedium string
	dateLong   string
	dateFull   string
	timeShort  string
	timeMedium string
}

// layoutTable maps base languages (and a few full tags with distinct
// conventions) to their layouts. Styles follow the short/medium/long/full
// ladder; locales not listed use the en-US layouts.
var layoutTable = map[string]dateTimeLayouts{
	"en": {
		dateShort:  "1/2/06",
		dateMedium: "Jan 2, 2006",
		dateLong:   "January 2, 2006",
		dateFull:   "Monday, January 2, 2006",
		timeShort:  "3:04 PM",
		timeMedium: "3:04:05 PM",
	},
	"en-GB": {
		dateShort:  "02/01/2006",
		dateMedium: "2 Jan 2006",
		dateLong:   "2 January 2006",
		dateFull:   "Monday, 2 January 2006",
		timeShort:  "15:04",
		timeMedium: "15:04:05",
	},
	"de": {
		dateShort:  "02.01.06",
		dateMedium: "02.01.2006",
		dateLong:   "2. Jan 2006",
		dateFull:   "2. Jan 2006",
		timeShort:  "15:04",
		timeMedium: "15:04:05",
	},
	"fr": {
		dateShort:  "02/01/2006",
		dateMedium: "2 Jan 2006",
		dateLong:   "2 Jan 2006",
		dateFull:   "2 Jan 2006",
		timeShort:  "15:04",
		timeMedium: "15:04:05",
	},
	"es": {
		dateShort:  "2/1/06",
		dateMedium: "2 Jan 2006",
		dateLong:   "2 Jan 2006",
		dateFull:   "2 Jan 2006",
		timeShort:  "15:04",
		timeMedium: "15:04:05",
	},
	"pt": {
		dateShort:  "02/01/2006",
		dateMedium: "2 Jan 2006",
		dateLong:   "2 Jan 2006",
		dateFull:   "2 Jan 2006",
		timeShort:  "15:04",
		timeMedium: "15:04:05",
	},
	"pl": {
		dateShort:  "02.01.2006",
		dateMedium: "2 Jan 2006",
		dateLong:   "2 Jan 2006",
		dateFull:   "2 Jan 2006",
		timeShort:  "15:04",
		timeMedium: "15:04:05",
	},
	"ru": {
		dateShort:  "02.01.2006",
		dateMedium: "2 Jan 2006",
		dateLong:   "2 Jan 2006",
		dateFull:   "2 Jan 2006",
		timeShort:  "15:04",
		timeMedium: "15:04:05",
	},
	"ja": {
		dateShort:  "2006/01/02",
		dateMedium: "2006/01/02",
		dateLong:   "2006年1月2日",
		dateFull:   "2006年1月2日",
		timeShort:  "15:04",
		timeMedium: "15:04:05",
	},
	"zh": {
		dateShort:  "2006/1/2",
		dateMedium: "2006年1月2日",
		dateLong:   "2006年1月2日",
		dateFull:   "2006年1月2日",
		timeShort:  "15:04",
		timeMedium: "15:04:05",
	},
	"ko": {
		dateShort:  "06. 1. 2.",
		dateMedium: "2006. 1. 2.",
		dateLong:   "2006년 1월 2일",
		dateFull:   "2006년 1월 2일",
		timeShort:  "15:04",
		timeMedium: "15:04:05",
	},
}

// DateTimeFormatter formats dates and times for one locale.
type DateTimeFormatter struct {
	layouts dateTimeLayouts
}

// NewDateTimeFormatter creates a date/time formatter for the given BCP 47
// locale. Full-tag entries (e.g. "en-GB") win over base-language entries;
// unknown locales use en-US conventions.
func NewDateTimeFormatter(locale string) *DateTimeFormatter {
	norm := strings.ReplaceAll(locale, "_", "-")
	if l, ok := layoutTable[norm]; ok {
		return &DateTimeFormatter{layouts: l}
	}
	base, _, _ := strings.Cut(norm, "-")
	if l, ok := layoutTable[base]; ok {
		return &DateTimeFormatter{layouts: l}
	}
	return &DateTimeFormatter{layouts: layoutTable["en"]}
}

// FormatDate renders the date part of t. Styles: "short", "medium" (or ""),
// "long", "full", or a custom Go time layout containing the reference year
// 2006. Unknown styles fail with an error.
func (df *DateTimeFormatter) FormatDate(t time.Time, style string) (string, error) {
	switch style {
	case "short":
		return t.Format(df.layouts.dateShort), nil
	case "", "medium":
		return t.Format(df.layouts.dateMedium), nil
	case "long":
		return t.Format(df.layouts.dateLong), nil
	case "full":
		return t.Format(df.layouts.dateFull), nil
	}
	if strings.Contains(style, "2006") {
		return t.Format(style), nil
	}
	return "", fmt.Errorf("cldr: unknown date style %q", style)
}

// FormatTime renders the time part of t. Styles: "short" (or ""), "medium",
// or a custom Go time layout containing the reference minute 04.
func (df *DateTimeFormatter) FormatTime(t time.Time, style string) (string, error) {
	switch style {
	case "", "short":
		return t.Format(df.layouts.timeShort), nil
	case "medium":
		return t.Format(df.layouts.timeMedium), nil
	}
	if strings.Contains(style, "04") {
		return t.Format(style), nil
	}
	return "", fmt.Errorf("cldr: unknown time style %q", style)
}
