package cldr_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/cldr"
)

func TestCardinalCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale string
		n      float64
		want   string
	}{
		{"en", 0, cldr.Other},
		{"en", 1, cldr.One},
		{"en", 2, cldr.Other},
		{"en", 1.5, cldr.Other},
		{"fr", 0, cldr.One},
		{"fr", 1, cldr.One},
		{"fr", 2, cldr.Other},
		{"pl", 1, cldr.One},
		{"pl", 2, cldr.Few},
		{"pl", 5, cldr.Many},
		{"pl", 22, cldr.Few},
		{"ru", 1, cldr.One},
		{"ru", 11, cldr.Many},
		{"ru", 21, cldr.One},
		{"ja", 1, cldr.Other},
		{"ja", 7, cldr.Other},
		{"ar", 0, cldr.Zero},
		{"ar", 1, cldr.One},
		{"ar", 2, cldr.Two},
		{"ar", 5, cldr.Few},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%s/%v", tt.locale, tt.n), func(t *testing.T) {
			t.Parallel()
			rules := cldr.NewPluralRules(tt.locale)
			assert.Equal(t, tt.want, rules.Cardinal(tt.n))
		})
	}
}

func TestOrdinalCategories(t *testing.T) {
	t.Parallel()

	rules := cldr.NewPluralRules("en")

	tests := []struct {
		n    float64
		want string
	}{
		{1, cldr.One},   // 1st
		{2, cldr.Two},   // 2nd
		{3, cldr.Few},   // 3rd
		{4, cldr.Other}, // 4th
		{11, cldr.Other},
		{12, cldr.Other},
		{13, cldr.Other},
		{21, cldr.One},
		{22, cldr.Two},
		{23, cldr.Few},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("n=%v", tt.n), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, rules.Ordinal(tt.n))
			assert.Equal(t, tt.want, rules.Category(tt.n, true))
		})
	}
}

func TestNumberFormatterDecimal(t *testing.T) {
	t.Parallel()

	en := cldr.NewNumberFormatter("en")

	got, err := en.Format(1234567.89, "")
	require.NoError(t, err)
	assert.Equal(t, "1,234,567.89", got)

	got, err = en.Format(1234.2, "integer")
	require.NoError(t, err)
	assert.Equal(t, "1,234", got)
}

func TestNumberFormatterLocaleSeparators(t *testing.T) {
	t.Parallel()

	de := cldr.NewNumberFormatter("de")
	got, err := de.Format(1234567.89, "decimal")
	require.NoError(t, err)
	assert.Equal(t, "1.234.567,89", got)
}

func TestNumberFormatterPercent(t *testing.T) {
	t.Parallel()

	en := cldr.NewNumberFormatter("en")
	got, err := en.Format(0.5, "percent")
	require.NoError(t, err)
	assert.Contains(t, got, "50")
	assert.Contains(t, got, "%")
}

func TestNumberFormatterCurrency(t *testing.T) {
	t.Parallel()

	en := cldr.NewNumberFormatter("en")
	got, err := en.Format(9.99, "USD")
	require.NoError(t, err)
	assert.Contains(t, got, "9.99")
	assert.Contains(t, got, "$")
}

func TestNumberFormatterUnknownStyle(t *testing.T) {
	t.Parallel()

	en := cldr.NewNumberFormatter("en")

	_, err := en.Format(1, "scientific")
	require.Error(t, err)

	// Currency-shaped but not a valid ISO code.
	_, err = en.Format(1, "ZZZ")
	require.Error(t, err)
}

func TestDateTimeFormatter(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, time.August, 24, 14, 5, 9, 0, time.UTC)

	tests := []struct {
		locale string
		style  string
		want   string
	}{
		{"en", "short", "8/24/26"},
		{"en", "medium", "Aug 24, 2026"},
		{"en", "long", "August 24, 2026"},
		{"en", "full", "Monday, August 24, 2026"},
		{"en-GB", "short", "24/08/2026"},
		{"de", "short", "24.08.26"},
		{"de-AT", "medium", "24.08.2026"},
		{"ja", "short", "2026/08/24"},
		{"xx", "short", "8/24/26"}, // unknown locale falls back to en
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.locale+"/"+tt.style, func(t *testing.T) {
			t.Parallel()
			df := cldr.NewDateTimeFormatter(tt.locale)
			got, err := df.FormatDate(ts, tt.style)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	en := cldr.NewDateTimeFormatter("en")
	got, err := en.FormatTime(ts, "short")
	require.NoError(t, err)
	assert.Equal(t, "2:05 PM", got)

	got, err = en.FormatTime(ts, "medium")
	require.NoError(t, err)
	assert.Equal(t, "2:05:09 PM", got)

	de := cldr.NewDateTimeFormatter("de")
	got, err = de.FormatTime(ts, "")
	require.NoError(t, err)
	assert.Equal(t, "14:05", got)
}

func TestDateTimeFormatterCustomLayout(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, time.August, 24, 14, 5, 0, 0, time.UTC)
	df := cldr.NewDateTimeFormatter("en")

	got, err := df.FormatDate(ts, "2006-01-02")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-24", got)

	_, err = df.FormatDate(ts, "bogus")
	require.Error(t, err)

	_, err = df.FormatTime(ts, "bogus")
	require.Error(t, err)
}
