package localedate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolveDayMonthFromTooltip(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		tooltip string
		name    string
		locale  string
		day     int
		month   int
	}{
		{"John Smith (03/15)", "John Smith", "en_US", 15, 3},
		{"John Smith (15/03)", "John Smith", "en_GB", 15, 3},
		{"Max Mustermann (15.03.)", "Max Mustermann", "de_DE", 15, 3},
		{"Jan Novák (15. 3.)", "Jan Novák", "cs_CZ", 15, 3},
		{"&#x200e;Someone (3/15)&#x200e;", "Someone", "en_US", 15, 3},
		// leap day has no year to validate against
		{"Pat (02/29)", "Pat", "en_US", 29, 2},
	}

	for _, test := range cases {
		day, month, err := ResolveDayMonth(test.tooltip, test.name, test.locale, now)
		require.NoError(t, err, "tooltip %q locale %s", test.tooltip, test.locale)
		require.Equal(t, test.day, day)
		require.Equal(t, test.month, month)
	}
}

// formatting a (day, month) under a locale's pattern and resolving it
// back must reproduce the pair exactly, for every supported locale
func TestDatePatternRoundTrip(t *testing.T) {
	pairs := [][2]int{{1, 1}, {15, 3}, {9, 10}, {29, 2}, {31, 12}}
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	for locale, pattern := range datePatterns {
		for _, pair := range pairs {
			tooltip := formatDayMonth(pattern, pair[0], pair[1])
			day, month, err := ResolveDayMonth(tooltip, "", locale, now)
			require.NoError(t, err, "locale %s tooltip %q", locale, tooltip)
			require.Equal(t, pair[0], day, "locale %s tooltip %q", locale, tooltip)
			require.Equal(t, pair[1], month, "locale %s tooltip %q", locale, tooltip)
		}
	}
}

func TestParseDayMonthRejects(t *testing.T) {
	cases := []struct {
		pattern string
		input   string
	}{
		{"%m/%d", "Monday"},
		{"%m/%d", "3/15/2020"},
		{"%m/%d", "13/32"},
		{"%m/%d", "02/30"},
		{"%d.%m.", "15.3"},
		{"%d.%m", "15.3."},
	}
	for _, test := range cases {
		_, _, err := parseDayMonth(test.pattern, test.input)
		require.Error(t, err, "pattern %q input %q", test.pattern, test.input)
	}
}

func TestResolveDayMonthFromDayName(t *testing.T) {
	cases := []struct {
		now     time.Time
		tooltip string
		locale  string
		day     int
		month   int
	}{
		// 2024-06-10 is itself a Monday, so "Monday" means a week out
		{time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC), "Monday", "en_US", 17, 6},
		{time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC), "Monday", "en_US", 17, 6},
		{time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC), "Thursday", "en_US", 13, 6},
		// month rollover
		{time.Date(2024, 6, 28, 9, 0, 0, 0, time.UTC), "Tuesday", "en_US", 2, 7},
		// character references are decoded before lookup
		{time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC), "Mon&#x64;ay", "en_US", 17, 6},
		{time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC), "Montag", "de_DE", 17, 6},
	}

	for _, test := range cases {
		day, month, err := ResolveDayMonth(test.tooltip, "", test.locale, test.now)
		require.NoError(t, err, "tooltip %q locale %s", test.tooltip, test.locale)
		require.Equal(t, test.day, day, "tooltip %q", test.tooltip)
		require.Equal(t, test.month, month, "tooltip %q", test.tooltip)
	}
}

func TestWeekdayOffsets(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	for _, locale := range []string{"en_US", "de_DE", "fr_FR", "ru_RU", "ja_JP"} {
		offsets, err := weekdayOffsets(locale, now)
		require.NoError(t, err, "locale %s", locale)
		// 7 distinct names, offsets 1..7 exactly once
		require.Len(t, offsets, 7, "locale %s", locale)

		seen := map[int]bool{}
		for _, offset := range offsets {
			require.GreaterOrEqual(t, offset, 1)
			require.LessOrEqual(t, offset, 7)
			require.False(t, seen[offset], "duplicate offset %d for %s", offset, locale)
			seen[offset] = true
		}
	}
}

func TestWeekdayOffsetsMatchDates(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	offsets, err := weekdayOffsets("en_US", now)
	require.NoError(t, err)

	for offset := 1; offset <= 7; offset++ {
		name := now.AddDate(0, 0, offset).Weekday().String()
		require.Equal(t, offset, offsets[strings.ToLower(name)], "weekday %s", name)
	}
}

func TestResolveDayMonthErrors(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	_, _, err := ResolveDayMonth("03/15", "", "fa_IR", now)
	require.ErrorIs(t, err, ErrUnsupportedLocale)

	_, _, err = ResolveDayMonth("Blursday", "", "en_US", now)
	require.ErrorIs(t, err, ErrUnrecognizedDayName)

	// en_UD has a date pattern but no weekday name source
	_, _, err = ResolveDayMonth("Monday", "", "en_UD", now)
	require.ErrorIs(t, err, ErrLocaleUnavailable)
}
