// Package localedate resolves the locale-formatted tooltip next to a
// person's name into a (day, month) pair. Birthdays within the next
// week are rendered as weekday names instead of dates and go through a
// locale-aware offset table.
package localedate

import (
	"errors"
	"strings"
	"time"

	"fbcal-backend/lib/htmlutil"
)

var (
	ErrUnsupportedLocale   = errors.New("locale has no known date layout")
	ErrUnrecognizedDayName = errors.New("unrecognized day name")
	ErrLocaleUnavailable   = errors.New("no weekday name source for locale")
)

// artifacts removed from the tooltip before parsing: brackets around
// the date, RTL/LTR marks, and the Armenian name-suffix particle
var stripArtifacts = []string{
	"(",
	")",
	"&#x200f;",
	"&#x200e;",
	"&#x55d;",
}

// ResolveDayMonth extracts the (day, month) encoded in a birthday
// tooltip. personName is stripped from the tooltip first; locale picks
// the date layout; now anchors the weekday-name fallback.
func ResolveDayMonth(tooltip, personName, locale string, now time.Time) (day, month int, err error) {
	cleaned := strings.ReplaceAll(tooltip, personName, "")
	for _, artifact := range stripArtifacts {
		cleaned = strings.ReplaceAll(cleaned, artifact, "")
	}
	cleaned = strings.TrimSpace(cleaned)

	pattern, ok := datePatterns[locale]
	if !ok {
		return 0, 0, ErrUnsupportedLocale
	}

	day, month, parseErr := parseDayMonth(pattern, cleaned)
	if parseErr == nil {
		return day, month, nil
	}

	// not a date: birthdays in the coming week are shown as weekday
	// names, today's own is still a date
	offsets, err := weekdayOffsets(locale, now)
	if err != nil {
		return 0, 0, err
	}

	dayName := strings.ToLower(htmlutil.Text(cleaned))
	offset, ok := offsets[dayName]
	if !ok {
		return 0, 0, ErrUnrecognizedDayName
	}

	resolved := now.AddDate(0, 0, offset)
	return resolved.Day(), int(resolved.Month()), nil
}
