package localedate

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
)

// A weekdayNamer produces the full weekday name of a date in a target
// locale, or reports that it does not know the locale.
type weekdayNamer interface {
	WeekdayName(locale string, t time.Time) (string, bool)
}

// tried in order, first namer that recognizes the locale wins
var weekdayNamers = []weekdayNamer{
	cldrNamer{},
	mondayNamer{},
}

// weekdayOffsets maps the lowercased names of the next 7 days to their
// offset from now. Offsets start at 1 (tomorrow): a birthday today is
// never rendered as a day name.
func weekdayOffsets(locale string, now time.Time) (map[string]int, error) {
	for _, namer := range weekdayNamers {
		if _, ok := namer.WeekdayName(locale, now); !ok {
			continue
		}

		offsets := make(map[string]int, 7)
		for offset := 1; offset <= 7; offset++ {
			name, ok := namer.WeekdayName(locale, now.AddDate(0, 0, offset))
			if !ok {
				break
			}
			offsets[strings.ToLower(name)] = offset
		}
		if len(offsets) > 0 {
			return offsets, nil
		}
	}
	return nil, ErrLocaleUnavailable
}

// mondayNamer resolves weekday names through the goodsign/monday
// formatting tables, standing in for the host platform's locale
// facility.
type mondayNamer struct{}

func (mondayNamer) WeekdayName(locale string, t time.Time) (string, bool) {
	target := monday.Locale(locale)
	for _, known := range monday.ListLocales() {
		if known == target {
			return monday.Format(t, "Monday", target), true
		}
	}
	return "", false
}
