package localedate

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var errPatternMismatch = errors.New("input does not match date pattern")

// parseDayMonth matches s against a %d/%m pattern. Number segments
// accept one or two digits with or without a leading zero; everything
// else in the pattern must match literally and s must be consumed in
// full. The time package's layouts are unusable here: several patterns
// contain literal text with digits (entity-encoded markers like
// "&#x440;") that time.Parse would mistake for layout tokens.
func parseDayMonth(pattern, s string) (day, month int, err error) {
	for len(pattern) > 0 {
		if pattern[0] != '%' {
			if len(s) == 0 || s[0] != pattern[0] {
				return 0, 0, errPatternMismatch
			}
			pattern = pattern[1:]
			s = s[1:]
			continue
		}
		if len(pattern) < 2 {
			return 0, 0, errPatternMismatch
		}

		var n int
		n, s, err = scanNumber(s)
		if err != nil {
			return 0, 0, err
		}
		switch pattern[1] {
		case 'd':
			day = n
		case 'm':
			month = n
		default:
			return 0, 0, fmt.Errorf("bad pattern verb %q", pattern[:2])
		}
		pattern = pattern[2:]
	}
	if len(s) > 0 {
		return 0, 0, errPatternMismatch
	}

	if month < 1 || month > 12 || day < 1 || day > daysIn(time.Month(month)) {
		return 0, 0, errPatternMismatch
	}
	return day, month, nil
}

func scanNumber(s string) (int, string, error) {
	n := 0
	digits := 0
	for digits < 2 && len(s) > 0 && s[0] >= '0' && s[0] <= '9' {
		n = n*10 + int(s[0]-'0')
		s = s[1:]
		digits++
	}
	if digits == 0 {
		return 0, s, errPatternMismatch
	}
	return n, s, nil
}

// the tooltip carries no year, so Feb 29 must be accepted
func daysIn(m time.Month) int {
	return time.Date(2000, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// formatDayMonth renders a (day, month) pair under a %d/%m pattern,
// zero-padding to two digits the way the source service does.
func formatDayMonth(pattern string, day, month int) string {
	var out strings.Builder
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' || i+1 >= len(pattern) {
			out.WriteByte(pattern[i])
			continue
		}
		switch pattern[i+1] {
		case 'd':
			fmt.Fprintf(&out, "%02d", day)
		case 'm':
			fmt.Fprintf(&out, "%02d", month)
		default:
			out.WriteByte(pattern[i+1])
		}
		i++
	}
	return out.String()
}
