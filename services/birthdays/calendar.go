package birthdays

import (
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"fbcal-backend/lib/scrapers/facebook"
)

const icsDateLayout = "20060102"

// dateProp builds an all-day date property, VALUE=DATE with no time
// component.
func dateProp(name string, t time.Time) *ical.Prop {
	prop := ical.NewProp(name)
	prop.SetValueType(ical.ValueDate)
	prop.Value = t.Format(icsDateLayout)
	return prop
}

// rawProp builds a property with a bare value. SetText would tag
// non-registered names with an explicit VALUE=TEXT param.
func rawProp(name, value string) *ical.Prop {
	prop := ical.NewProp(name)
	prop.Value = value
	return prop
}

// BuildCalendar renders birthdays as yearly recurring all-day events.
// The first occurrence of each event lands on the next upcoming
// birthday relative to now: dates in months already behind us roll
// into next year.
func BuildCalendar(records []facebook.Birthday, now time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//fbcal//fbcal-backend//EN")
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")
	cal.Props.SetText(ical.PropMethod, "PUBLISH")
	cal.Props.Set(rawProp("X-WR-CALNAME", "Facebook Birthdays (fbcal)"))
	cal.Props.Set(rawProp("X-PUBLISHED-TTL", "PT12H"))
	cal.Props.Set(rawProp("X-ORIGINAL-URL", "/events/birthdays/"))

	// one event per contact, a repeated uid replaces its predecessor
	eventIndex := map[string]int{}
	var events []*ical.Component

	for _, record := range records {
		year := now.Year()
		if record.Month < int(now.Month()) {
			year++
		}
		start := time.Date(year, time.Month(record.Month), record.Day, 0, 0, 0, 0, time.UTC)

		event := ical.NewComponent(ical.CompEvent)
		event.Props.SetText(ical.PropUID, record.UID)
		event.Props.SetText(ical.PropSummary, fmt.Sprintf("%s's Birthday", record.Name))
		event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
		event.Props.Set(dateProp(ical.PropDateTimeStart, start))
		event.Props.Set(dateProp(ical.PropDateTimeEnd, start.AddDate(0, 0, 1)))

		event.Props.Set(rawProp(ical.PropRecurrenceRule, "FREQ=YEARLY"))

		if at, ok := eventIndex[record.UID]; ok {
			events[at] = event
			continue
		}
		eventIndex[record.UID] = len(events)
		events = append(events, event)
	}

	cal.Children = append(cal.Children, events...)
	return cal
}

// EncodeCalendar serializes the calendar to ics text with CRLF line
// endings and no blank lines.
func EncodeCalendar(cal *ical.Calendar) (string, error) {
	var buf strings.Builder
	err := ical.NewEncoder(&buf).Encode(cal)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, line := range strings.Split(buf.String(), "\r\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\r\n") + "\r\n", nil
}
