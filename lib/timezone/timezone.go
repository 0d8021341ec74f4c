package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/Los_Angeles")
	if err != nil {
		panic(err)
	}
}

// the birthday listing endpoint interprets its month timestamps in
// Pacific time regardless of the account's own timezone, so all epoch
// math has to happen in this location
func Now() time.Time {
	return time.Now().In(Location)
}

// MonthStarts returns the midnight instant of the 1st of the month
// containing `now` and of the n-1 months that follow it, all in the
// reference location.
func MonthStarts(now time.Time, n int) []time.Time {
	year, month, _ := now.In(Location).Date()

	starts := make([]time.Time, n)
	for i := range starts {
		starts[i] = time.Date(year, month+time.Month(i), 1, 0, 0, 0, 0, Location)
	}
	return starts
}
