package emi

import "time"

// AddMonths advances t by n calendar months, clamping the day to the end
// of the target month: Jan 31 + 1 month = Feb 28 (29 in leap years).
// time.AddDate normalizes overflow into the following month instead
// (Jan 31 + 1 month = Mar 2/3), which is not what a billing schedule wants.
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	m := int(month) + n
	year += (m - 1) / 12
	month = time.Month((m-1)%12 + 1)
	if m <= 0 {
		// Go's modulo is negative here; shift back into 1..12.
		year--
		month += 12
	}
	if last := daysIn(year, month); day > last {
		day = last
	}
	hour, min, sec := t.Clock()
	return time.Date(year, month, day, hour, min, sec, t.Nanosecond(), t.Location())
}

// DueDates returns the tenure due dates for a schedule generated at
// start: start+1 month, start+2 months, ..., start+tenure months.
func DueDates(start time.Time, tenureMonths int) []time.Time {
	out := make([]time.Time, 0, tenureMonths)
	for i := 1; i <= tenureMonths; i++ {
		out = append(out, AddMonths(start, i))
	}
	return out
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
