package calendar

import (
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// Single-letter day codes as they appear in pasted schedules. R is Thursday
// and U is Sunday; plain T and S go to Tuesday and Saturday.
var dayLetters = map[rune]rrule.Weekday{
	'M': rrule.MO,
	'T': rrule.TU,
	'W': rrule.WE,
	'R': rrule.TH,
	'F': rrule.FR,
	'S': rrule.SA,
	'U': rrule.SU,
}

var dateLayouts = []string{
	"1/2/2006",
	"Jan 2, 2006",
}

const clockLayout = "3:04 PM"

// ParseDays decodes a compact day-letter string (case-insensitive) into
// weekday tokens, preserving input order. Unrecognized letters are dropped;
// nothing recognized yields an empty result.
func ParseDays(days string) []rrule.Weekday {
	var out []rrule.Weekday
	for _, ch := range strings.ToUpper(strings.TrimSpace(days)) {
		if wd, ok := dayLetters[ch]; ok {
			out = append(out, wd)
		}
	}
	return out
}

// ParseDateRange resolves a "start - end" date string where both sides use
// either the numeric MM/DD/YYYY form or the abbreviated "Jan 02, 2006" form.
// Both sides must match the same layout; the first layout matching both wins.
func ParseDateRange(s string) (start, end time.Time, ok bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, false
	}
	startStr := strings.TrimSpace(parts[0])
	endStr := strings.TrimSpace(parts[1])

	for _, layout := range dateLayouts {
		startDate, err1 := time.Parse(layout, startStr)
		endDate, err2 := time.Parse(layout, endStr)
		if err1 == nil && err2 == nil {
			return startDate, endDate, true
		}
	}
	return time.Time{}, time.Time{}, false
}

// ParseTimeRange resolves a "start - end" 12-hour clock string, anchoring
// both instants to the calendar date of day in loc.
func ParseTimeRange(s string, day time.Time, loc *time.Location) (start, end time.Time, ok bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, false
	}

	startClock, err1 := time.Parse(clockLayout, strings.ToUpper(strings.TrimSpace(parts[0])))
	endClock, err2 := time.Parse(clockLayout, strings.ToUpper(strings.TrimSpace(parts[1])))
	if err1 != nil || err2 != nil {
		return time.Time{}, time.Time{}, false
	}

	start = time.Date(day.Year(), day.Month(), day.Day(), startClock.Hour(), startClock.Minute(), 0, 0, loc)
	end = time.Date(day.Year(), day.Month(), day.Day(), endClock.Hour(), endClock.Minute(), 0, 0, loc)
	return start, end, true
}

// FirstOccurrence scans forward at most 7 consecutive days starting at start
// (inclusive) and returns the first date whose weekday is in days. With an
// empty weekday set no day can match and start is returned unchanged.
func FirstOccurrence(start time.Time, days []rrule.Weekday) time.Time {
	targets := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		targets[toTimeWeekday(d)] = true
	}

	current := start
	for i := 0; i < 7; i++ {
		if targets[current.Weekday()] {
			return current
		}
		current = current.AddDate(0, 0, 1)
	}
	return start
}

// toTimeWeekday converts the Monday-based rrule weekday to the Sunday-based
// time.Weekday.
func toTimeWeekday(d rrule.Weekday) time.Weekday {
	return time.Weekday((d.Day() + 1) % 7)
}
