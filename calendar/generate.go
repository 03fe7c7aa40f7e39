package calendar

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/Phoenixs77/CarletonCalendar/courses"
)

const (
	// DefaultCalendarName is used when the caller does not pick a title.
	DefaultCalendarName = "Courses Calendar"

	// DefaultTimeZone is the zone events are anchored to unless overridden.
	DefaultTimeZone = "America/New_York"

	prodID        = "-//Course ICS Converter//EN"
	uidDomain     = "coursecalendar"
	icsTimeLayout = "20060102T150405"
)

// Options configure one document generation call.
type Options struct {
	// CalendarName is the human-readable calendar title (X-WR-CALNAME).
	CalendarName string

	// TimeZone is an IANA zone identifier resolved against the system tz
	// database. Only the default zone gets an inline VTIMEZONE definition;
	// other zones rely on X-WR-TIMEZONE and the importing client's tzdata.
	TimeZone string
}

// SkipReason says why a course produced no event.
type SkipReason string

const (
	SkipMissingSchedule SkipReason = "missing schedule fields"
	SkipBadDateRange    SkipReason = "unparseable date range"
	SkipNoMeetingDays   SkipReason = "no recognized meeting days"
	SkipBadTimeRange    SkipReason = "unparseable time range"
	SkipBadRecurrence   SkipReason = "recurrence rule not constructible"
)

// RecordOutcome reports what happened to one course record: either it was
// kept and became an event, or it was skipped for the given reason.
type RecordOutcome struct {
	Course courses.Course
	Kept   bool
	Reason SkipReason
}

// Generate turns parsed course records into the serialized calendar document
// and a per-record outcome report, in input order. Courses with incomplete or
// unparseable scheduling data are omitted from the document, never reported
// as an error; the only true failure is a contract violation such as an
// unresolvable time zone.
func Generate(list []courses.Course, opts Options) (string, []RecordOutcome, error) {
	if opts.CalendarName == "" {
		opts.CalendarName = DefaultCalendarName
	}
	zone := opts.TimeZone
	if zone == "" {
		zone = DefaultTimeZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return "", nil, fmt.Errorf("resolving time zone %q: %w", zone, err)
	}

	cal := ics.NewCalendar()
	cal.SetProductId(prodID)
	cal.SetXWRCalName(opts.CalendarName)
	cal.SetXWRTimezone(zone)
	if zone == DefaultTimeZone {
		cal.Components = append(cal.Components, newYorkTimezone())
	}

	now := time.Now().In(loc)

	outcomes := make([]RecordOutcome, 0, len(list))
	for _, course := range list {
		reason := addEvent(cal, course, now, loc, zone)
		outcomes = append(outcomes, RecordOutcome{
			Course: course,
			Kept:   reason == "",
			Reason: reason,
		})
	}

	return cal.Serialize(), outcomes, nil
}

// addEvent resolves one course into a recurring event on cal. An empty
// SkipReason means the event was added.
func addEvent(cal *ics.Calendar, course courses.Course, now time.Time, loc *time.Location, zone string) SkipReason {
	if !course.DateRange.Valid || !course.Time.Valid || !course.Days.Valid {
		return SkipMissingSchedule
	}

	rangeStart, rangeEnd, ok := ParseDateRange(course.DateRange.String)
	if !ok {
		return SkipBadDateRange
	}

	days := ParseDays(course.Days.String)
	if len(days) == 0 {
		return SkipNoMeetingDays
	}

	first := FirstOccurrence(rangeStart, days)
	start, end, ok := ParseTimeRange(course.Time.String, first, loc)
	if !ok {
		return SkipBadTimeRange
	}

	// The series stops on the last day of the range at the same clock time
	// it starts.
	until := time.Date(rangeEnd.Year(), rangeEnd.Month(), rangeEnd.Day(),
		start.Hour(), start.Minute(), 0, 0, loc)
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Until:     until,
		Byweekday: days,
	})
	if err != nil {
		return SkipBadRecurrence
	}

	tzid := &ics.KeyValues{Key: string(ics.ParameterTzid), Value: []string{zone}}

	event := cal.AddEvent(fmt.Sprintf("%s@%s", uuid.NewString(), uidDomain))
	event.SetProperty(ics.ComponentPropertyDtstamp, now.Format(icsTimeLayout))
	event.SetProperty(ics.ComponentPropertyDtStart, start.Format(icsTimeLayout), tzid)
	event.SetProperty(ics.ComponentPropertyDtEnd, end.Format(icsTimeLayout), tzid)
	event.AddRrule(rule.OrigOptions.RRuleString())
	event.SetSummary(course.ClassName)
	// real newline here: serialization escapes text values exactly once
	event.SetDescription(fmt.Sprintf("Type: %s\nInstructor: %s",
		capitalize(courses.Display(course.MeetingType)),
		courses.Display(course.Instructor)))
	event.SetLocation(courses.Display(course.Location))

	return ""
}

// newYorkTimezone is the inline definition for the default zone: US Eastern,
// forward on the second Sunday of March, back on the first Sunday of November.
func newYorkTimezone() *ics.GeneralComponent {
	daylight := ics.GeneralComponent{Token: "DAYLIGHT"}
	daylight.AddProperty("TZOFFSETFROM", "-0500")
	daylight.AddProperty("TZOFFSETTO", "-0400")
	daylight.AddProperty("TZNAME", "EDT")
	daylight.AddProperty(ics.ComponentPropertyDtStart, "19700308T020000")
	daylight.AddProperty(ics.ComponentPropertyRrule, "FREQ=YEARLY;BYMONTH=3;BYDAY=2SU")

	standard := ics.GeneralComponent{Token: "STANDARD"}
	standard.AddProperty("TZOFFSETFROM", "-0400")
	standard.AddProperty("TZOFFSETTO", "-0500")
	standard.AddProperty("TZNAME", "EST")
	standard.AddProperty(ics.ComponentPropertyDtStart, "19701101T020000")
	standard.AddProperty(ics.ComponentPropertyRrule, "FREQ=YEARLY;BYMONTH=11;BYDAY=1SU")

	tz := ics.GeneralComponent{Token: "VTIMEZONE"}
	tz.AddProperty("TZID", DefaultTimeZone)
	tz.AddProperty("X-LIC-LOCATION", DefaultTimeZone)
	tz.Components = append(tz.Components, &daylight, &standard)
	return &tz
}

// capitalize upper-cases the first letter and lower-cases the rest, for the
// meeting type shown in event descriptions.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
