package courses

import (
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	instructorMarker = "Assigned Instructor:"
	scheduleMarker   = "Scheduled Meeting Times"
)

// meetingFields are the schedule columns pulled out of one data line.
type meetingFields struct {
	Time        pgtype.Text
	Days        pgtype.Text
	Location    pgtype.Text
	DateRange   pgtype.Text
	MeetingType pgtype.Text
}

// meetingStrategy tries to extract schedule fields from a header/data line
// pair. A false return means the strategy cannot claim the line and the next
// one in the chain is tried; it never errors.
type meetingStrategy func(headerLine, dataLine string) (meetingFields, bool)

var meetingStrategies = []meetingStrategy{
	parseTabDelimited,
	parseColumnPositions,
}

var columnSplit = regexp.MustCompile(`\s{2,}`)

// ParseCourses splits raw pasted text into blank-line separated blocks and
// produces one Course per non-empty block, in input order. Malformed blocks
// still yield a record with their schedule fields absent; this function never
// fails on bad input.
func ParseCourses(text string) []Course {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))

	var out []Course
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		out = append(out, parseBlock(strings.Split(block, "\n")))
	}
	return out
}

func parseBlock(lines []string) Course {
	course := Course{ClassName: strings.TrimSpace(lines[0])}

	for _, line := range lines {
		if idx := strings.Index(line, instructorMarker); idx >= 0 {
			course.Instructor = present(strings.TrimSpace(line[idx+len(instructorMarker):]))
		}
	}

	headerLine, dataLine := scheduleLines(lines)
	if dataLine == "" {
		return course
	}

	for _, strategy := range meetingStrategies {
		fields, ok := strategy(headerLine, dataLine)
		if !ok {
			continue
		}
		course.Time = fields.Time
		course.Days = fields.Days
		course.Location = fields.Location
		course.DateRange = fields.DateRange
		course.MeetingType = fields.MeetingType
		break
	}
	return course
}

// scheduleLines finds the section marker and returns the column-header line
// directly after it and the data line after that. Either may be empty when
// the block ends early or has no marker at all.
func scheduleLines(lines []string) (headerLine, dataLine string) {
	for i, line := range lines {
		if !strings.Contains(line, scheduleMarker) {
			continue
		}
		if i+1 < len(lines) {
			headerLine = strings.TrimSpace(lines[i+1])
		}
		if i+2 < len(lines) {
			dataLine = strings.TrimSpace(lines[i+2])
		}
		return headerLine, dataLine
	}
	return "", ""
}

// parseTabDelimited reads cells by column-header name from tab-split lines.
// It only claims data lines that actually contain a tab, and gives up when
// any expected header is missing or the data row is shorter than its header.
func parseTabDelimited(headerLine, dataLine string) (meetingFields, bool) {
	var f meetingFields
	if !strings.Contains(dataLine, "\t") {
		return f, false
	}

	headers := strings.Split(headerLine, "\t")
	data := strings.Split(dataLine, "\t")
	cell := func(name string) (string, bool) {
		for i, h := range headers {
			if h == name {
				if i >= len(data) {
					return "", false
				}
				return strings.TrimSpace(data[i]), true
			}
		}
		return "", false
	}

	timeVal, ok1 := cell("Time")
	days, ok2 := cell("Days")
	where, ok3 := cell("Where")
	dateRange, ok4 := cell("Date Range")
	meetingType, ok5 := cell("Schedule Type")
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return f, false
	}

	f.Time = present(timeVal)
	f.Days = present(days)
	f.Location = present(where)
	f.DateRange = present(dateRange)
	f.MeetingType = present(strings.ToLower(meetingType))
	return f, true
}

// parseColumnPositions splits the data line on runs of two or more whitespace
// characters and reads fields by position. Fewer than 7 columns means the
// layout is not recognized and every field stays absent.
func parseColumnPositions(_ string, dataLine string) (meetingFields, bool) {
	var f meetingFields
	parts := columnSplit.Split(dataLine, -1)
	if len(parts) < 7 {
		return f, false
	}

	f.Time = present(strings.TrimSpace(parts[1]))
	f.Days = present(strings.TrimSpace(parts[2]))
	f.Location = present(strings.TrimSpace(parts[3]))
	f.DateRange = present(strings.TrimSpace(parts[4]))
	f.MeetingType = present(strings.ToLower(strings.TrimSpace(parts[5])))
	return f, true
}

// present wraps extracted text as a valid optional value. Empty cells and
// cells Banner itself prints as TBA carry no information and stay absent.
func present(s string) pgtype.Text {
	if s == "" || s == TBA {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
