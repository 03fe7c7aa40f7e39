package courses

import (
	"testing"
)

const tabBlock = "Computer Science I - 12345 - CS 101 - 01\n" +
	"Associated Term: Spring 2025\n" +
	"Assigned Instructor: Jane Doe\n" +
	"Scheduled Meeting Times\n" +
	"Type\tTime\tDays\tWhere\tDate Range\tSchedule Type\tInstructors\n" +
	"Class\t9:30 am - 10:45 am\tMWF\tMain Hall 101\t01/06/2025 - 04/08/2025\tLecture\tJane Doe (P)\n"

func TestParseTabDelimitedBlock(t *testing.T) {
	records := ParseCourses(tabBlock)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	course := records[0]

	if course.ClassName != "Computer Science I - 12345 - CS 101 - 01" {
		t.Errorf("wrong class name: %q", course.ClassName)
	}
	if !course.Instructor.Valid || course.Instructor.String != "Jane Doe" {
		t.Errorf("wrong instructor: %+v", course.Instructor)
	}
	if !course.Time.Valid || course.Time.String != "9:30 am - 10:45 am" {
		t.Errorf("wrong time: %+v", course.Time)
	}
	if !course.Days.Valid || course.Days.String != "MWF" {
		t.Errorf("wrong days: %+v", course.Days)
	}
	if !course.Location.Valid || course.Location.String != "Main Hall 101" {
		t.Errorf("wrong location: %+v", course.Location)
	}
	if !course.DateRange.Valid || course.DateRange.String != "01/06/2025 - 04/08/2025" {
		t.Errorf("wrong date range: %+v", course.DateRange)
	}
	if !course.MeetingType.Valid || course.MeetingType.String != "lecture" {
		t.Errorf("meeting type should be lower-cased: %+v", course.MeetingType)
	}
}

func TestParseColumnPositionFallback(t *testing.T) {
	// no tabs at all, columns separated by runs of spaces
	block := "Intro to Philosophy - 54321 - PHIL 110 - 02\n" +
		"Scheduled Meeting Times\n" +
		"Type  Time  Days  Where  Date Range  Schedule Type  Instructors\n" +
		"Class  1:00 pm - 2:15 pm  TR  West Wing 12  Jan 06, 2025 - Apr 08, 2025  Seminar  John Smith\n"

	records := ParseCourses(block)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	course := records[0]

	if !course.Time.Valid || course.Time.String != "1:00 pm - 2:15 pm" {
		t.Errorf("wrong time: %+v", course.Time)
	}
	if !course.Days.Valid || course.Days.String != "TR" {
		t.Errorf("wrong days: %+v", course.Days)
	}
	if !course.Location.Valid || course.Location.String != "West Wing 12" {
		t.Errorf("wrong location: %+v", course.Location)
	}
	if !course.DateRange.Valid || course.DateRange.String != "Jan 06, 2025 - Apr 08, 2025" {
		t.Errorf("wrong date range: %+v", course.DateRange)
	}
	if !course.MeetingType.Valid || course.MeetingType.String != "seminar" {
		t.Errorf("wrong meeting type: %+v", course.MeetingType)
	}
}

func TestParseFallbackIsAllOrNothing(t *testing.T) {
	// fewer than 7 positional fields: every schedule field must stay absent,
	// not partially populated from the columns that did split out
	block := "Short Block\n" +
		"Scheduled Meeting Times\n" +
		"Type  Time  Days\n" +
		"Class  9:30 am - 10:45 am  MWF\n"

	records := ParseCourses(block)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	course := records[0]
	for name, field := range map[string]bool{
		"Time":        course.Time.Valid,
		"Days":        course.Days.Valid,
		"Location":    course.Location.Valid,
		"DateRange":   course.DateRange.Valid,
		"MeetingType": course.MeetingType.Valid,
	} {
		if field {
			t.Errorf("%s should be absent", name)
		}
	}
}

func TestParseMissingHeaderFallsThrough(t *testing.T) {
	// tab-delimited data line but the header row does not name the expected
	// columns: the tab strategy gives up, and single tabs are too narrow for
	// the two-or-more-whitespace positional split, so nothing is extracted
	block := "Organic Chemistry - 11111 - CHEM 301 - 01\n" +
		"Scheduled Meeting Times\n" +
		"A\tB\tC\n" +
		"Class\t11:00 am - 11:50 am\tMWF\tScience 5\t01/06/2025 - 04/08/2025\tLecture\tA. Prof\n"

	records := ParseCourses(block)
	course := records[0]
	if course.Days.Valid || course.Time.Valid || course.MeetingType.Valid {
		t.Errorf("schedule fields should be absent when no strategy matches: %+v", course)
	}
}

func TestParseNoScheduleSection(t *testing.T) {
	records := ParseCourses("Some Course Title\nAssociated Term: Spring 2025\n")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	course := records[0]
	if course.ClassName != "Some Course Title" {
		t.Errorf("wrong class name: %q", course.ClassName)
	}
	if course.Instructor.Valid {
		t.Errorf("instructor should be absent, got %q", course.Instructor.String)
	}
	if Display(course.Instructor) != TBA {
		t.Errorf("absent instructor should display as %q", TBA)
	}
	if course.Time.Valid || course.Days.Valid || course.DateRange.Valid {
		t.Error("schedule fields should all be absent")
	}
}

func TestParseMultipleBlocksInOrder(t *testing.T) {
	text := "First Course\n\n\nSecond Course\nAssigned Instructor: A. Person\n"
	records := ParseCourses(text)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ClassName != "First Course" || records[1].ClassName != "Second Course" {
		t.Errorf("blocks out of order: %q, %q", records[0].ClassName, records[1].ClassName)
	}
	if !records[1].Instructor.Valid || records[1].Instructor.String != "A. Person" {
		t.Errorf("wrong instructor on second record: %+v", records[1].Instructor)
	}
}

func TestParseEmptyInput(t *testing.T) {
	if records := ParseCourses(""); len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
	if records := ParseCourses("\n\n  \n\n"); len(records) != 0 {
		t.Fatalf("expected no records from blank input, got %d", len(records))
	}
}

func TestParseLiteralTBACellStaysAbsent(t *testing.T) {
	block := "Online Course\n" +
		"Scheduled Meeting Times\n" +
		"Type\tTime\tDays\tWhere\tDate Range\tSchedule Type\tInstructors\n" +
		"Class\tTBA\tTBA\tTBA\t01/06/2025 - 04/08/2025\tLecture\tJane Doe\n"

	course := ParseCourses(block)[0]
	if course.Time.Valid || course.Days.Valid || course.Location.Valid {
		t.Error("TBA cells carry no schedule information and should be absent")
	}
	if !course.DateRange.Valid {
		t.Error("date range was real data and should be present")
	}
}
