package courses

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// TBA is the display placeholder shown for any schedule field that could not
// be determined from the pasted text. It only exists at serialization
// boundaries; inside the pipeline an undetermined field is simply not Valid.
const TBA = "TBA"

// Course is one parsed course meeting entry. ClassName is always set for a
// record that leaves the parser; every other field is either meaningful text
// or absent (Valid false), never an empty string standing in for unknown.
type Course struct {
	ClassName   string
	Instructor  pgtype.Text
	MeetingType pgtype.Text // lower-cased, e.g. "lecture"
	Time        pgtype.Text // raw "start - end" clock text
	Days        pgtype.Text // compact day letters, e.g. "MWF"
	Location    pgtype.Text
	DateRange   pgtype.Text // raw "start - end" date text
}

// Display collapses an optional field to its display text, substituting the
// TBA placeholder when the value is absent.
func Display(t pgtype.Text) string {
	if t.Valid {
		return t.String
	}
	return TBA
}
