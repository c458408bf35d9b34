// Package rows parses line-delimited event rows from export data downloads.
//
// The wire format is deliberately dumb: four comma-separated fields with no
// quoting or escaping. A field that itself contains a comma mis-splits; that
// is a documented limitation of the format, not something this parser papers
// over.
package rows

import "strings"

// FieldCount is the exact number of fields in a well-formed row
const FieldCount = 4

// EventRecord is a single decoded event row. All fields are opaque strings;
// no semantic validation (timestamp format, numeric value) is performed here
type EventRecord struct {
	PatientID string
	EventTime string
	EventType string
	Value     string
}

// Parse decodes a raw line into an EventRecord.
// The whole line is trimmed first; a line that is empty after trimming
// returns (zero, false) and is not considered malformed.
// A line with a field count other than FieldCount is malformed and also
// returns (zero, false); callers decide whether to count it as skipped.
// Individual field content is passed through verbatim, untrimmed
func Parse(line string) (EventRecord, bool) {
	s := strings.TrimSpace(line)
	if s == "" {
		return EventRecord{}, false
	}
	parts := strings.Split(s, ",")
	if len(parts) != FieldCount {
		return EventRecord{}, false
	}
	return EventRecord{
		PatientID: parts[0],
		EventTime: parts[1],
		EventType: parts[2],
		Value:     parts[3],
	}, true
}

// Malformed reports whether a raw line should be counted as a skipped
// malformed row: non-empty after trimming but not parseable
func Malformed(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" {
		return false
	}
	return len(strings.Split(s, ",")) != FieldCount
}
