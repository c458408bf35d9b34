package rows

import "testing"

func TestParse_WellFormed(t *testing.T) {
	rec, ok := Parse("P001,2023-01-01T00:00:00Z,heart_rate,75")
	if !ok {
		t.Fatalf("expected a record")
	}
	want := EventRecord{
		PatientID: "P001",
		EventTime: "2023-01-01T00:00:00Z",
		EventType: "heart_rate",
		Value:     "75",
	}
	if rec != want {
		t.Fatalf("Parse = %+v, want %+v", rec, want)
	}
}

func TestParse_FieldsKeptVerbatim(t *testing.T) {
	// inner whitespace belongs to the field; only the whole line is trimmed
	rec, ok := Parse("  P001 , 2023-01-01 ,heart_rate, 75 ")
	if !ok {
		t.Fatalf("expected a record")
	}
	if rec.PatientID != "P001 " || rec.EventTime != " 2023-01-01 " {
		t.Fatalf("fields were trimmed: %+v", rec)
	}
	if rec.Value != " 75" {
		t.Fatalf("value was trimmed: %q", rec.Value)
	}
}

func TestParse_EmptyLine(t *testing.T) {
	for _, line := range []string{"", "   ", "\t", "\r\n"} {
		if _, ok := Parse(line); ok {
			t.Fatalf("Parse(%q) produced a record", line)
		}
		if Malformed(line) {
			t.Fatalf("empty line %q counted as malformed", line)
		}
	}
}

func TestParse_WrongFieldCount(t *testing.T) {
	for _, line := range []string{
		"malformed,row",
		"a,b,c",
		"a,b,c,d,e",
		"justoneword",
	} {
		if _, ok := Parse(line); ok {
			t.Fatalf("Parse(%q) produced a record", line)
		}
		if !Malformed(line) {
			t.Fatalf("line %q not counted as malformed", line)
		}
	}
}

func TestParse_EmbeddedCommaMisSplits(t *testing.T) {
	// accepted format limitation: a comma inside a field changes the count
	if _, ok := Parse(`P001,2023-01-01,note,"resting, supine"`); ok {
		t.Fatalf("embedded comma should mis-split into 5 fields and be rejected")
	}
	// empty fields are still fields
	rec, ok := Parse(",,,")
	if !ok {
		t.Fatalf("four empty fields should parse")
	}
	if rec.PatientID != "" || rec.Value != "" {
		t.Fatalf("empty fields should stay empty: %+v", rec)
	}
}
