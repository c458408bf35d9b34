package domain

import (
	"fmt"
	"time"
)

// Fixture export ids
const (
	ExportDemo  = "demo"
	ExportSmall = "small"
	ExportLarge = "large"
)

var eventTypes = []string{"heart_rate", "blood_pressure", "spo2", "temperature", "respiration"}

var baseTime = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

// synthRows generates n deterministic event rows for a download. seed offsets
// the patient/event rotation so downloads within an export do not repeat each
// other. When withMalformed is set, every 40th row is emitted with a missing
// field so consumers exercise their skip path
func synthRows(seed, n int, withMalformed bool) []string {
	rows := make([]string, 0, n)
	for i := 0; i < n; i++ {
		patient := fmt.Sprintf("P%03d", (seed*7+i)%12+1)
		et := eventTypes[(seed+i)%len(eventTypes)]
		ts := baseTime.Add(time.Duration(seed*1440+i) * time.Minute).Format(time.RFC3339)
		value := fmt.Sprintf("%d", 60+(seed*13+i*5)%80)

		if withMalformed && i > 0 && i%40 == 0 {
			rows = append(rows, fmt.Sprintf("%s,%s,%s", patient, ts, et))
			continue
		}
		rows = append(rows, fmt.Sprintf("%s,%s,%s,%s", patient, ts, et, value))
	}
	return rows
}

// BuiltinDatasets returns the three fixture exports served by exportd.
// Generation is deterministic, so repeated server runs produce identical
// bodies and identical aggregate results
func BuiltinDatasets() []Dataset {
	demo := Dataset{
		ExportID: ExportDemo,
		Downloads: []Download{
			{ID: "demo-001", Rows: []string{
				"P001,2023-01-01T00:00:00Z,heart_rate,72",
				"P001,2023-01-01T00:05:00Z,heart_rate,75",
				"P001,2023-01-01T00:10:00Z,spo2,98",
				"P002,2023-01-01T00:00:00Z,heart_rate,81",
				"P002,2023-01-01T00:05:00Z,temperature,36.8",
				"P002,bad_row_missing_fields",
				"P003,2023-01-01T00:00:00Z,blood_pressure,120/80",
			}},
		},
	}

	small := Dataset{ExportID: ExportSmall}
	for i := 0; i < 2; i++ {
		small.Downloads = append(small.Downloads, Download{
			ID:   fmt.Sprintf("small-%03d", i+1),
			Rows: synthRows(i, 25, i == 1),
		})
	}

	large := Dataset{ExportID: ExportLarge}
	for i := 0; i < 8; i++ {
		large.Downloads = append(large.Downloads, Download{
			ID:   fmt.Sprintf("large-%03d", i+1),
			Rows: synthRows(i, 250, true),
		})
	}

	return []Dataset{demo, small, large}
}
