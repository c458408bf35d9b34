// Package domain holds the core types and ports for the report pipeline
package domain

import (
	"bytes"
	"encoding/json"
	"strconv"

	"vitalsum/internal/adapters/export"
	"vitalsum/internal/core/rows"
)

// EventRecord re-exports the row shape consumed by the aggregator
type EventRecord = rows.EventRecord

// ExportDescriptor re-exports the resolved export shape
type ExportDescriptor = export.ExportDescriptor

// Counter is an insertion-ordered string -> int counter.
// Missing keys read as zero; the first increment of a key fixes its position
// in the marshalled output
type Counter struct {
	order  []string
	counts map[string]int
}

// Inc increments the count for key, creating it on first touch
func (c *Counter) Inc(key string) {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// Get returns the count for key, zero if absent
func (c *Counter) Get(key string) int { return c.counts[key] }

// Len returns the number of distinct keys
func (c *Counter) Len() int { return len(c.order) }

// Keys returns the keys in first-seen order
func (c *Counter) Keys() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Sum returns the sum of all counts
func (c *Counter) Sum() int {
	n := 0
	for _, v := range c.counts {
		n += v
	}
	return n
}

// MarshalJSON writes the counter as a JSON object in first-seen key order.
// Go's map marshalling sorts keys, which would break the emit contract
func (c *Counter) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(c.counts[k]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Tally is the aggregation state for one pipeline run: per-patient-per-event-type
// counts plus global per-event-type counts. Single-threaded by design; it is
// never shared across runs and needs no locking.
//
// Invariants held after every Apply:
//   - totals[t] equals the sum over all patients p of patients[p][t]
//   - every present patient has at least one event counted
type Tally struct {
	patientOrder []string
	patients     map[string]*Counter
	totals       Counter
}

// NewTally returns an empty aggregation state
func NewTally() *Tally {
	return &Tally{patients: make(map[string]*Counter)}
}

// Apply counts one record. Always succeeds given a well-formed record
func (t *Tally) Apply(rec EventRecord) {
	pc, ok := t.patients[rec.PatientID]
	if !ok {
		pc = &Counter{}
		t.patients[rec.PatientID] = pc
		t.patientOrder = append(t.patientOrder, rec.PatientID)
	}
	pc.Inc(rec.EventType)
	t.totals.Inc(rec.EventType)
}

// PatientIDs returns patient ids in first-seen order
func (t *Tally) PatientIDs() []string {
	out := make([]string, len(t.patientOrder))
	copy(out, t.patientOrder)
	return out
}

// PatientCount returns the count for one patient and event type, zero if absent
func (t *Tally) PatientCount(patientID, eventType string) int {
	pc, ok := t.patients[patientID]
	if !ok {
		return 0
	}
	return pc.Get(eventType)
}

// Patient returns the per-event-type counter for one patient, nil if absent
func (t *Tally) Patient(patientID string) *Counter { return t.patients[patientID] }

// TotalCount returns the global count for one event type, zero if absent
func (t *Tally) TotalCount(eventType string) int { return t.totals.Get(eventType) }

// Totals returns the global per-event-type counter
func (t *Tally) Totals() *Counter { return &t.totals }

// Events returns the total number of records applied
func (t *Tally) Events() int { return t.totals.Sum() }

// MarshalJSON writes {"patients": {...}, "totals": {...}} with both mappings
// in first-seen insertion order
func (t *Tally) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"patients":{`)
	for i, pid := range t.patientOrder {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(pid)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		pb, err := t.patients[pid].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(pb)
	}
	buf.WriteString(`},"totals":`)
	tb, err := t.totals.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf.Write(tb)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
