package models

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Tag is an institution-specific category label such as "Net Equity".
type Tag string

// Entry is one row of the normalized output.
type Entry struct {
	Tag   Tag
	Value decimal.Decimal
}

// MarshalJSON renders the entry with the column names used by the summary workbook.
func (e Entry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"Tag":`)
	tag, err := json.Marshal(string(e.Tag))
	if err != nil {
		return nil, err
	}
	buf.Write(tag)
	buf.WriteString(`,"Final Value":`)
	buf.WriteString(e.Value.String())
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Result is the ordered Tag -> value mapping produced for one spreadsheet.
// Entries are kept in resolution order.
type Result struct {
	// Institution is the extractor id that produced the result.
	Institution string `json:"institution"`
	// Sheet is the worksheet that was read.
	Sheet string `json:"sheet"`
	// Entries holds one entry per resolved tag.
	Entries []Entry `json:"entries"`
}

// Len returns the number of entries.
func (r *Result) Len() int { return len(r.Entries) }

// Tags returns the tags in resolution order.
func (r *Result) Tags() []Tag {
	tags := make([]Tag, len(r.Entries))
	for i, e := range r.Entries {
		tags[i] = e.Tag
	}
	return tags
}

// Get returns the value stored for tag.
func (r *Result) Get(tag Tag) (decimal.Decimal, bool) {
	for _, e := range r.Entries {
		if e.Tag == tag {
			return e.Value, true
		}
	}
	return decimal.Zero, false
}

// Float returns the value for tag as float64, 0 when absent.
func (r *Result) Float(tag Tag) float64 {
	v, _ := r.Get(tag)
	return v.InexactFloat64()
}
