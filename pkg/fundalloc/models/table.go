package models

// Row is one position of a projected label/value table.
type Row struct {
	// Index is the zero-based position in projection order.
	Index int
	// Label is the label cell's text, nil when the label cell is not text.
	Label *string
	// Value is the value cell as read.
	Value Cell
}

// HasLabel reports whether the row carries a text label.
func (r Row) HasLabel() bool { return r.Label != nil }

// LabelText returns the label or "" when absent.
func (r Row) LabelText() string {
	if r.Label == nil {
		return ""
	}
	return *r.Label
}

// Table is the ordered sequence of rows every extractor scans.
// It is never reordered once built.
type Table struct {
	Rows []Row
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// At returns the row at index i.
func (t *Table) At(i int) Row { return t.Rows[i] }
