// Package models defines data structures for allocation extraction.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CellKind distinguishes the three shapes a spreadsheet slot can take.
type CellKind int

const (
	// CellEmpty is a blank slot.
	CellEmpty CellKind = iota
	// CellText holds free text, including numbers stored as text.
	CellText
	// CellNumber holds a numeric value.
	CellNumber
)

func (k CellKind) String() string {
	switch k {
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	default:
		return "empty"
	}
}

// Cell is a single spreadsheet slot. Cells have no identity and compare by content.
type Cell struct {
	// Kind tells which of Text or Number is meaningful.
	Kind CellKind
	// Text is the raw text for CellText cells.
	Text string
	// Number is the value for CellNumber cells.
	Number decimal.Decimal
}

// Empty returns a blank cell.
func Empty() Cell { return Cell{} }

// Text returns a text cell.
func Text(s string) Cell { return Cell{Kind: CellText, Text: s} }

// Number returns a numeric cell.
func Number(d decimal.Decimal) Cell { return Cell{Kind: CellNumber, Number: d} }

// Float returns a numeric cell from a float64.
func Float(f float64) Cell { return Number(decimal.NewFromFloat(f)) }

// IsEmpty reports whether the cell is blank. Whitespace-only text counts as
// present: it is text, just not a usable number.
func (c Cell) IsEmpty() bool { return c.Kind == CellEmpty }

// String renders the cell the way it would read in the sheet.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return c.Number.String()
	default:
		return ""
	}
}

// Equal compares two cells by content.
func (c Cell) Equal(o Cell) bool {
	if c.Kind != o.Kind {
		return false
	}
	switch c.Kind {
	case CellText:
		return c.Text == o.Text
	case CellNumber:
		return c.Number.Equal(o.Number)
	default:
		return true
	}
}

// NormalizedLabel lowercases and trims text for case-insensitive matching.
func NormalizedLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
