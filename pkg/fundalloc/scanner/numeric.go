package scanner

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
)

// Soft enumerates the reasons a cell is not a usable number.
type Soft int

const (
	// SoftNone means the cell is a usable number.
	SoftNone Soft = iota
	// SoftEmpty is a blank cell.
	SoftEmpty
	// SoftBlocklisted is a placeholder such as "nil", "na" or "-".
	SoftBlocklisted
	// SoftUnparseable is text that is not a decimal literal.
	SoftUnparseable
)

func (s Soft) String() string {
	switch s {
	case SoftNone:
		return "number"
	case SoftEmpty:
		return "empty"
	case SoftBlocklisted:
		return "placeholder"
	default:
		return "unparseable"
	}
}

// placeholders are the strings publishers use for "no holding".
var placeholders = map[string]struct{}{
	"":     {},
	"nil":  {},
	"na":   {},
	"n.a.": {},
	"-":    {},
	"--":   {},
}

// IsPlaceholder reports whether s is one of the "no value" spellings.
func IsPlaceholder(s string) bool {
	_, ok := placeholders[models.NormalizedLabel(s)]
	return ok
}

// Classify returns the cell's number, or the reason there is none.
func Classify(c models.Cell) (decimal.Decimal, Soft) {
	switch c.Kind {
	case models.CellNumber:
		return c.Number, SoftNone
	case models.CellText:
		if IsPlaceholder(c.Text) {
			return decimal.Zero, SoftBlocklisted
		}
		d, err := decimal.NewFromString(strings.TrimSpace(c.Text))
		if err != nil {
			return decimal.Zero, SoftUnparseable
		}
		return d, SoftNone
	default:
		return decimal.Zero, SoftEmpty
	}
}

// Numeric returns the cell's value when it is usable.
func Numeric(c models.Cell) (decimal.Decimal, bool) {
	d, soft := Classify(c)
	return d, soft == SoftNone
}
