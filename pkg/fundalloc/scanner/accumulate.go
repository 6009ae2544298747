package scanner

import (
	"github.com/shopspring/decimal"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
)

// GapPolicy decides when a blank value ends an accumulation.
type GapPolicy int

const (
	// GapAfterNumeric stops at the first blank once a figure has been added.
	// Blanks before the first figure are header spacing and are skipped.
	GapAfterNumeric GapPolicy = iota
	// GapAfterStart stops at the first blank after the start row.
	GapAfterStart
	// GapNever ignores blanks; only StopAt or the end of the table stops.
	GapNever
)

// TextPolicy decides what a non-empty, non-numeric value does.
type TextPolicy int

const (
	// TextSkip ignores the cell and keeps walking.
	TextSkip TextPolicy = iota
	// TextStopAfterNumeric ends the walk once a figure has been added.
	TextStopAfterNumeric
)

// AccumulateOptions configures Accumulate.
type AccumulateOptions struct {
	// IncludeStart adds the start row itself.
	IncludeStart bool
	// StopAt ends the walk at the first row whose label matches, before
	// its value is read.
	StopAt Matcher
	Gap    GapPolicy
	Text   TextPolicy
}

// Accumulate walks forward from start adding figures until a boundary.
// It returns the sum and the number of figures added.
func Accumulate(t *models.Table, start int, o AccumulateOptions) (decimal.Decimal, int) {
	sum := decimal.Zero
	count := 0

	i := start + 1
	if o.IncludeStart {
		i = start
	}
	for ; i < t.Len(); i++ {
		row := t.At(i)
		if o.StopAt != nil && o.StopAt.MatchRow(row) {
			break
		}

		if row.Value.IsEmpty() {
			switch o.Gap {
			case GapAfterNumeric:
				if count > 0 {
					return sum, count
				}
			case GapAfterStart:
				if i != start {
					return sum, count
				}
			}
			continue
		}

		v, ok := Numeric(row.Value)
		if !ok {
			if o.Text == TextStopAfterNumeric && count > 0 {
				break
			}
			continue
		}
		sum = sum.Add(v)
		count++
	}
	return sum, count
}
