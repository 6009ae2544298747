package scanner

import (
	"github.com/shopspring/decimal"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
)

// TotalOnly is the "total" boundary label set. Each call returns a fresh
// slice so profiles never share one.
func TotalOnly() []string { return []string{"total"} }

// SubTotalOnly is the "sub total" boundary label set.
func SubTotalOnly() []string { return []string{"sub total"} }

// TotalOrSubTotal accepts either boundary label.
func TotalOrSubTotal() []string { return []string{"total", "sub total"} }

// BoundaryOptions configures ValueAfter.
type BoundaryOptions struct {
	// Labels are compared to the trimmed, lowercased row label.
	Labels []string
	// Nth sums the values of the first Nth boundary rows. Zero means one.
	Nth int
	// SkipInvalid ignores boundary rows whose value is not a usable number.
	// Without it the first boundary row decides and an unusable value
	// resolves to zero.
	SkipInvalid bool
}

// IsBoundary reports whether row's label is one of the boundary labels.
func (o BoundaryOptions) IsBoundary(row models.Row) bool {
	if !row.HasLabel() {
		return false
	}
	label := models.NormalizedLabel(*row.Label)
	for _, l := range o.Labels {
		if label == l {
			return true
		}
	}
	return false
}

// ValueAfter returns the value of the boundary row following start.
// ok is false when no boundary with a usable value was found.
func ValueAfter(t *models.Table, start int, o BoundaryOptions) (decimal.Decimal, bool) {
	n := o.Nth
	if n < 1 {
		n = 1
	}

	sum := decimal.Zero
	count := 0
	for i := start + 1; i < t.Len(); i++ {
		row := t.At(i)
		if !o.IsBoundary(row) {
			continue
		}
		v, usable := Numeric(row.Value)
		if !usable {
			if o.SkipInvalid || n > 1 {
				continue
			}
			return decimal.Zero, false
		}
		sum = sum.Add(v)
		count++
		if count == n {
			break
		}
	}
	return sum, count > 0
}
