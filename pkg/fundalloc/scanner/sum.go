package scanner

import (
	"github.com/shopspring/decimal"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
)

// SumAll adds the value of every matching row, skipping rows that match
// exclude. Unusable values are skipped.
func SumAll(t *models.Table, m Matcher, exclude Matcher) (decimal.Decimal, int) {
	sum := decimal.Zero
	count := 0
	for _, row := range t.Rows {
		if !m.MatchRow(row) {
			continue
		}
		if exclude != nil && exclude.MatchRow(row) {
			continue
		}
		if v, ok := Numeric(row.Value); ok {
			sum = sum.Add(v)
			count++
		}
	}
	return sum, count
}

// FirstValue returns the value of the first matching row at or after from.
// found reports whether a row matched; ok whether its value was usable.
func FirstValue(t *models.Table, m Matcher, from int) (v decimal.Decimal, found, ok bool) {
	i, found := Find(t, m, from)
	if !found {
		return decimal.Zero, false, false
	}
	v, ok = Numeric(t.At(i).Value)
	return v, true, ok
}

// FirstValid returns the value of the first matching row that holds a
// usable number.
func FirstValid(t *models.Table, m Matcher, from int) (decimal.Decimal, bool) {
	for _, i := range FindAll(t, m, from) {
		if v, ok := Numeric(t.At(i).Value); ok {
			return v, true
		}
	}
	return decimal.Zero, false
}

// LastValid returns the value of the last matching row that holds a
// usable number.
func LastValid(t *models.Table, m Matcher, from int) (decimal.Decimal, bool) {
	idx := FindAll(t, m, from)
	for k := len(idx) - 1; k >= 0; k-- {
		if v, ok := Numeric(t.At(idx[k]).Value); ok {
			return v, true
		}
	}
	return decimal.Zero, false
}

// EachOnce walks the table once and, for every matcher, adds the value of
// the first matching row holding a usable number. A row matching several
// matchers counts once per matcher. The walk ends when every matcher has
// contributed. found is the number of matchers that contributed.
func EachOnce(t *models.Table, ms []Matcher, from int) (decimal.Decimal, int) {
	sum := decimal.Zero
	done := make([]bool, len(ms))
	found := 0
	if from < 0 {
		from = 0
	}
	for i := from; i < t.Len() && found < len(ms); i++ {
		row := t.At(i)
		for k, m := range ms {
			if done[k] || !m.MatchRow(row) {
				continue
			}
			if v, ok := Numeric(row.Value); ok {
				sum = sum.Add(v)
				done[k] = true
				found++
			}
		}
	}
	return sum, found
}
