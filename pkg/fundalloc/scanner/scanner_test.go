package scanner

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
)

// lv is a label/value pair; a nil label leaves the label cell blank.
type lv struct {
	label any
	value any
}

func cellOf(v any) models.Cell {
	switch x := v.(type) {
	case nil:
		return models.Empty()
	case string:
		return models.Text(x)
	case int:
		return models.Number(decimal.NewFromInt(int64(x)))
	case float64:
		return models.Float(x)
	default:
		panic("unsupported cell value")
	}
}

func table(rows ...lv) *models.Table {
	t := &models.Table{}
	for i, r := range rows {
		row := models.Row{Index: i, Value: cellOf(r.value)}
		if s, ok := r.label.(string); ok {
			row.Label = &s
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		cell models.Cell
		want Soft
		num  string
	}{
		{"number", models.Float(12.5), SoftNone, "12.5"},
		{"numeric text", models.Text("12.5"), SoftNone, "12.5"},
		{"padded numeric text", models.Text(" 7 "), SoftNone, "7"},
		{"empty", models.Empty(), SoftEmpty, "0"},
		{"nil", models.Text("nil"), SoftBlocklisted, "0"},
		{"NIL upper", models.Text(" NIL "), SoftBlocklisted, "0"},
		{"na", models.Text("na"), SoftBlocklisted, "0"},
		{"n.a.", models.Text("N.A."), SoftBlocklisted, "0"},
		{"dash", models.Text("-"), SoftBlocklisted, "0"},
		{"double dash", models.Text("--"), SoftBlocklisted, "0"},
		{"blank text", models.Text("   "), SoftBlocklisted, "0"},
		{"words", models.Text("Rating"), SoftUnparseable, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, soft := Classify(tt.cell)
			assert.Equal(t, tt.want, soft, "soft = %s", soft)
			assertDec(t, tt.num, v)
			_, ok := Numeric(tt.cell)
			assert.Equal(t, tt.want == SoftNone, ok)
		})
	}
}

func TestMatchModes(t *testing.T) {
	tests := []struct {
		m     Match
		label string
		want  bool
	}{
		{Has("equity"), "Equity & Equity related", true},
		{Has("equity"), "Listed", false},
		{Prefix("gold"), "  Gold ETF", true},
		{Prefix("gold"), "Units of Gold ETF", false},
		{Is("total"), " TOTAL ", true},
		{Is("total"), "Sub Total", false},
		{Is("Debt Instruments"), "debt instruments", true},
		{HasCase("Total for Debt"), "Total for Debt Instruments", true},
		{HasCase("Total for Debt"), "total for debt instruments", false},
	}
	for _, tt := range tests {
		t.Run(tt.m.String()+"/"+tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.MatchLabel(tt.label))
		})
	}

	unlabeled := models.Row{Value: models.Float(1)}
	assert.False(t, Has("").MatchRow(unlabeled), "rows without a label never match")
}

func TestCombinators(t *testing.T) {
	tbl := table(
		lv{"Gold", 1},
		lv{"Gold ETF Fund", 2},
		lv{"Silver Fund", 3},
	)
	i, ok := Find(tbl, AllOf(Has("gold"), Has("fund")), 0)
	require.True(t, ok)
	assert.Equal(t, 1, i)

	assert.Equal(t, []int{0, 1, 2}, FindAll(tbl, AnyOf(Has("gold"), Has("silver")), 0))
	assert.Equal(t, []int{2}, FindAll(tbl, Has("fund"), 2))
	assert.False(t, AllOf().MatchRow(tbl.At(0)), "empty AllOf matches nothing")

	_, ok = Find(tbl, Has("debt"), 0)
	assert.False(t, ok)
}

func TestAccumulate(t *testing.T) {
	t.Run("stops at gap after a figure", func(t *testing.T) {
		tbl := table(
			lv{"Futures", nil},
			lv{nil, 10},
			lv{nil, 20},
			lv{nil, nil},
			lv{nil, 30},
		)
		sum, n := Accumulate(tbl, 0, AccumulateOptions{})
		assertDec(t, "30", sum)
		assert.Equal(t, 2, n)
	})

	t.Run("leading blanks are skipped", func(t *testing.T) {
		tbl := table(
			lv{"Futures", nil},
			lv{nil, nil},
			lv{nil, nil},
			lv{"a", 5},
			lv{"b", nil},
			lv{"c", 9},
		)
		sum, n := Accumulate(tbl, 0, AccumulateOptions{})
		assertDec(t, "5", sum)
		assert.Equal(t, 1, n)
	})

	t.Run("include start", func(t *testing.T) {
		tbl := table(lv{"Gold", 4}, lv{"x", 6}, lv{nil, nil})
		sum, _ := Accumulate(tbl, 0, AccumulateOptions{IncludeStart: true})
		assertDec(t, "10", sum)
	})

	t.Run("stop label checked before value", func(t *testing.T) {
		tbl := table(lv{"Gold", nil}, lv{"x", 6}, lv{"Total", 6}, lv{"y", 1})
		sum, n := Accumulate(tbl, 0, AccumulateOptions{StopAt: Has("total"), Gap: GapNever})
		assertDec(t, "6", sum)
		assert.Equal(t, 1, n)
	})

	t.Run("placeholders are skipped", func(t *testing.T) {
		tbl := table(lv{"s", nil}, lv{"a", "nil"}, lv{"b", "-"}, lv{"c", "12.5"}, lv{nil, nil})
		sum, n := Accumulate(tbl, 0, AccumulateOptions{})
		assertDec(t, "12.5", sum)
		assert.Equal(t, 1, n)
	})

	t.Run("text stops after figure", func(t *testing.T) {
		tbl := table(lv{"s", nil}, lv{"a", "hdr"}, lv{"b", 2}, lv{"c", "Rating"}, lv{"d", 3})
		sum, _ := Accumulate(tbl, 0, AccumulateOptions{Text: TextStopAfterNumeric})
		assertDec(t, "2", sum)

		sum, _ = Accumulate(tbl, 0, AccumulateOptions{Text: TextSkip})
		assertDec(t, "5", sum)
	})

	t.Run("gap after start", func(t *testing.T) {
		tbl := table(lv{"s", nil}, lv{"a", nil}, lv{"b", 2})
		sum, n := Accumulate(tbl, 0, AccumulateOptions{Gap: GapAfterStart})
		assert.True(t, sum.IsZero())
		assert.Zero(t, n)
	})

	t.Run("start on last row", func(t *testing.T) {
		tbl := table(lv{"s", 1})
		sum, n := Accumulate(tbl, 0, AccumulateOptions{})
		assert.True(t, sum.IsZero())
		assert.Zero(t, n)
	})
}

func TestBoundaryLabelSetsAreFresh(t *testing.T) {
	labels := TotalOrSubTotal()
	labels[0] = "grand total"
	_ = append(TotalOnly()[:0], "net assets")

	assert.Equal(t, []string{"total", "sub total"}, TotalOrSubTotal())
	assert.Equal(t, []string{"total"}, TotalOnly())
	assert.Equal(t, []string{"sub total"}, SubTotalOnly())
}

func TestValueAfter(t *testing.T) {
	tbl := table(
		lv{"Equity", nil},
		lv{"Listed", 60},
		lv{"Total", "nil"},
		lv{"Sub Total", 20},
		lv{"Total", 70},
		lv{"Total", 5},
	)

	t.Run("first boundary decides", func(t *testing.T) {
		v, ok := ValueAfter(tbl, 0, BoundaryOptions{Labels: TotalOnly()})
		assert.False(t, ok)
		assert.True(t, v.IsZero())
	})

	t.Run("skip invalid", func(t *testing.T) {
		v, ok := ValueAfter(tbl, 0, BoundaryOptions{Labels: TotalOnly(), SkipInvalid: true})
		require.True(t, ok)
		assertDec(t, "70", v)
	})

	t.Run("nth sums valid boundaries", func(t *testing.T) {
		v, ok := ValueAfter(tbl, 0, BoundaryOptions{Labels: TotalOrSubTotal(), Nth: 2})
		require.True(t, ok)
		assertDec(t, "90", v)
	})

	t.Run("sub total only", func(t *testing.T) {
		v, ok := ValueAfter(tbl, 0, BoundaryOptions{Labels: SubTotalOnly()})
		require.True(t, ok)
		assertDec(t, "20", v)
	})

	t.Run("no boundary after start", func(t *testing.T) {
		_, ok := ValueAfter(tbl, 5, BoundaryOptions{Labels: TotalOnly()})
		assert.False(t, ok)
	})
}

func TestSums(t *testing.T) {
	tbl := table(
		lv{"Gold ETF", 3},
		lv{"Silver ETF", 4},
		lv{"Gold and Silver FoF", 5},
		lv{"Gold", "nil"},
		lv{"Silver", 6},
	)

	sum, n := SumAll(tbl, Has("silver"), Has("gold"))
	assertDec(t, "10", sum)
	assert.Equal(t, 2, n)

	v, found, ok := FirstValue(tbl, Is("gold"), 0)
	assert.True(t, found)
	assert.False(t, ok)
	assert.True(t, v.IsZero())

	v, ok = FirstValid(tbl, Has("gold"), 1)
	require.True(t, ok)
	assertDec(t, "5", v)

	v, ok = LastValid(tbl, Has("gold"), 0)
	require.True(t, ok)
	assertDec(t, "5", v)

	_, ok = LastValid(tbl, Has("debt"), 0)
	assert.False(t, ok)

	sum, n = EachOnce(tbl, []Matcher{Has("gold"), Has("silver")}, 0)
	assertDec(t, "7", sum)
	assert.Equal(t, 2, n)

	sum, n = EachOnce(tbl, []Matcher{Has("gold"), Has("reit")}, 0)
	assertDec(t, "3", sum)
	assert.Equal(t, 1, n)
}
