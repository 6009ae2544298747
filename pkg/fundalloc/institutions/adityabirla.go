package institutions

import (
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/aggregate"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/parser"
	s "github.com/ukaji3/fundalloc-go/pkg/fundalloc/scanner"
)

// birlaSection adds the figures of a block starting at its heading row,
// up to any label mentioning "total" or the first blank after a figure.
func birlaSection(heading string) aggregate.Bounded {
	return aggregate.Bounded{
		Anchor: s.Has(heading),
		Options: s.AccumulateOptions{
			IncludeStart: true,
			StopAt:       s.Has("total"),
			Gap:          s.GapAfterNumeric,
		},
	}
}

// Aditya Birla publishes one header row and scatters blank spacer rows; the
// projection drops both before scanning. Every tag is written only when its
// section is present.
func adityaBirlaProfile() *aggregate.Profile {
	return &aggregate.Profile{
		ID:    string(AdityaBirla),
		Name:  "Aditya Birla Sun Life Mutual Fund",
		Sheet: parser.FirstSheet(),
		Projection: parser.Projection{
			LabelColumn:     1,
			ValueColumn:     6,
			RequiredColumns: 7,
			HeaderRows:      1,
			DropEmptyRows:   true,
		},
		Steps: []aggregate.Step{
			whenFound(tagHedgedEquity, aggregate.Bounded{
				Anchor:  s.Has("disclosure in derivatives"),
				Options: s.AccumulateOptions{IncludeStart: true, Gap: s.GapAfterNumeric},
			}),
			whenFound(tagGold, aggregate.FirstValue{Match: s.Has("gold")}),
			whenFound(tagSilver, aggregate.FirstValue{Match: s.Has("silver")}),
			whenFound("ReIT", birlaSection("reit")),
			whenFound("InvIT", birlaSection("invit")),
			whenFound(tagIntlEquity, birlaSection("foreign securities")),
			whenFound(tagNetEquity, aggregate.TotalAfter{
				Anchor:   s.Is("equity & equity related"),
				Boundary: s.BoundaryOptions{Labels: s.TotalOnly()},
			}),
			whenFound(tagDebt, aggregate.TotalAfter{
				Anchor:   s.Is("debt instruments"),
				Boundary: s.BoundaryOptions{Labels: s.TotalOnly()},
			}),
			{
				Tag: tagOf(tagCashAndOthers),
				Recipe: aggregate.Sum{
					birlaSection("treps"),
					birlaSection("net receivables"),
					aggregate.FirstValue{Match: s.Has("margin")},
				},
				Presence: aggregate.WhenNonZero,
			},
		},
		Adjustments: []aggregate.Adjustment{
			aggregate.FoldInto{Tag: tagDebt, Recipe: aggregate.Bounded{
				Anchor:  s.Has("market instruments"),
				Options: s.AccumulateOptions{IncludeStart: true, StopAt: s.Has("total"), Gap: s.GapNever},
			}},
			aggregate.HedgeNetting{Equity: tagNetEquity, Hedge: tagHedgedEquity},
		},
	}
}
