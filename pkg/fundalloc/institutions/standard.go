package institutions

import (
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/aggregate"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/parser"
	s "github.com/ukaji3/fundalloc-go/pkg/fundalloc/scanner"
)

// standardProfile reads the common monthly disclosure layout: instrument
// names in column 1, market value in column 6, each asset class closed by a
// "Total" row.
func standardProfile(id ID, name string) *aggregate.Profile {
	return &aggregate.Profile{
		ID:         string(id),
		Name:       name,
		Sheet:      parser.FirstSheet(),
		Projection: parser.Columns(1, 6),
		Steps: []aggregate.Step{
			always(tagNetEquity, totalAfter(s.Has("equity & equity related"))),
			always(tagHedgedEquity, totalAfter(s.Prefix("derivatives"))),
			always(tagDebt, aggregate.Sum{
				totalAfter(s.Has("debt instruments")),
				totalAfter(s.Has("money market instruments")),
			}),
			always(tagGold, aggregate.SumMatching{Match: s.Has("gold")}),
			always(tagSilver, aggregate.SumMatching{Match: s.Has("silver"), Exclude: s.Has("gold")}),
			always(tagIntlEquity, totalAfter(s.Prefix("foreign"))),
			always(tagReITInvIT, aggregate.Sum{
				aggregate.TotalAfter{Anchor: s.Prefix("reit"), Boundary: s.BoundaryOptions{Labels: s.TotalOrSubTotal()}},
				aggregate.TotalAfter{Anchor: s.Prefix("invit"), Boundary: s.BoundaryOptions{Labels: s.TotalOrSubTotal()}},
			}),
			always(tagCashAndOthers, aggregate.Sum{
				aggregate.TotalAfter{Anchor: s.Has("treps"), Boundary: s.BoundaryOptions{Labels: s.SubTotalOnly()}},
				aggregate.FirstValue{Match: s.Has("net receivables")},
			}),
		},
		Adjustments: []aggregate.Adjustment{
			aggregate.HedgeNetting{Equity: tagNetEquity, Hedge: tagHedgedEquity},
		},
	}
}
