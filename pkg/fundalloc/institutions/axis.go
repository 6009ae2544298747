package institutions

import (
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/aggregate"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/parser"
	s "github.com/ukaji3/fundalloc-go/pkg/fundalloc/scanner"
)

func axisProfile() *aggregate.Profile {
	reitBlock := func(prefix string) aggregate.TotalAfter {
		return aggregate.TotalAfter{
			Anchor:   s.Prefix(prefix),
			Boundary: s.BoundaryOptions{Labels: s.TotalOrSubTotal()},
		}
	}

	return &aggregate.Profile{
		ID:         string(Axis),
		Name:       "Axis Mutual Fund",
		Sheet:      parser.FirstSheet(),
		Projection: parser.Columns(1, 6),
		Steps: []aggregate.Step{
			always(tagHedgedEquity, totalAfter(s.Has("derivatives"))),
			always(tagNetEquity, totalAfter(s.Has("equity & equity related"))),
			always(tagDebt, aggregate.Sum{
				totalAfter(s.Has("debt instruments")),
				totalAfter(s.Has("money market instruments")),
			}),
			always(tagGold, aggregate.SumMatching{Match: s.Has("gold")}),
			always(tagSilver, aggregate.SumMatching{Match: s.Has("silver")}),
			always(tagIntlEquity, totalAfter(s.Has("foreign"))),
			always(tagReITInvIT, aggregate.Sum{reitBlock("reit"), reitBlock("invit")}),
			always(tagCashAndOthrs, aggregate.Sum{
				aggregate.TotalAfter{
					Anchor:   s.Has("reverse repo"),
					Boundary: s.BoundaryOptions{Labels: s.SubTotalOnly()},
				},
				aggregate.FirstValue{Match: s.Has("net receivables")},
			}),
		},
		Adjustments: []aggregate.Adjustment{
			aggregate.HedgeNetting{Equity: tagNetEquity, Hedge: tagHedgedEquity},
		},
	}
}
