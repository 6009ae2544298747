package institutions

import (
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/aggregate"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/parser"
	s "github.com/ukaji3/fundalloc-go/pkg/fundalloc/scanner"
)

func sundaramProfile() *aggregate.Profile {
	return &aggregate.Profile{
		ID:         string(Sundaram),
		Name:       "Sundaram Mutual Fund",
		Sheet:      parser.FirstSheet(),
		Projection: parser.Columns(2, 6),
		Steps: []aggregate.Step{
			always(tagEquity, validTotalAfter(s.Has("equity & equity related"), s.SubTotalOnly())),
			always(tagDebt, aggregate.Sum{
				aggregate.FirstValue{Match: s.HasCase("Total for Debt Instruments")},
				validTotalAfter(s.Has("treasury bills"), s.SubTotalOnly()),
			}),
			always(tagReITs, validTotalAfter(s.Has("reits"), s.TotalOnly())),
			always(tagInvITs, validTotalAfter(s.Has("invits"), s.TotalOnly())),
			always(tagGold, aggregate.SumMatching{Match: s.Has("gold")}),
			always(tagSilver, aggregate.SumMatching{Match: s.Has("silver"), Exclude: s.Has("gold")}),
			// margin money and the cash/other line are outflows against TREPS
			always(tagCash, aggregate.Sum{
				aggregate.Abs{Of: validTotalAfter(s.Has("treps"), s.SubTotalOnly())},
				aggregate.Negate{Of: aggregate.Sum{
					aggregate.Abs{Of: aggregate.LastValid{Match: s.Has("margin money")}},
					aggregate.Abs{Of: aggregate.LastValid{Match: s.Has("cash and other")}},
				}},
			}),
			always(tagIntlEquity, aggregate.TotalAfter{
				Anchor:   s.Prefix("foreign"),
				Boundary: s.BoundaryOptions{Labels: s.TotalOnly(), SkipInvalid: true},
			}),
			always(tagHedgedEquity, validTotalAfter(s.Has("derivative"), s.SubTotalOnly())),
		},
		Adjustments: []aggregate.Adjustment{
			aggregate.HedgeNetting{Equity: tagEquity, Hedge: tagHedgedEquity},
		},
	}
}
