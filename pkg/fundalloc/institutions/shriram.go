package institutions

import (
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/aggregate"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/parser"
	s "github.com/ukaji3/fundalloc-go/pkg/fundalloc/scanner"
)

// lastSectionTotal keeps the total of the last section starting with prefix.
func lastSectionTotal(prefix string) aggregate.TotalAfter {
	return aggregate.TotalAfter{
		Anchor:   s.Prefix(prefix),
		Boundary: s.BoundaryOptions{Labels: s.TotalOnly(), SkipInvalid: true},
		Policy:   aggregate.AnchorLastResolved,
	}
}

func shriramProfile() *aggregate.Profile {
	return &aggregate.Profile{
		ID:         string(Shriram),
		Name:       "Shriram Mutual Fund",
		Sheet:      parser.FirstSheet(),
		Projection: parser.Columns(1, 6),
		Steps: []aggregate.Step{
			always(tagEquity, validTotalAfter(s.Has("equity & equity related"), s.TotalOnly())),
			// Shriram reports REIT units under the debt block as well.
			always(tagDebt, aggregate.Sum{
				validTotalAfter(s.Has("debt instruments"), s.TotalOnly()),
				validTotalAfter(s.Has("real estate investment trust"), s.SubTotalOnly()),
			}),
			always(tagReITs, validTotalAfter(s.Has("reits"), s.TotalOnly())),
			always(tagInvITs, validTotalAfter(s.Has("invits"), s.TotalOnly())),
			always(tagGold, aggregate.SumMatching{Match: s.Has("gold")}),
			always(tagSilver, aggregate.SumMatching{Match: s.Has("silver"), Exclude: s.Has("gold")}),
			always(tagCash, aggregate.Sum{
				validTotalAfter(s.Has("treps"), s.SubTotalOnly()),
				aggregate.FirstValue{Match: s.Has("net receivables")},
			}),
			always(tagIntlEquity, lastSectionTotal("foreign")),
			always(tagHedgedEquity, lastSectionTotal("derivatives")),
		},
		Adjustments: []aggregate.Adjustment{
			aggregate.HedgeNetting{Equity: tagEquity, Hedge: tagHedgedEquity},
		},
	}
}
