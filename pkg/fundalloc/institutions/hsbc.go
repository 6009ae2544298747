package institutions

import (
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/aggregate"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/parser"
	s "github.com/ukaji3/fundalloc-go/pkg/fundalloc/scanner"
)

// hsbcTotals sums the first n usable "total"/"sub total" rows after anchor.
func hsbcTotals(anchor s.Matcher, n int) aggregate.TotalAfter {
	return aggregate.TotalAfter{
		Anchor: anchor,
		Boundary: s.BoundaryOptions{
			Labels:      s.TotalOrSubTotal(),
			Nth:         n,
			SkipInvalid: true,
		},
	}
}

func hsbcProfile() *aggregate.Profile {
	return &aggregate.Profile{
		ID:         string(HSBC),
		Name:       "HSBC Mutual Fund",
		Sheet:      parser.FirstSheet(),
		Projection: parser.Columns(0, 5),
		Steps: []aggregate.Step{
			always(tagNetEquity, hsbcTotals(s.Has("equity & equity related instruments"), 1)),
			// listed, unlisted and money market debt each close with their own total
			always(tagDebt, hsbcTotals(s.Has("debt instruments"), 3)),
			always(tagGold, hsbcTotals(s.Has("exchange traded fund"), 1)),
			always(tagCash, aggregate.Sum{
				aggregate.LastValid{Match: s.Has("treps")},
				aggregate.LastValid{Match: s.Has("net current assets")},
			}),
			always(tagReITInvIT, hsbcTotals(s.AnyOf(s.Has("reits"), s.Has("invits")), 1)),
			always(tagIntlEquity, hsbcTotals(s.Has("foreign"), 1)),
			always(tagSilver, aggregate.SumMatching{Match: s.Has("silver")}),
		},
	}
}
