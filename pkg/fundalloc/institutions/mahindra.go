package institutions

import (
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/aggregate"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/parser"
	s "github.com/ukaji3/fundalloc-go/pkg/fundalloc/scanner"
)

func mahindraProfile() *aggregate.Profile {
	return &aggregate.Profile{
		ID:         string(Mahindra),
		Name:       "Mahindra Manulife Mutual Fund",
		Sheet:      parser.Sheet("MMF23"),
		Projection: parser.Columns(1, 6),
		Steps: []aggregate.Step{
			always(tagEquity, totalAfter(s.Has("equity & equity related"))),
			always(tagDebt, totalAfter(s.Has("debt instruments"))),
			always(tagReITs, totalAfter(s.Has("reits"))),
			always(tagInvITs, totalAfter(s.Has("invits"))),
			always(tagGold, aggregate.SumMatching{Match: s.Has("gold")}),
			always(tagSilver, aggregate.SumMatching{Match: s.Has("silver")}),
			always(tagCash, aggregate.Sum{
				totalAfter(s.Has("treps")),
				aggregate.FirstValue{Match: s.Has("net receivables")},
			}),
			always(tagIntlEquity, totalAfter(s.Prefix("foreign"))),
			always(tagHedgedEquity, totalAfter(s.Prefix("derivatives"))),
		},
	}
}
