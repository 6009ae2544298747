package institutions

import (
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/aggregate"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/parser"
	s "github.com/ukaji3/fundalloc-go/pkg/fundalloc/scanner"
)

const (
	iciciNetEquity    = "Net equity"
	iciciHedgedEquity = "Hedged equity"
)

// futuresBlock sums the derivative lines listed under a heading. A text
// cell after the first figure ends the block.
func futuresBlock(heading string) aggregate.Bounded {
	return aggregate.Bounded{
		Anchor: s.Has(heading),
		Options: s.AccumulateOptions{
			IncludeStart: true,
			Gap:          s.GapAfterNumeric,
			Text:         s.TextStopAfterNumeric,
		},
	}
}

func iciciProfile() *aggregate.Profile {
	return &aggregate.Profile{
		ID:         string(ICICI),
		Name:       "ICICI Prudential Mutual Fund",
		Sheet:      parser.Sheet("MULTI"),
		Projection: parser.Columns(1, 7),
		Steps: []aggregate.Step{
			always(tagDebt, aggregate.Sum{
				aggregate.FirstValid{Match: s.Has("debt instruments")},
				aggregate.FirstValid{Match: s.Has("money market instruments")},
				aggregate.FirstValid{Match: s.Has("compulsory convertible debenture")},
			}),
			always(tagIntlEquity, aggregate.FirstValue{Match: s.Has("foreign securities")}),
			always(tagReITInvIT, aggregate.EachOnce{Matchers: []s.Matcher{s.Has("reit"), s.Has("invit")}}),
			always(tagGold, aggregate.FirstValue{Match: s.Has("gold etf")}),
			always(tagSilver, aggregate.FirstValue{Match: s.Has("silver etf")}),
			always(tagCommodity, futuresBlock("exchange traded commodity derivatives")),
			always(iciciHedgedEquity, futuresBlock("stock / index futures")),
			always(iciciNetEquity, aggregate.FirstValue{
				Match: s.Has("listed"),
				Scope: &aggregate.Scope{After: s.Has("equity")},
			}),
			always(tagCashAndOthrs, aggregate.EachOnce{Matchers: []s.Matcher{s.Has("treps"), s.Has("net current assets")}}),
		},
		Adjustments: []aggregate.Adjustment{
			aggregate.HedgeNetting{Equity: iciciNetEquity, Hedge: iciciHedgedEquity, RequireFound: true},
		},
	}
}
