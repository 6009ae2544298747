package institutions

import (
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/aggregate"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/parser"
	s "github.com/ukaji3/fundalloc-go/pkg/fundalloc/scanner"
)

// HDFC sheets read from several columns of one layout: column 1 carries
// ISIN or classification text, column 3 the instrument name (or the
// classification figure), column 7 the market exposure. The workbook is
// sliced up to column 11, so narrower sheets are rejected.
const (
	hdfcWidth = 12

	// hdfcByName labels rows by instrument name and reads exposure.
	hdfcByName = "name"
	// hdfcExposure labels rows by column 1 and reads exposure.
	hdfcExposure = "exposure"
)

func hdfcProfile() *aggregate.Profile {
	classification := &aggregate.Scope{After: s.Has("portfolio classification")}

	return &aggregate.Profile{
		ID:         string(HDFC),
		Name:       "HDFC Mutual Fund",
		Sheet:      parser.Sheet("MY2005"),
		Projection: parser.Projection{LabelColumn: 1, ValueColumn: 3, RequiredColumns: hdfcWidth},
		Views: map[string]parser.Projection{
			hdfcByName:   {LabelColumn: 3, ValueColumn: 7, RequiredColumns: hdfcWidth},
			hdfcExposure: {LabelColumn: 1, ValueColumn: 7, RequiredColumns: hdfcWidth},
		},
		Steps: []aggregate.Step{
			whenFound(tagNetEquity, aggregate.FirstValue{Match: s.Has("equity"), Scope: classification}),
			whenFound(tagHedgedEquity, aggregate.FirstValue{Match: s.Has("total hedged exposure"), Scope: classification}),
			always(tagReITInvIT, aggregate.Sum{
				aggregate.LastValid{Match: s.Has("units issued by reit"), Scope: classification},
				aggregate.LastValid{Match: s.Has("units issued by invit"), Scope: classification},
			}),
			whenFound(tagCashAndOthers, aggregate.FirstValue{Match: s.Has("cash"), Scope: classification}),
			{
				Tag:      tagOf(tagGold),
				Recipe:   aggregate.SumMatching{View: hdfcByName, Match: s.AllOf(s.Has("gold"), s.Has("fund"))},
				Presence: aggregate.WhenPositive,
			},
			always(tagSilver, aggregate.Bounded{
				View:    hdfcByName,
				Anchor:  s.Has("silver"),
				Options: s.AccumulateOptions{IncludeStart: true, Gap: s.GapAfterStart},
			}),
			always(tagDebt, aggregate.Sum{
				aggregate.TotalAfter{
					View:     hdfcExposure,
					Anchor:   s.Is("debt instruments"),
					Boundary: s.BoundaryOptions{Labels: s.TotalOnly()},
				},
				aggregate.FirstValue{Match: s.Has("cd"), Scope: classification},
			}),
			always("International equity", aggregate.TotalAfter{
				View:     hdfcExposure,
				Anchor:   s.Is("international"),
				Boundary: s.BoundaryOptions{Labels: s.TotalOnly()},
			}),
		},
	}
}
