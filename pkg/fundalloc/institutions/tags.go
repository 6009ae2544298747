package institutions

import "github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"

func tagOf(s string) models.Tag { return models.Tag(s) }

// Tag spellings differ by fund house; these are the ones each profile emits.
const (
	tagNetEquity     = "Net Equity"
	tagEquity        = "Equity"
	tagHedgedEquity  = "Hedged Equity"
	tagDebt          = "Debt"
	tagGold          = "Gold"
	tagSilver        = "Silver"
	tagIntlEquity    = "International Equity"
	tagReITInvIT     = "ReIT/InvIT"
	tagReITs         = "ReITs"
	tagInvITs        = "InvITs"
	tagCash          = "Cash"
	tagCashAndOthers = "Cash & Others"
	tagCashAndOthrs  = "Cash & others"
	tagCommodity     = "Commodity Derivatives"
)

// canonical folds the per-house spellings onto one name per economic
// category, for callers comparing results across houses.
var canonical = map[string]string{
	"net equity":            tagNetEquity,
	"equity":                tagNetEquity,
	"hedged equity":         tagHedgedEquity,
	"debt":                  tagDebt,
	"gold":                  tagGold,
	"silver":                tagSilver,
	"international equity":  tagIntlEquity,
	"reit/invit":            tagReITInvIT,
	"reits":                 tagReITInvIT,
	"invits":                tagReITInvIT,
	"reit":                  tagReITInvIT,
	"invit":                 tagReITInvIT,
	"cash":                  tagCashAndOthers,
	"cash & others":         tagCashAndOthers,
	"commodity derivatives": tagCommodity,
}

// CanonicalTag maps an institution's tag onto the shared category name.
// Unknown tags are returned unchanged.
func CanonicalTag(t models.Tag) models.Tag {
	if c, ok := canonical[models.NormalizedLabel(string(t))]; ok {
		return models.Tag(c)
	}
	return t
}

// Canonicalize returns a copy of r with tags folded by CanonicalTag.
// Tags folding onto the same name are summed at the first one's position.
func Canonicalize(r *models.Result) *models.Result {
	out := &models.Result{Institution: r.Institution, Sheet: r.Sheet}
	pos := make(map[models.Tag]int, len(r.Entries))
	for _, e := range r.Entries {
		tag := CanonicalTag(e.Tag)
		if i, ok := pos[tag]; ok {
			out.Entries[i].Value = out.Entries[i].Value.Add(e.Value)
			continue
		}
		pos[tag] = len(out.Entries)
		out.Entries = append(out.Entries, models.Entry{Tag: tag, Value: e.Value})
	}
	return out
}
