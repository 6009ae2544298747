package institutions

import (
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/aggregate"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/scanner"
)

// totalAfter reads the first "total" row after the first anchor row.
func totalAfter(anchor scanner.Matcher) aggregate.TotalAfter {
	return aggregate.TotalAfter{
		Anchor:   anchor,
		Boundary: scanner.BoundaryOptions{Labels: scanner.TotalOnly()},
	}
}

// validTotalAfter reads the first boundary row after the anchor that holds
// a usable number.
func validTotalAfter(anchor scanner.Matcher, labels []string) aggregate.TotalAfter {
	return aggregate.TotalAfter{
		Anchor:   anchor,
		Boundary: scanner.BoundaryOptions{Labels: labels, SkipInvalid: true},
		Policy:   aggregate.AnchorFirstResolved,
	}
}

func always(tag string, r aggregate.Recipe) aggregate.Step {
	return aggregate.Step{Tag: tagOf(tag), Recipe: r, Presence: aggregate.Always}
}

func whenFound(tag string, r aggregate.Recipe) aggregate.Step {
	return aggregate.Step{Tag: tagOf(tag), Recipe: r, Presence: aggregate.WhenFound}
}
