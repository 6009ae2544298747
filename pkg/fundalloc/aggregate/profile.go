package aggregate

import (
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/parser"
)

// Presence decides whether a step's tag is written when nothing matched.
type Presence int

const (
	// Always writes the tag, with zero when the recipe found nothing.
	Always Presence = iota
	// WhenFound writes the tag only when the recipe located its section.
	WhenFound
	// WhenPositive writes the tag only for a value above zero.
	WhenPositive
	// WhenNonZero writes the tag only for a non-zero value.
	WhenNonZero
)

func (p Presence) keep(o Outcome) bool {
	switch p {
	case WhenFound:
		return o.Found
	case WhenPositive:
		return o.Value.IsPositive()
	case WhenNonZero:
		return !o.Value.IsZero()
	default:
		return true
	}
}

// Step resolves one tag.
type Step struct {
	Tag      models.Tag
	Recipe   Recipe
	Presence Presence
}

// Adjustment rewrites already resolved tags.
type Adjustment interface {
	Apply(env *Env, res *Resolved)
	String() string
}

// Profile is the full extraction recipe for one fund house.
type Profile struct {
	// ID is the registry key, e.g. "hdfc".
	ID string
	// Name is the fund house display name.
	Name string
	// Sheet selects the worksheet.
	Sheet parser.SheetSelector
	// Projection is the primary label/value column pair.
	Projection parser.Projection
	// Views are extra column pairs addressed by name from recipes.
	Views map[string]parser.Projection
	// Steps resolve tags in output order.
	Steps []Step
	// Adjustments run after every step, in order.
	Adjustments []Adjustment
}

// Tags returns the tags the profile can emit, in output order.
func (p *Profile) Tags() []models.Tag {
	tags := make([]models.Tag, len(p.Steps))
	for i, s := range p.Steps {
		tags[i] = s.Tag
	}
	return tags
}

// OmitsOnMissing reports whether any tag may be left out of a result.
func (p *Profile) OmitsOnMissing() bool {
	for _, s := range p.Steps {
		if s.Presence != Always {
			return true
		}
	}
	return false
}
