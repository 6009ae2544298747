// Package aggregate runs declarative per-institution extraction profiles
// over projected tables.
package aggregate

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/scanner"
)

// Outcome is what a recipe resolved to. Found is false when the section
// was not located; Value is then zero.
type Outcome struct {
	Value decimal.Decimal
	Found bool
}

func found(v decimal.Decimal) Outcome { return Outcome{Value: v, Found: true} }

var missing = Outcome{Value: decimal.Zero}

// Recipe computes one figure from the projected tables.
type Recipe interface {
	Eval(env *Env) Outcome
	fmt.Stringer
}

// Scope restricts a recipe to rows after the first row matching After.
// A scope whose anchor is absent makes the recipe resolve to missing.
type Scope struct {
	After scanner.Matcher
}

func (s *Scope) start(t *models.Table) (int, bool) {
	if s == nil || s.After == nil {
		return 0, true
	}
	i, ok := scanner.Find(t, s.After, 0)
	if !ok {
		return 0, false
	}
	return i + 1, true
}

// AnchorPolicy chooses among several rows matching an anchor.
type AnchorPolicy int

const (
	// AnchorFirst uses only the first matching row.
	AnchorFirst AnchorPolicy = iota
	// AnchorFirstResolved tries matching rows in order and keeps the
	// first one that resolves.
	AnchorFirstResolved
	// AnchorLastResolved keeps the last matching row that resolves.
	AnchorLastResolved
)

// TotalAfter finds an anchor row and reads the boundary row after it.
type TotalAfter struct {
	View     string
	Anchor   scanner.Matcher
	Boundary scanner.BoundaryOptions
	Policy   AnchorPolicy
	Scope    *Scope
}

func (r TotalAfter) Eval(env *Env) Outcome {
	t := env.Table(r.View)
	from, ok := r.Scope.start(t)
	if !ok {
		return missing
	}

	anchors := scanner.FindAll(t, r.Anchor, from)
	if len(anchors) == 0 {
		return missing
	}
	if r.Policy == AnchorFirst {
		anchors = anchors[:1]
	}

	out := missing
	for _, a := range anchors {
		v, ok := scanner.ValueAfter(t, a, r.Boundary)
		if !ok {
			continue
		}
		out = found(v)
		if r.Policy != AnchorLastResolved {
			break
		}
	}
	return out
}

func (r TotalAfter) String() string {
	return fmt.Sprintf("total-after(%v -> %s)", r.Anchor, strings.Join(r.Boundary.Labels, "|"))
}

// Bounded accumulates figures from the first anchor row onwards.
type Bounded struct {
	View    string
	Anchor  scanner.Matcher
	Options scanner.AccumulateOptions
	Scope   *Scope
}

func (r Bounded) Eval(env *Env) Outcome {
	t := env.Table(r.View)
	from, ok := r.Scope.start(t)
	if !ok {
		return missing
	}
	i, ok := scanner.Find(t, r.Anchor, from)
	if !ok {
		return missing
	}
	sum, n := scanner.Accumulate(t, i, r.Options)
	if n == 0 {
		return missing
	}
	return found(sum)
}

func (r Bounded) String() string { return fmt.Sprintf("accumulate(%v)", r.Anchor) }

// SumMatching adds every matching row's value.
type SumMatching struct {
	View    string
	Match   scanner.Matcher
	Exclude scanner.Matcher
}

func (r SumMatching) Eval(env *Env) Outcome {
	sum, n := scanner.SumAll(env.Table(r.View), r.Match, r.Exclude)
	if n == 0 {
		return missing
	}
	return found(sum)
}

func (r SumMatching) String() string { return fmt.Sprintf("sum-all(%v)", r.Match) }

// FirstValue reads the first matching row. An unusable value counts as
// not found, and later matches are not consulted.
type FirstValue struct {
	View  string
	Match scanner.Matcher
	Scope *Scope
}

func (r FirstValue) Eval(env *Env) Outcome {
	t := env.Table(r.View)
	from, ok := r.Scope.start(t)
	if !ok {
		return missing
	}
	v, _, usable := scanner.FirstValue(t, r.Match, from)
	if !usable {
		return missing
	}
	return found(v)
}

func (r FirstValue) String() string { return fmt.Sprintf("first(%v)", r.Match) }

// FirstValid reads the first matching row holding a usable number.
type FirstValid struct {
	View  string
	Match scanner.Matcher
	Scope *Scope
}

func (r FirstValid) Eval(env *Env) Outcome {
	t := env.Table(r.View)
	from, ok := r.Scope.start(t)
	if !ok {
		return missing
	}
	v, ok := scanner.FirstValid(t, r.Match, from)
	if !ok {
		return missing
	}
	return found(v)
}

func (r FirstValid) String() string { return fmt.Sprintf("first-valid(%v)", r.Match) }

// LastValid reads the last matching row holding a usable number.
type LastValid struct {
	View  string
	Match scanner.Matcher
	Scope *Scope
}

func (r LastValid) Eval(env *Env) Outcome {
	t := env.Table(r.View)
	from, ok := r.Scope.start(t)
	if !ok {
		return missing
	}
	v, ok := scanner.LastValid(t, r.Match, from)
	if !ok {
		return missing
	}
	return found(v)
}

func (r LastValid) String() string { return fmt.Sprintf("last-valid(%v)", r.Match) }

// EachOnce adds, per matcher, the first matching row with a usable number.
type EachOnce struct {
	View     string
	Matchers []scanner.Matcher
}

func (r EachOnce) Eval(env *Env) Outcome {
	sum, n := scanner.EachOnce(env.Table(r.View), r.Matchers, 0)
	if n == 0 {
		return missing
	}
	return found(sum)
}

func (r EachOnce) String() string { return fmt.Sprintf("each-once(%v)", r.Matchers) }

// Sum adds its parts. It is found when any part is.
type Sum []Recipe

func (r Sum) Eval(env *Env) Outcome {
	out := missing
	for _, part := range r {
		o := part.Eval(env)
		out.Value = out.Value.Add(o.Value)
		out.Found = out.Found || o.Found
	}
	return out
}

func (r Sum) String() string {
	parts := make([]string, len(r))
	for i, p := range r {
		parts[i] = p.String()
	}
	return strings.Join(parts, " + ")
}

// Abs takes the absolute value of its inner recipe.
type Abs struct{ Of Recipe }

func (r Abs) Eval(env *Env) Outcome {
	o := r.Of.Eval(env)
	o.Value = o.Value.Abs()
	return o
}

func (r Abs) String() string { return "|" + r.Of.String() + "|" }

// Negate flips the sign of its inner recipe.
type Negate struct{ Of Recipe }

func (r Negate) Eval(env *Env) Outcome {
	o := r.Of.Eval(env)
	o.Value = o.Value.Neg()
	return o
}

func (r Negate) String() string { return "-(" + r.Of.String() + ")" }
