package aggregate

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/parser"
)

// PrimaryView names the profile's main projection.
const PrimaryView = ""

// Env holds the projected tables of one extraction run.
type Env struct {
	tables map[string]*models.Table
}

// NewEnv wraps already projected tables, keyed by view name.
func NewEnv(tables map[string]*models.Table) *Env {
	return &Env{tables: tables}
}

// Table returns the table for view. Unknown views fall back to the primary one.
func (e *Env) Table(view string) *models.Table {
	if t, ok := e.tables[view]; ok {
		return t
	}
	return e.tables[PrimaryView]
}

// Resolved is the ordered tag table being built for one run.
type Resolved struct {
	entries []models.Entry
	found   map[models.Tag]bool
}

func newResolved() *Resolved {
	return &Resolved{found: make(map[models.Tag]bool)}
}

// Get returns the value of a written tag.
func (r *Resolved) Get(tag models.Tag) (decimal.Decimal, bool) {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e.Value, true
		}
	}
	return decimal.Zero, false
}

// Found reports whether the tag's recipe located its section.
func (r *Resolved) Found(tag models.Tag) bool { return r.found[tag] }

// Set overwrites a written tag, or appends it.
func (r *Resolved) Set(tag models.Tag, v decimal.Decimal) {
	for i := range r.entries {
		if r.entries[i].Tag == tag {
			r.entries[i].Value = v
			return
		}
	}
	r.entries = append(r.entries, models.Entry{Tag: tag, Value: v})
}

// Project builds every view of the profile from a grid.
func (p *Profile) Project(g *models.Grid) (*Env, error) {
	tables := make(map[string]*models.Table, len(p.Views)+1)
	primary, err := parser.Project(g, p.Projection)
	if err != nil {
		return nil, err
	}
	tables[PrimaryView] = primary
	for name, proj := range p.Views {
		t, err := parser.Project(g, proj)
		if err != nil {
			return nil, fmt.Errorf("view %s: %w", name, err)
		}
		tables[name] = t
	}
	return NewEnv(tables), nil
}

// Apply projects the grid and runs the profile.
func (p *Profile) Apply(g *models.Grid, logger *slog.Logger) (*models.Result, error) {
	env, err := p.Project(g)
	if err != nil {
		return nil, err
	}
	res := p.Run(env, logger)
	res.Sheet = g.SheetName
	return res, nil
}

// Run evaluates every step and adjustment against projected tables.
func (p *Profile) Run(env *Env, logger *slog.Logger) *models.Result {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("institution", p.ID))

	res := newResolved()
	for _, step := range p.Steps {
		o := step.Recipe.Eval(env)
		res.found[step.Tag] = o.Found
		if !step.Presence.keep(o) {
			logger.Debug("tag omitted",
				slog.String("tag", string(step.Tag)),
				slog.String("recipe", step.Recipe.String()))
			continue
		}
		res.Set(step.Tag, o.Value)
		logger.Debug("tag resolved",
			slog.String("tag", string(step.Tag)),
			slog.String("value", o.Value.String()),
			slog.Bool("found", o.Found))
	}

	for _, adj := range p.Adjustments {
		adj.Apply(env, res)
		logger.Debug("adjustment applied", slog.String("adjustment", adj.String()))
	}

	return &models.Result{Institution: p.ID, Entries: res.entries}
}
