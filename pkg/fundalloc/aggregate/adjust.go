package aggregate

import (
	"fmt"

	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
)

// HedgeNetting removes derivative hedge exposure from gross equity:
// equity -= |hedge| and hedge becomes |hedge|. A written hedge is always
// reported as |hedge|, even when there is no equity figure to net.
type HedgeNetting struct {
	Equity models.Tag
	Hedge  models.Tag
	// RequireFound skips netting unless the equity recipe located its section.
	RequireFound bool
}

func (a HedgeNetting) Apply(_ *Env, res *Resolved) {
	hedge, ok := res.Get(a.Hedge)
	if !ok {
		return
	}
	res.Set(a.Hedge, hedge.Abs())

	equity, ok := res.Get(a.Equity)
	if !ok {
		return
	}
	if a.RequireFound && !res.Found(a.Equity) {
		return
	}
	res.Set(a.Equity, equity.Sub(hedge.Abs()))
}

func (a HedgeNetting) String() string {
	return fmt.Sprintf("net %s of |%s|", a.Equity, a.Hedge)
}

// FoldInto adds a separately accumulated figure to an existing tag.
// Nothing happens when the tag was not written.
type FoldInto struct {
	Tag    models.Tag
	Recipe Recipe
}

func (a FoldInto) Apply(env *Env, res *Resolved) {
	v, ok := res.Get(a.Tag)
	if !ok {
		return
	}
	o := a.Recipe.Eval(env)
	res.Set(a.Tag, v.Add(o.Value))
}

func (a FoldInto) String() string {
	return fmt.Sprintf("fold %s into %s", a.Recipe, a.Tag)
}
