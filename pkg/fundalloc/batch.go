package fundalloc

import (
	"context"

	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
	"golang.org/x/sync/errgroup"
)

// Input is one file of a batch.
type Input struct {
	Name string
	Data []byte
}

// ExtractBatch extracts every input with at most workers running at once.
// Per-file failures are reported in the matching NamedResult and never stop
// the batch. Results keep input order. The batch ends early only when ctx
// is cancelled; unprocessed files then carry the context error.
func ExtractBatch(ctx context.Context, inputs []Input, workers int, opts Options) []models.NamedResult {
	out := make([]models.NamedResult, len(inputs))
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range inputs {
		out[i].FileName = in.Name
		if err := ctx.Err(); err != nil {
			out[i].Error = err.Error()
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				out[i].Error = err.Error()
				return nil
			}
			res, err := Extract(in.Name, in.Data, opts)
			if err != nil {
				out[i].Error = err.Error()
				return nil
			}
			out[i].Result = res
			return nil
		})
	}
	_ = g.Wait()
	return out
}
