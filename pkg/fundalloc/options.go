// Package fundalloc extracts asset-allocation summaries from mutual fund
// portfolio disclosure workbooks.
package fundalloc

import (
	"log/slog"
	"time"

	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/institutions"
)

// Observer is notified once per extracted file.
type Observer interface {
	ObserveExtraction(institution string, err error, elapsed time.Duration)
}

// Options configures extraction behavior.
type Options struct {
	// Institution forces an extractor instead of dispatching on the file name.
	Institution institutions.ID
	// Canonical folds per-house tag spellings onto shared category names.
	Canonical bool
	// Logger receives debug traces of every resolved tag.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
	// Observer, if set, is told about every extraction.
	Observer Observer
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
