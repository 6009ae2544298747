package fundalloc

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/institutions"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/parser"
)

// SelectExtractor resolves a file name to its fund house.
func SelectExtractor(filename string) (institutions.ID, error) {
	return institutions.Select(filename)
}

// ExtractFile reads an xlsx file from disk and extracts its allocation summary.
func ExtractFile(path string, opts Options) (*models.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Extract(filepath.Base(path), data, opts)
}

// Extract dispatches on filename and extracts the allocation summary from
// an xlsx payload. The file name is used only to pick the fund house.
func Extract(filename string, data []byte, opts Options) (res *models.Result, err error) {
	start := time.Now()
	id := opts.Institution
	if opts.Observer != nil {
		defer func() {
			opts.Observer.ObserveExtraction(string(id), err, time.Since(start))
		}()
	}

	if id == "" {
		id, err = institutions.Select(filename)
		if err != nil {
			return nil, NewExtractionError(filename, "", StageDispatch, err)
		}
	}

	res, err = ExtractWith(id, data, opts)
	if err != nil {
		var ee *ExtractionError
		if errors.As(err, &ee) {
			ee.Filename = filename
		}
		return nil, err
	}

	opts.logger().Info("extracted allocation",
		slog.String("file", filename),
		slog.String("institution", string(id)),
		slog.String("sheet", res.Sheet),
		slog.Int("tags", res.Len()))
	return res, nil
}

// ExtractWith runs a specific fund house's extractor over an xlsx payload.
func ExtractWith(id institutions.ID, data []byte, opts Options) (*models.Result, error) {
	profile, ok := institutions.Lookup(id)
	if !ok {
		return nil, NewExtractionError("", id, StageDispatch, fmt.Errorf("unknown extractor %q", id))
	}

	grid, err := parser.LoadGrid(data, profile.Sheet)
	if err != nil {
		return nil, NewExtractionError("", id, StageLoad, err)
	}

	res, err := profile.Apply(grid, opts.logger())
	if err != nil {
		return nil, NewExtractionError("", id, StageProject, err)
	}
	if opts.Canonical {
		res = institutions.Canonicalize(res)
	}
	return res, nil
}
