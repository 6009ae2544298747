package fundalloc

import (
	"fmt"

	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/institutions"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/parser"
)

// ErrInvalidFormat indicates the payload is not a valid xlsx workbook.
var ErrInvalidFormat = parser.ErrInvalidFormat

// SheetNotFoundError indicates a fund house's pinned sheet is missing,
// usually because the publisher changed the template.
type SheetNotFoundError = parser.SheetNotFoundError

// InsufficientColumnsError indicates the sheet is narrower than the fund
// house's column layout.
type InsufficientColumnsError = parser.InsufficientColumnsError

// UnrecognizedInstitutionError indicates no fund house key appears in the file name.
type UnrecognizedInstitutionError = institutions.UnrecognizedInstitutionError

// Stage names the extraction step that failed.
type Stage string

const (
	StageDispatch Stage = "dispatch"
	StageLoad     Stage = "load"
	StageProject  Stage = "project"
)

// ExtractionError represents a fatal error for one file.
type ExtractionError struct {
	Filename    string
	Institution institutions.ID
	Stage       Stage
	Err         error
}

func (e *ExtractionError) Error() string {
	if e.Institution == "" {
		return fmt.Sprintf("extraction error for %q (%s): %v", e.Filename, e.Stage, e.Err)
	}
	return fmt.Sprintf("extraction error for %q [%s] (%s): %v", e.Filename, e.Institution, e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(filename string, id institutions.ID, stage Stage, err error) *ExtractionError {
	return &ExtractionError{
		Filename:    filename,
		Institution: id,
		Stage:       stage,
		Err:         err,
	}
}
