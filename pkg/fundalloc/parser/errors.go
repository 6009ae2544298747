package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat indicates the payload is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// SheetNotFoundError reports a pinned sheet name missing from the workbook.
type SheetNotFoundError struct {
	Sheet     string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found (available: %s)", e.Sheet, strings.Join(e.Available, ", "))
}

// InsufficientColumnsError reports a grid narrower than a projection needs.
type InsufficientColumnsError struct {
	Sheet string
	Have  int
	Need  int
}

func (e *InsufficientColumnsError) Error() string {
	return fmt.Sprintf("sheet %q has %d columns, need at least %d", e.Sheet, e.Have, e.Need)
}
