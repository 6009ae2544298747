package output

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
	"github.com/xuri/excelize/v2"
)

// Column headers of every summary sheet.
const (
	ColumnTag   = "Tag"
	ColumnValue = "Final Value"
)

// MaxSheetNameLength is Excel's limit on worksheet names.
const MaxSheetNameLength = 31

// DefaultBookName is the download name of the combined workbook.
const DefaultBookName = "MutualFund_Summary.xlsx"

// ErrNoResults is returned when a batch has nothing to write.
var ErrNoResults = errors.New("no successful results to write")

// SheetName derives a worksheet name from an uploaded file name: the part
// before the first dot, stripped of characters Excel forbids, cut to 31
// characters and never starting or ending with a quote.
func SheetName(filename string) string {
	base, _, _ := strings.Cut(filename, ".")
	base = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, base)
	// Excel rejects a quote at either end, which truncation can expose.
	base = strings.Trim(truncate(base, MaxSheetNameLength), "'")
	if base == "" {
		base = "Sheet"
	}
	return base
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// uniqueSheetName appends a counter when two files map to the same sheet.
// Excel compares sheet names case-insensitively.
func uniqueSheetName(name string, used map[string]bool) string {
	candidate := name
	for i := 2; used[strings.ToLower(candidate)]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		candidate = strings.TrimRight(truncate(name, MaxSheetNameLength-utf8.RuneCountInString(suffix)), "'") + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

// BuildWorkbook lays out one sheet per successful result.
func BuildWorkbook(files []models.NamedResult) (*excelize.File, error) {
	f := excelize.NewFile()
	used := make(map[string]bool)
	written := 0

	for _, nr := range files {
		if nr.Result == nil {
			continue
		}
		name := uniqueSheetName(SheetName(nr.FileName), used)
		if written == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
		if err := writeResultSheet(f, name, nr.Result); err != nil {
			f.Close()
			return nil, err
		}
		written++
	}

	if written == 0 {
		f.Close()
		return nil, ErrNoResults
	}
	return f, nil
}

func writeResultSheet(f *excelize.File, sheet string, res *models.Result) error {
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{ColumnTag, ColumnValue}); err != nil {
		return err
	}
	for i, e := range res.Entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{string(e.Tag), e.Value.InexactFloat64()}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// WriteWorkbook writes the combined summary workbook to w.
func WriteWorkbook(w io.Writer, files []models.NamedResult) error {
	f, err := BuildWorkbook(files)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}
