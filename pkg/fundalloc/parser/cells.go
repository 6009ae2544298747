package parser

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
	"github.com/xuri/excelize/v2"
)

// SheetSelector picks the worksheet to read. An empty Name selects the first sheet.
type SheetSelector struct {
	Name string
}

// FirstSheet selects the first worksheet of the workbook.
func FirstSheet() SheetSelector { return SheetSelector{} }

// Sheet pins an exact worksheet name.
func Sheet(name string) SheetSelector { return SheetSelector{Name: name} }

func (s SheetSelector) String() string {
	if s.Name == "" {
		return "<first>"
	}
	return s.Name
}

// LoadGrid opens an xlsx payload and reads the selected sheet into a grid.
func LoadGrid(data []byte, sel SheetSelector) (*models.Grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	sheetName, err := resolveSheet(f, sel)
	if err != nil {
		return nil, err
	}
	return ReadGrid(f, sheetName)
}

// resolveSheet maps a selector to a sheet name present in the workbook.
// Pinned names must match exactly.
func resolveSheet(f *excelize.File, sel SheetSelector) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: workbook has no sheets", ErrInvalidFormat)
	}
	if sel.Name == "" {
		return sheets[0], nil
	}
	for _, name := range sheets {
		if name == sel.Name {
			return name, nil
		}
	}
	return "", &SheetNotFoundError{Sheet: sel.Name, Available: sheets}
}

// ReadGrid reads every row of a sheet. Raw values are used so that number
// formats (thousands separators, percentages) never reach the scanner.
func ReadGrid(f *excelize.File, sheetName string) (*models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %q: %v", ErrInvalidFormat, sheetName, err)
	}

	cells := make([][]models.Cell, len(rows))
	for rowIdx, row := range rows {
		line := make([]models.Cell, len(row))
		for colIdx, cellValue := range row {
			line[colIdx] = parseValue(cellValue)
		}
		cells[rowIdx] = line
	}
	return models.NewGrid(sheetName, cells), nil
}

// parseValue classifies a raw cell string.
// Empty strings are blank cells, plain decimal literals are numbers and
// anything else (including padded numbers) stays text.
func parseValue(s string) models.Cell {
	if s == "" {
		return models.Empty()
	}
	if d, err := decimal.NewFromString(s); err == nil && isPlainNumber(s) {
		return models.Number(d)
	}
	return models.Text(s)
}

// isPlainNumber rejects strings decimal accepts but a spreadsheet would
// store as text, such as values with surrounding spaces.
func isPlainNumber(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '-', r == '+', r == 'e', r == 'E':
		default:
			return false
		}
	}
	return true
}
