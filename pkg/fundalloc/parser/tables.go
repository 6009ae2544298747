package parser

import (
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
)

// Projection selects the label and value columns of a grid.
type Projection struct {
	// LabelColumn is the zero-based column holding section and line labels.
	LabelColumn int
	// ValueColumn is the zero-based column holding the figures.
	ValueColumn int
	// RequiredColumns is the minimum grid width. Zero means the higher of
	// the two column indices plus one.
	RequiredColumns int
	// HeaderRows leading grid rows are skipped.
	HeaderRows int
	// DropEmptyRows removes rows whose label and value are both blank
	// before indices are assigned.
	DropEmptyRows bool
}

// Columns returns a projection over the given label and value columns.
func Columns(label, value int) Projection {
	return Projection{LabelColumn: label, ValueColumn: value}
}

// Need returns the minimum grid width for the projection.
func (p Projection) Need() int {
	need := p.LabelColumn + 1
	if p.ValueColumn+1 > need {
		need = p.ValueColumn + 1
	}
	if p.RequiredColumns > need {
		need = p.RequiredColumns
	}
	return need
}

// Project builds the ordered label/value table from a grid.
func Project(g *models.Grid, p Projection) (*models.Table, error) {
	if g.Width < p.Need() {
		return nil, &InsufficientColumnsError{Sheet: g.SheetName, Have: g.Width, Need: p.Need()}
	}

	start := p.HeaderRows
	if start > g.Height() {
		start = g.Height()
	}

	rows := make([]models.Row, 0, g.Height()-start)
	for r := start; r < g.Height(); r++ {
		label := g.Cell(r, p.LabelColumn)
		value := g.Cell(r, p.ValueColumn)
		if p.DropEmptyRows && label.IsEmpty() && value.IsEmpty() {
			continue
		}

		row := models.Row{Index: len(rows), Value: value}
		if label.Kind == models.CellText {
			text := label.Text
			row.Label = &text
		}
		rows = append(rows, row)
	}
	return &models.Table{Rows: rows}, nil
}
