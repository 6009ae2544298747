package models

// Grid is a rectangular, zero-based view of one worksheet.
type Grid struct {
	// SheetName is the worksheet the grid was read from.
	SheetName string
	// Rows holds the cells row by row. Rows may be shorter than Width;
	// missing trailing cells are empty.
	Rows [][]Cell
	// Width is the number of columns in the widest row.
	Width int
}

// NewGrid builds a grid and computes its width.
func NewGrid(sheetName string, rows [][]Cell) *Grid {
	g := &Grid{SheetName: sheetName, Rows: rows}
	for _, r := range rows {
		if len(r) > g.Width {
			g.Width = len(r)
		}
	}
	return g
}

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.Rows) }

// Cell returns the cell at (row, col), or an empty cell when out of range.
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= len(g.Rows) || col < 0 {
		return Empty()
	}
	r := g.Rows[row]
	if col >= len(r) {
		return Empty()
	}
	return r[col]
}
