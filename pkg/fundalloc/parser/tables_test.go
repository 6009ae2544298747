package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
)

func grid(rows ...[]models.Cell) *models.Grid {
	return models.NewGrid("Sheet1", rows)
}

func TestProject(t *testing.T) {
	g := grid(
		[]models.Cell{models.Text("Name"), models.Text("Value")},
		[]models.Cell{models.Text("Equity"), models.Float(40)},
		[]models.Cell{models.Empty(), models.Empty()},
		[]models.Cell{models.Float(7), models.Float(60)},
		[]models.Cell{models.Text("Total")},
	)

	t.Run("all rows", func(t *testing.T) {
		tbl, err := Project(g, Columns(0, 1))
		require.NoError(t, err)
		require.Equal(t, 5, tbl.Len())
		assert.Equal(t, "Name", tbl.At(0).LabelText())
		assert.False(t, tbl.At(3).HasLabel(), "numeric label cells carry no label")
		assert.True(t, tbl.At(4).Value.IsEmpty(), "short rows pad with empty cells")
		for i, r := range tbl.Rows {
			assert.Equal(t, i, r.Index)
		}
	})

	t.Run("header rows and blank rows dropped", func(t *testing.T) {
		p := Columns(0, 1)
		p.HeaderRows = 1
		p.DropEmptyRows = true
		tbl, err := Project(g, p)
		require.NoError(t, err)
		require.Equal(t, 3, tbl.Len())
		assert.Equal(t, "Equity", tbl.At(0).LabelText())
		assert.Equal(t, 1, tbl.At(1).Index)
		assert.Equal(t, "Total", tbl.At(2).LabelText())
	})

	t.Run("header rows beyond the sheet", func(t *testing.T) {
		p := Columns(0, 1)
		p.HeaderRows = 10
		tbl, err := Project(g, p)
		require.NoError(t, err)
		assert.Equal(t, 0, tbl.Len())
	})

	t.Run("too narrow", func(t *testing.T) {
		_, err := Project(g, Columns(1, 6))
		var cols *InsufficientColumnsError
		require.ErrorAs(t, err, &cols)
		assert.Equal(t, 2, cols.Have)
		assert.Equal(t, 7, cols.Need)
	})

	t.Run("required columns", func(t *testing.T) {
		p := Columns(0, 1)
		p.RequiredColumns = 12
		assert.Equal(t, 12, p.Need())
		_, err := Project(g, p)
		assert.Error(t, err)
	})
}
