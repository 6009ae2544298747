package fundalloc

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/institutions"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
	"github.com/xuri/excelize/v2"
)

// workbook writes rows to an in-memory xlsx with one sheet per name.
// Each row is written from column A.
func workbook(t *testing.T, sheets map[string][][]any, order ...string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// bg places a label in column B and a value in column G.
func bg(label, value any) []any {
	return []any{nil, label, nil, nil, nil, nil, value}
}

func axisWorkbook(t *testing.T) []byte {
	return workbook(t, map[string][][]any{
		"Portfolio": {
			bg("Equity & Equity related", nil),
			bg("Listed", 90.5),
			bg("Total", 90.5),
			bg("Derivatives", nil),
			bg("Index Futures", -10.5),
			bg("Total", -10.5),
			bg("Debt Instruments", nil),
			bg("Bond", 12),
			bg("Total", 12),
			bg("Gold ETF", "NIL"),
			bg("Reverse Repo / TREPS", nil),
			bg("TREPS", 6),
			bg("Sub Total", 6),
			bg("Net Receivables / (Payables)", -1.25),
		},
	}, "Portfolio")
}

func TestExtractAxis(t *testing.T) {
	res, err := Extract("Axis_Flexi_Cap_March.xlsx", axisWorkbook(t), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "axis", res.Institution)
	assert.Equal(t, "Portfolio", res.Sheet)
	assert.Equal(t, []models.Tag{
		"Hedged Equity", "Net Equity", "Debt", "Gold", "Silver",
		"International Equity", "ReIT/InvIT", "Cash & others",
	}, res.Tags())
	assert.Equal(t, 80.0, res.Float("Net Equity"))
	assert.Equal(t, 10.5, res.Float("Hedged Equity"))
	assert.Equal(t, 12.0, res.Float("Debt"))
	assert.Equal(t, 0.0, res.Float("Gold"))
	assert.Equal(t, 4.75, res.Float("Cash & others"))
}

func TestExtractIsIdempotent(t *testing.T) {
	data := axisWorkbook(t)
	first, err := Extract("axis.xlsx", data, DefaultOptions())
	require.NoError(t, err)
	second, err := Extract("axis.xlsx", data, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExtractOptions(t *testing.T) {
	data := axisWorkbook(t)

	t.Run("forced institution ignores file name", func(t *testing.T) {
		res, err := Extract("upload.xlsx", data, Options{Institution: institutions.Axis})
		require.NoError(t, err)
		assert.Equal(t, "axis", res.Institution)
	})

	t.Run("canonical tags", func(t *testing.T) {
		res, err := Extract("axis.xlsx", data, Options{Canonical: true})
		require.NoError(t, err)
		assert.Contains(t, res.Tags(), models.Tag("Cash & Others"))
		assert.NotContains(t, res.Tags(), models.Tag("Cash & others"))
	})
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []string
	errs  []error
}

func (o *recordingObserver) ObserveExtraction(institution string, err error, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, institution)
	o.errs = append(o.errs, err)
}

func TestExtractNotifiesObserver(t *testing.T) {
	obs := &recordingObserver{}
	opts := Options{Observer: obs}

	_, err := Extract("axis.xlsx", axisWorkbook(t), opts)
	require.NoError(t, err)
	_, err = Extract("unknown.xlsx", nil, opts)
	require.Error(t, err)

	assert.Equal(t, []string{"axis", ""}, obs.calls)
	assert.NoError(t, obs.errs[0])
	assert.Error(t, obs.errs[1])
}

func TestExtractErrors(t *testing.T) {
	t.Run("unrecognized institution", func(t *testing.T) {
		_, err := Extract("Portfolio_March.xlsx", axisWorkbook(t), DefaultOptions())
		var unrecognized *UnrecognizedInstitutionError
		require.ErrorAs(t, err, &unrecognized)

		var ee *ExtractionError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, StageDispatch, ee.Stage)
		assert.Equal(t, "Portfolio_March.xlsx", ee.Filename)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := Extract("hdfc.xlsx", []byte("PK not really"), DefaultOptions())
		assert.True(t, errors.Is(err, ErrInvalidFormat), "got %v", err)

		var ee *ExtractionError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, StageLoad, ee.Stage)
		assert.Equal(t, institutions.HDFC, ee.Institution)
		assert.Equal(t, "hdfc.xlsx", ee.Filename)
	})

	t.Run("pinned sheet missing", func(t *testing.T) {
		data := workbook(t, map[string][][]any{"Sheet1": {bg("Equity", 1)}}, "Sheet1")
		_, err := Extract("ICICI_Multi.xlsx", data, DefaultOptions())
		var notFound *SheetNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "MULTI", notFound.Sheet)
	})

	t.Run("too few columns", func(t *testing.T) {
		data := workbook(t, map[string][][]any{
			"MY2005": {{"ISIN", "Name", "Qty", "Value", "Exposure"}},
		}, "MY2005")
		_, err := Extract("HDFC_Fund.xlsx", data, DefaultOptions())
		var cols *InsufficientColumnsError
		require.ErrorAs(t, err, &cols)
		assert.Equal(t, 5, cols.Have)
		assert.Equal(t, 12, cols.Need)

		var ee *ExtractionError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, StageProject, ee.Stage)
	})

	t.Run("unknown forced extractor", func(t *testing.T) {
		_, err := ExtractWith("vanguard", axisWorkbook(t), DefaultOptions())
		var ee *ExtractionError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, StageDispatch, ee.Stage)
	})
}

func TestExtractFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Axis_March.xlsx")
	require.NoError(t, os.WriteFile(path, axisWorkbook(t), 0644))

	res, err := ExtractFile(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 80.0, res.Float("Net Equity"))

	_, err = ExtractFile(filepath.Join(t.TempDir(), "missing_axis.xlsx"), DefaultOptions())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSelectExtractor(t *testing.T) {
	id, err := SelectExtractor("Sundaram_Mid_Cap.xlsx")
	require.NoError(t, err)
	assert.Equal(t, institutions.Sundaram, id)
}
