package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipelens/domain/table"
	"recipelens/internal/cleaning"
	"recipelens/internal/errors"
	"recipelens/internal/testkit"
)

func TestNewRunsDetectionUpFront(t *testing.T) {
	a, err := New(testkit.RecipeTable(), DefaultOptions())
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "RAW_recipes", a.Name)
	assert.Equal(t, 4, a.Table().NumRows())

	rep := a.Anomalies()
	require.NotNil(t, rep)
	require.Len(t, rep.MissingValues, 1)
	assert.Equal(t, "name", rep.MissingValues[0].Column)

	start, end := a.Window()
	assert.Equal(t, 1999, start.Year())
	assert.Equal(t, 2018, end.Year())
}

func TestNewRejectsMissingRequiredColumn(t *testing.T) {
	cols := testkit.RecipeColumns()
	kept := cols[:0]
	for _, c := range cols {
		if c.Name != "tags" {
			kept = append(kept, c)
		}
	}
	tbl := testkit.BuildTable(kept, nil)

	_, err := New(tbl, DefaultOptions())
	assert.Equal(t, errors.CodeColumnMissing, errors.GetCode(err))
}

func TestNewFiltersToWindow(t *testing.T) {
	opts := DefaultOptions()
	opts.DateStart = time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
	opts.DateEnd = time.Date(2017, 12, 31, 0, 0, 0, 0, time.UTC)

	a, err := New(testkit.RecipeTable(), opts)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Table().NumRows())
}

func TestNewRejectsMalformedDates(t *testing.T) {
	tbl := testkit.RecipeTable()
	require.NoError(t, tbl.AppendRow([]table.Value{
		table.String("bad"),
		table.String("not-a-date"),
		table.Numeric(30),
		table.Numeric(4),
		table.Numeric(999),
		table.ListText("[1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0]"),
		table.ListText("['quick']"),
	}))

	_, err := New(tbl, DefaultOptions())
	assert.Equal(t, errors.CodeDataMalformed, errors.GetCode(err))
}

func TestCleanUsesPreCleanReport(t *testing.T) {
	a, err := New(testkit.RecipeTable(), DefaultOptions())
	require.NoError(t, err)

	// Threshold 3 keeps the numeric rows; the null-name row is dropped
	// via the report taken at construction.
	require.NoError(t, a.Clean(cleaning.MethodStd, 3.0))
	assert.Equal(t, 3, a.Table().NumRows())

	// The report is not recomputed after cleaning.
	assert.Len(t, a.Anomalies().MissingValues, 1)
}

func TestFacetsThroughSession(t *testing.T) {
	a, err := New(testkit.RecipeTable(), DefaultOptions())
	require.NoError(t, err)

	tags, err := a.Tags()
	require.NoError(t, err)
	assert.Equal(t, 4, tags.TotalUniqueTags)

	temporal, err := a.Temporal(a.Window())
	require.NoError(t, err)
	assert.Equal(t, 1429, temporal.TotalDays)

	rep, err := a.Dataset()
	require.NoError(t, err)
	assert.Equal(t, 4, rep.General.TotalRecipes)
	assert.Equal(t, 3, rep.Contributors.TotalContributors)
}
