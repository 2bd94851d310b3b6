package facets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipelens/internal/errors"
	"recipelens/internal/testkit"
)

func TestAnalyzeDataset(t *testing.T) {
	tbl := testkit.RecipeTable()
	require.NoError(t, tbl.ConvertToTimestamp("submitted"))

	originalColumns := tbl.ColumnNames()

	start, end := window(1999, 2018)
	rep, err := AnalyzeDataset(tbl, start, end)
	require.NoError(t, err)

	assert.Equal(t, 4, rep.General.TotalRecipes)
	assert.Greater(t, rep.General.DatasetSizeMB, 0.0)
	// Derived list columns are appended during analysis; the report
	// captures the shape of the table as it was handed in.
	assert.ElementsMatch(t, originalColumns, rep.General.Columns)
	assert.Equal(t, 1, rep.General.MissingValues["name"])
	assert.Equal(t, 0, rep.General.MissingValues["minutes"])

	assert.Equal(t, 1429, rep.Temporal.TotalDays)
	assert.Equal(t, 4, rep.Tags.TotalUniqueTags)
	assert.Equal(t, 3, rep.Contributors.TotalContributors)
	assert.Len(t, rep.Nutrition, len(NutritionFields))
	assert.InDelta(t, 250.0, rep.Nutrition["calories"].Mean, 1e-9)
	assert.Equal(t, 1, rep.Complexity.Time.TimeRanges[">2h"])
}

func TestAnalyzeDatasetAbortsOnFacetError(t *testing.T) {
	tbl := testkit.NumericTable("minutes", []string{"10"})
	start, end := window(1999, 2018)
	_, err := AnalyzeDataset(tbl, start, end)
	assert.Equal(t, errors.CodeColumnMissing, errors.GetCode(err))
}
