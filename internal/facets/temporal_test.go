package facets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipelens/internal/errors"
	"recipelens/internal/testkit"
)

func window(startYear, endYear int) (time.Time, time.Time) {
	return time.Date(startYear, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(endYear, 12, 31, 0, 0, 0, 0, time.UTC)
}

func TestAnalyzeTemporal(t *testing.T) {
	tbl := testkit.RecipeTable()
	require.NoError(t, tbl.ConvertToTimestamp("submitted"))

	start, end := window(1999, 2018)
	out, err := AnalyzeTemporal(tbl, start, end)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC), out.DateMin)
	assert.Equal(t, time.Date(2018, 11, 30, 0, 0, 0, 0, time.UTC), out.DateMax)
	assert.Equal(t, 1429, out.TotalDays)

	assert.Equal(t, map[int]int{2015: 1, 2016: 1, 2017: 1, 2018: 1}, out.PerYear)
	assert.Equal(t, map[int]int{1: 1, 3: 1, 6: 1, 11: 1}, out.PerMonth)
	// Monday=0: Thu 2015-01-01, Wed 2016-06-15, Mon 2017-03-20, Fri 2018-11-30.
	assert.Equal(t, map[int]int{3: 1, 2: 1, 0: 1, 4: 1}, out.PerWeekday)
}

func TestAnalyzeTemporalNarrowWindow(t *testing.T) {
	tbl := testkit.RecipeTable()
	require.NoError(t, tbl.ConvertToTimestamp("submitted"))

	start, end := window(2016, 2017)
	out, err := AnalyzeTemporal(tbl, start, end)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2016, 6, 15, 0, 0, 0, 0, time.UTC), out.DateMin)
	assert.Equal(t, time.Date(2017, 3, 20, 0, 0, 0, 0, time.UTC), out.DateMax)
	assert.Equal(t, map[int]int{2016: 1, 2017: 1}, out.PerYear)
}

func TestAnalyzeTemporalEmptyWindow(t *testing.T) {
	tbl := testkit.RecipeTable()
	require.NoError(t, tbl.ConvertToTimestamp("submitted"))

	start, end := window(1999, 2000)
	out, err := AnalyzeTemporal(tbl, start, end)
	require.NoError(t, err)

	assert.True(t, out.DateMin.IsZero())
	assert.Equal(t, 0, out.TotalDays)
	assert.Empty(t, out.PerYear)
}

func TestAnalyzeTemporalRequiresColumn(t *testing.T) {
	tbl := testkit.NumericTable("minutes", []string{"10"})
	start, end := window(1999, 2018)
	_, err := AnalyzeTemporal(tbl, start, end)
	assert.Equal(t, errors.CodeColumnMissing, errors.GetCode(err))
}

func TestMondayIndexed(t *testing.T) {
	assert.Equal(t, 0, mondayIndexed(time.Monday))
	assert.Equal(t, 6, mondayIndexed(time.Sunday))
	assert.Equal(t, 4, mondayIndexed(time.Friday))
}
