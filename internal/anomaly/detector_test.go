package anomaly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipelens/domain/table"
	"recipelens/internal/testkit"
)

func TestDetectStdOutliers(t *testing.T) {
	// mean = 22, sample std = sqrt(7610/4) ~= 43.62: with threshold 1
	// only 100 deviates by more than one std.
	tbl := testkit.NumericTable("value", []string{"1", "2", "3", "4", "100"})

	rep, err := Detect(tbl, 1.0, DefaultZScoreThreshold)
	require.NoError(t, err)
	require.Len(t, rep.StdOutliers, 1)

	row := rep.StdOutliers[0]
	assert.Equal(t, "value", row.Column)
	assert.InDelta(t, 22.0, row.Mean, 1e-9)
	assert.InDelta(t, 43.617, row.StdDev, 0.01)
	assert.InDelta(t, row.Mean-row.StdDev, row.LowerBound, 1e-9)
	assert.InDelta(t, row.Mean+row.StdDev, row.UpperBound, 1e-9)
	assert.Equal(t, 1, row.OutlierCount)
	assert.InDelta(t, 20.0, row.OutlierPercentage, 1e-9)

	// Every flagged value lies strictly outside the bounds; 1..4 do not.
	assert.Greater(t, 100.0, row.UpperBound)
	for _, v := range []float64{1, 2, 3, 4} {
		assert.GreaterOrEqual(t, v, row.LowerBound)
		assert.LessOrEqual(t, v, row.UpperBound)
	}
}

func TestDetectZScoreOutliers(t *testing.T) {
	// Population std = sqrt(7610/5) ~= 39.01; |z| of 100 is ~1.999.
	tbl := testkit.NumericTable("value", []string{"1", "2", "3", "4", "100"})

	rep, err := Detect(tbl, DefaultStdThreshold, 1.5)
	require.NoError(t, err)
	require.Len(t, rep.ZScoreOutliers, 1)
	assert.Equal(t, 1, rep.ZScoreOutliers[0].OutlierCount)
	assert.InDelta(t, 20.0, rep.ZScoreOutliers[0].OutlierPercentage, 1e-9)

	// Threshold 0.5 flags exactly the values with |v-mean|/std > 0.5:
	// z(1) ~= 0.538, z(2) ~= 0.513, z(3) ~= 0.487, z(4) ~= 0.461, z(100) ~= 1.999.
	tbl = testkit.NumericTable("value", []string{"1", "2", "3", "4", "100"})
	rep, err = Detect(tbl, DefaultStdThreshold, 0.5)
	require.NoError(t, err)
	require.Len(t, rep.ZScoreOutliers, 1)
	assert.Equal(t, 3, rep.ZScoreOutliers[0].OutlierCount)
	assert.InDelta(t, 60.0, rep.ZScoreOutliers[0].OutlierPercentage, 1e-9)
}

func TestDetectZScoreSkipsColumnsWithMissingValues(t *testing.T) {
	tbl := testkit.NumericTable("value", []string{"1", "2", "3", "4", "100", ""})

	rep, err := Detect(tbl, 1.0, 0.5)
	require.NoError(t, err)

	// Standardizing a column with nulls yields NaN for every row, so
	// the z-score rule flags nothing; the std rule still flags 100.
	assert.Empty(t, rep.ZScoreOutliers)
	require.Len(t, rep.StdOutliers, 1)
	assert.Equal(t, 1, rep.StdOutliers[0].OutlierCount)
}

func TestDetectNoOutliersYieldsEmptyReports(t *testing.T) {
	tbl := testkit.NumericTable("value", []string{"1", "2", "3", "4", "5"})

	rep, err := Detect(tbl, DefaultStdThreshold, DefaultZScoreThreshold)
	require.NoError(t, err)

	// Sub-reports are present but empty, never absent.
	assert.NotNil(t, rep.StdOutliers)
	assert.NotNil(t, rep.ZScoreOutliers)
	assert.NotNil(t, rep.MissingValues)
	assert.Empty(t, rep.StdOutliers)
	assert.Empty(t, rep.ZScoreOutliers)
	assert.Empty(t, rep.MissingValues)
}

func TestDetectMissingValues(t *testing.T) {
	tbl := testkit.RecipeTable()

	rep, err := Detect(tbl, DefaultStdThreshold, DefaultZScoreThreshold)
	require.NoError(t, err)

	// Only the name column has nulls: 1 of 4 rows.
	require.Len(t, rep.MissingValues, 1)
	assert.Equal(t, "name", rep.MissingValues[0].Column)
	assert.Equal(t, 1, rep.MissingValues[0].MissingCount)
	assert.InDelta(t, 25.0, rep.MissingValues[0].MissingPercentage, 1e-9)
}

func TestDetectUniqueCounts(t *testing.T) {
	tbl := testkit.RecipeTable()

	rep, err := Detect(tbl, DefaultStdThreshold, DefaultZScoreThreshold)
	require.NoError(t, err)

	byColumn := make(map[string]int)
	for _, row := range rep.ColumnInfo {
		byColumn[row.Column] = row.UniqueCount
	}

	// List columns count the union of elements, not distinct raw cells.
	assert.Equal(t, 4, byColumn["tags"]) // vegan, easy, soup, dinner
	// String columns count distinct non-missing values.
	assert.Equal(t, 3, byColumn["name"])
	// Numeric columns are not profiled for cardinality.
	_, ok := byColumn["minutes"]
	assert.False(t, ok)
}

func TestDetectDataTypes(t *testing.T) {
	tbl := testkit.RecipeTable()

	rep, err := Detect(tbl, DefaultStdThreshold, DefaultZScoreThreshold)
	require.NoError(t, err)
	require.Len(t, rep.DataTypes, len(tbl.ColumnNames()))

	byColumn := make(map[string]string)
	for _, row := range rep.DataTypes {
		byColumn[row.Column] = row.Sample
	}
	assert.Equal(t, "10", byColumn["minutes"])
	assert.Equal(t, "pancakes", byColumn["name"])
}

func TestDetectMalformedListAborts(t *testing.T) {
	tbl := testkit.BuildTable(
		[]table.Column{{Name: "tags", Kind: table.KindList}},
		[][]string{{"['ok']"}, {"[broken"}},
	)
	// CoerceCell keeps raw text for list cells, so the malformed cell
	// surfaces during unique counting and aborts the whole detection.
	_, err := Detect(tbl, DefaultStdThreshold, DefaultZScoreThreshold)
	require.Error(t, err)
}

func TestDetectConstantColumn(t *testing.T) {
	tbl := testkit.NumericTable("value", []string{"7", "7", "7", "7"})

	rep, err := Detect(tbl, DefaultStdThreshold, DefaultZScoreThreshold)
	require.NoError(t, err)
	// Zero spread flags nothing under either method.
	assert.Empty(t, rep.StdOutliers)
	assert.Empty(t, rep.ZScoreOutliers)
}
