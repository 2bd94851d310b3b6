package facets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipelens/domain/table"
	"recipelens/internal/errors"
	"recipelens/internal/testkit"
)

func TestAnalyzeTags(t *testing.T) {
	tbl := testkit.RecipeTable()

	out, err := AnalyzeTags(tbl)
	require.NoError(t, err)

	// Union of {vegan,easy}, {easy,soup}, {dinner}, {vegan,dinner,easy}.
	assert.Equal(t, 4, out.TotalUniqueTags)

	// Count descending, first occurrence breaking ties:
	// easy=3, then vegan=2 before dinner=2, then soup=1.
	require.Len(t, out.MostCommonTags, 4)
	assert.Equal(t, "easy", out.MostCommonTags[0].Tag)
	assert.Equal(t, 3, out.MostCommonTags[0].Count)
	assert.Equal(t, "vegan", out.MostCommonTags[1].Tag)
	assert.Equal(t, "dinner", out.MostCommonTags[2].Tag)
	assert.Equal(t, "soup", out.MostCommonTags[3].Tag)

	// Counts are non-increasing.
	for i := 1; i < len(out.MostCommonTags); i++ {
		assert.GreaterOrEqual(t, out.MostCommonTags[i-1].Count, out.MostCommonTags[i].Count)
	}

	// Tag-list lengths are 2, 2, 1, 3.
	assert.InDelta(t, 2.0, out.TagsPerRecipe.Mean, 1e-9)
	assert.InDelta(t, 2.0, out.TagsPerRecipe.Median, 1e-9)
	assert.InDelta(t, 1.0, out.TagsPerRecipe.Min, 1e-9)
	assert.InDelta(t, 3.0, out.TagsPerRecipe.Max, 1e-9)

	assert.True(t, tbl.HasColumn("tags_list"))
}

func TestAnalyzeTagsCapsMostCommon(t *testing.T) {
	cols := []table.Column{{Name: "tags", Kind: table.KindList}}
	rows := make([][]string, 30)
	for i := range rows {
		// 30 distinct single-tag rows.
		rows[i] = []string{"['tag-" + string(rune('a'+i%26)) + string(rune('a'+i/26)) + "']"}
	}
	tbl := testkit.BuildTable(cols, rows)

	out, err := AnalyzeTags(tbl)
	require.NoError(t, err)
	assert.Equal(t, 30, out.TotalUniqueTags)
	assert.Len(t, out.MostCommonTags, MostCommonTagLimit)
}

func TestAnalyzeTagsMalformedCellIsFatal(t *testing.T) {
	tbl := testkit.BuildTable(
		[]table.Column{{Name: "tags", Kind: table.KindList}},
		[][]string{{"['ok']"}, {"not-a-list"}},
	)
	_, err := AnalyzeTags(tbl)
	assert.Equal(t, errors.CodeDataMalformed, errors.GetCode(err))
}

func TestAnalyzeTagsMissingCellIsFatal(t *testing.T) {
	tbl := testkit.BuildTable(
		[]table.Column{{Name: "tags", Kind: table.KindList}},
		[][]string{{"['ok']"}, {""}},
	)
	_, err := AnalyzeTags(tbl)
	assert.Equal(t, errors.CodeDataMalformed, errors.GetCode(err))
}
