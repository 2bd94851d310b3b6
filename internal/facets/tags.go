package facets

import (
	"strconv"

	"recipelens/domain/report"
	"recipelens/domain/table"
	internal "recipelens/internal"
	"recipelens/internal/errors"
)

const (
	tagsColumn = "tags"
	// tagsListColumn is the derived parsed column appended on first
	// analysis.
	tagsListColumn = "tags_list"
)

// MostCommonTagLimit caps the most-frequent-tags table.
const MostCommonTagLimit = 20

// AnalyzeTags parses each row's serialized tag list and reports the
// total distinct tag count, the most frequent tags (count descending,
// first occurrence breaking ties), and per-recipe tag-count statistics.
// A malformed or missing tag cell is fatal for the whole analysis.
func AnalyzeTags(t *table.Table) (report.TagStats, error) {
	vals, err := t.Values(tagsColumn)
	if err != nil {
		internal.DefaultLogger.Error("tag analysis failed: %v", err)
		return report.TagStats{}, err
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	lengths := make([]float64, 0, len(vals))
	parsed := make([]table.Value, len(vals))
	position := 0

	for r, v := range vals {
		if v.Missing {
			err := errors.DataMalformed("tags value missing at row " + strconv.Itoa(r))
			internal.DefaultLogger.Error("tag analysis failed: %v", err)
			return report.TagStats{}, err
		}
		elems := v.List
		if elems == nil {
			elems, err = table.ParseStringList(v.Str)
			if err != nil {
				internal.DefaultLogger.Error("tag analysis failed at row %d: %v", r, err)
				return report.TagStats{}, err
			}
		}
		for _, tag := range elems {
			if _, ok := counts[tag]; !ok {
				firstSeen[tag] = position
				position++
			}
			counts[tag]++
		}
		lengths = append(lengths, float64(len(elems)))
		parsed[r] = table.Parsed(elems)
	}

	if !t.HasColumn(tagsListColumn) {
		if err := t.AppendColumn(tagsListColumn, table.KindList, parsed); err != nil {
			internal.DefaultLogger.Error("tag analysis failed appending derived column: %v", err)
			return report.TagStats{}, err
		}
	}

	ranked := topCounts(counts, firstSeen, MostCommonTagLimit)
	most := make([]report.TagCount, len(ranked))
	for i, rc := range ranked {
		most[i] = report.TagCount{Tag: rc.key, Count: rc.count}
	}

	return report.TagStats{
		TotalUniqueTags: len(counts),
		MostCommonTags:  most,
		TagsPerRecipe: report.TagsPerRecipe{
			Mean:   meanOf(lengths),
			Median: medianOf(lengths),
			Min:    minOf(lengths),
			Max:    maxOf(lengths),
		},
	}, nil
}
