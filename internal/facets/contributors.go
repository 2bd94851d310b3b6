package facets

import (
	"strconv"

	"recipelens/domain/report"
	"recipelens/domain/table"
	internal "recipelens/internal"
)

const contributorColumn = "contributor_id"

// TopContributorLimit caps the top-contributors table.
const TopContributorLimit = 10

// AnalyzeContributors reports the distinct contributor count,
// submissions-per-contributor statistics, and the contributors with
// the most submissions. Rows with a missing contributor id are
// excluded from the counts.
func AnalyzeContributors(t *table.Table) (report.ContributorStats, error) {
	vals, err := t.Values(contributorColumn)
	if err != nil {
		internal.DefaultLogger.Error("contributor analysis failed: %v", err)
		return report.ContributorStats{}, err
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	position := 0
	for _, v := range vals {
		if v.Missing {
			continue
		}
		id := contributorKey(v)
		if _, ok := counts[id]; !ok {
			firstSeen[id] = position
			position++
		}
		counts[id]++
	}

	perUser := make([]float64, 0, len(counts))
	for _, c := range counts {
		perUser = append(perUser, float64(c))
	}

	ranked := topCounts(counts, firstSeen, TopContributorLimit)
	top := make([]report.ContributorCount, len(ranked))
	for i, rc := range ranked {
		top[i] = report.ContributorCount{ContributorID: rc.key, Count: rc.count}
	}

	return report.ContributorStats{
		TotalContributors: len(counts),
		ContributionsPerUser: report.ContributionsPerUser{
			Mean:   meanOf(perUser),
			Median: medianOf(perUser),
			Max:    maxOf(perUser),
		},
		TopContributors: top,
	}, nil
}

// contributorKey renders an identifier cell: contributor ids arrive as
// integers in the raw dataset but may also be plain strings.
func contributorKey(v table.Value) string {
	if v.Kind == table.KindNumeric {
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}
	return v.Str
}
