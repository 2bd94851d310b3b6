package facets

import (
	"time"

	"recipelens/domain/report"
	"recipelens/domain/table"
	internal "recipelens/internal"
)

const submittedColumn = "submitted"

// AnalyzeTemporal reports the submission-date distribution of rows
// whose date falls inside [start, end]. Weekday keys follow the
// Monday=0 convention the dashboard already renders.
func AnalyzeTemporal(t *table.Table, start, end time.Time) (report.TemporalStats, error) {
	vals, err := t.Values(submittedColumn)
	if err != nil {
		internal.DefaultLogger.Error("temporal analysis failed: %v", err)
		return report.TemporalStats{}, err
	}

	out := report.TemporalStats{
		PerYear:    map[int]int{},
		PerMonth:   map[int]int{},
		PerWeekday: map[int]int{},
	}

	var first, last time.Time
	seen := false
	for _, v := range vals {
		if v.Missing || v.Kind != table.KindTimestamp {
			continue
		}
		d := v.Time
		if d.Before(start) || d.After(end) {
			continue
		}
		if !seen || d.Before(first) {
			first = d
		}
		if !seen || d.After(last) {
			last = d
		}
		seen = true

		out.PerYear[d.Year()]++
		out.PerMonth[int(d.Month())]++
		out.PerWeekday[mondayIndexed(d.Weekday())]++
	}

	if seen {
		out.DateMin = first
		out.DateMax = last
		out.TotalDays = int(last.Sub(first).Hours() / 24)
	}
	return out, nil
}

// mondayIndexed maps Go's Sunday=0 weekday to Monday=0.
func mondayIndexed(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
