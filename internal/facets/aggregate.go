package facets

import (
	"time"

	"recipelens/domain/report"
	"recipelens/domain/table"
	internal "recipelens/internal"
)

// AnalyzeDataset assembles the comprehensive report: dataset metadata
// plus every facet's output. The temporal facet uses the supplied
// default date window. Any facet failure aborts the whole report.
func AnalyzeDataset(t *table.Table, dateStart, dateEnd time.Time) (*report.DatasetReport, error) {
	missing := make(map[string]int, len(t.ColumnNames()))
	for _, name := range t.ColumnNames() {
		missing[name] = t.MissingCount(name)
	}
	general := report.GeneralStats{
		TotalRecipes:  t.NumRows(),
		DatasetSizeMB: float64(t.ApproxBytes()) / 1024 / 1024,
		Columns:       t.ColumnNames(),
		MissingValues: missing,
	}

	temporal, err := AnalyzeTemporal(t, dateStart, dateEnd)
	if err != nil {
		internal.DefaultLogger.Error("dataset analysis failed: %v", err)
		return nil, err
	}
	complexity, err := AnalyzeComplexity(t)
	if err != nil {
		internal.DefaultLogger.Error("dataset analysis failed: %v", err)
		return nil, err
	}
	nutrition, err := AnalyzeNutrition(t)
	if err != nil {
		internal.DefaultLogger.Error("dataset analysis failed: %v", err)
		return nil, err
	}
	tags, err := AnalyzeTags(t)
	if err != nil {
		internal.DefaultLogger.Error("dataset analysis failed: %v", err)
		return nil, err
	}
	contributors, err := AnalyzeContributors(t)
	if err != nil {
		internal.DefaultLogger.Error("dataset analysis failed: %v", err)
		return nil, err
	}

	return &report.DatasetReport{
		General:      general,
		Temporal:     temporal,
		Complexity:   complexity,
		Nutrition:    nutrition,
		Tags:         tags,
		Contributors: contributors,
	}, nil
}
