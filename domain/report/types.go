// Package report holds the read-only summary objects produced by the
// anomaly detector and the facet analyzers. They are value objects:
// recomputed on every call, never cached, immutable once returned.
package report

import "time"

// MissingValueRow summarizes one column with at least one null cell.
type MissingValueRow struct {
	Column            string  `json:"column"`
	MissingCount      int     `json:"missing_count"`
	MissingPercentage float64 `json:"missing_percentage"`
}

// StdOutlierRow summarizes std-method outliers for one numeric column.
type StdOutlierRow struct {
	Column            string  `json:"column"`
	Mean              float64 `json:"mean"`
	StdDev            float64 `json:"std"`
	LowerBound        float64 `json:"lower_bound"`
	UpperBound        float64 `json:"upper_bound"`
	OutlierCount      int     `json:"outlier_count"`
	OutlierPercentage float64 `json:"outlier_percentage"`
}

// ZScoreOutlierRow summarizes z-score-method outliers for one numeric column.
type ZScoreOutlierRow struct {
	Column            string  `json:"column"`
	Mean              float64 `json:"mean"`
	StdDev            float64 `json:"std"`
	OutlierCount      int     `json:"outlier_count"`
	OutlierPercentage float64 `json:"outlier_percentage"`
}

// ColumnInfoRow reports cardinality for one categorical-like column.
type ColumnInfoRow struct {
	Column           string  `json:"column"`
	TotalCount       int     `json:"total_count"`
	UniqueCount      int     `json:"unique_count"`
	UniquePercentage float64 `json:"unique_percentage"`
}

// DataTypeRow shows one column's inferred type and an example value.
// Used for human inspection, not decision-making.
type DataTypeRow struct {
	Column   string `json:"column"`
	DataType string `json:"data_type"`
	Sample   string `json:"sample"`
}

// AnomalyReport carries the five detection sub-reports. Each may be
// empty (zero rows) but is always present. It is computed from the
// table as it stood at detection time and goes stale if the table is
// cleaned afterward; the cleaner deliberately consumes the pre-clean
// report's missing-value column list.
type AnomalyReport struct {
	MissingValues  []MissingValueRow  `json:"missing_values"`
	StdOutliers    []StdOutlierRow    `json:"std_outliers"`
	ZScoreOutliers []ZScoreOutlierRow `json:"z_score_outliers"`
	ColumnInfo     []ColumnInfoRow    `json:"column_info"`
	DataTypes      []DataTypeRow      `json:"data_types"`
}

// MissingValueColumns returns the columns flagged by the missing-value
// sub-report, in report order.
func (r *AnomalyReport) MissingValueColumns() []string {
	out := make([]string, len(r.MissingValues))
	for i, row := range r.MissingValues {
		out[i] = row.Column
	}
	return out
}

// NutritionStats describes one nutrition field. Quartile keys are the
// probability levels ("0.25", "0.5", "0.75") as strings, since JSON
// objects cannot carry numeric keys.
type NutritionStats struct {
	Mean      float64            `json:"mean"`
	Median    float64            `json:"median"`
	Min       float64            `json:"min"`
	Max       float64            `json:"max"`
	Quartiles map[string]float64 `json:"quartiles"`
}

// TemporalStats describes submission dates within a window.
type TemporalStats struct {
	DateMin    time.Time   `json:"date_min"`
	DateMax    time.Time   `json:"date_max"`
	TotalDays  int         `json:"total_days"`
	PerYear    map[int]int `json:"submissions_per_year"`
	PerMonth   map[int]int `json:"submissions_per_month"`
	PerWeekday map[int]int `json:"submissions_per_weekday"` // Monday = 0
}

// StepsStats describes the n_steps column.
type StepsStats struct {
	Mean         float64     `json:"mean"`
	Median       float64     `json:"median"`
	Min          float64     `json:"min"`
	Max          float64     `json:"max"`
	Distribution map[int]int `json:"distribution"`
}

// TimeStats describes the minutes column. TimeRanges always carries
// all five bucket labels, including zero-count ones.
type TimeStats struct {
	MeanMinutes   float64        `json:"mean_minutes"`
	MedianMinutes float64        `json:"median_minutes"`
	MinMinutes    float64        `json:"min_minutes"`
	MaxMinutes    float64        `json:"max_minutes"`
	TimeRanges    map[string]int `json:"time_ranges"`
}

// ComplexityStats bundles step and preparation-time statistics.
type ComplexityStats struct {
	Steps StepsStats `json:"steps_stats"`
	Time  TimeStats  `json:"time_stats"`
}

// TagCount is one tag with its dataset-wide frequency. Kept as an
// ordered slice rather than a map so the descending-count order the
// dashboard renders is part of the contract.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TagsPerRecipe summarizes per-row tag-list lengths.
type TagsPerRecipe struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// TagStats describes the tags facet.
type TagStats struct {
	TotalUniqueTags int           `json:"total_unique_tags"`
	MostCommonTags  []TagCount    `json:"most_common_tags"`
	TagsPerRecipe   TagsPerRecipe `json:"tags_per_recipe"`
}

// ContributorCount is one contributor with their submission count.
type ContributorCount struct {
	ContributorID string `json:"contributor_id"`
	Count         int    `json:"count"`
}

// ContributionsPerUser summarizes submissions per contributor.
type ContributionsPerUser struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

// ContributorStats describes the contributors facet.
type ContributorStats struct {
	TotalContributors    int                  `json:"total_contributors"`
	ContributionsPerUser ContributionsPerUser `json:"contributions_per_user"`
	TopContributors      []ContributorCount   `json:"top_contributors"`
}

// GeneralStats carries dataset-wide metadata for the aggregate report.
type GeneralStats struct {
	TotalRecipes  int            `json:"total_recipes"`
	DatasetSizeMB float64        `json:"dataset_size_mb"`
	Columns       []string       `json:"columns"`
	MissingValues map[string]int `json:"missing_values"`
}

// DatasetReport is the comprehensive multi-facet analysis returned to
// the dashboard.
type DatasetReport struct {
	General      GeneralStats              `json:"general_stats"`
	Temporal     TemporalStats             `json:"temporal_analysis"`
	Complexity   ComplexityStats           `json:"complexity_analysis"`
	Nutrition    map[string]NutritionStats `json:"nutrition_analysis"`
	Tags         TagStats                  `json:"tag_analysis"`
	Contributors ContributorStats          `json:"contributor_analysis"`
}
