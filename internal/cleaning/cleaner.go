// Package cleaning removes the rows an anomaly report flags. Numeric
// filtering is sequential: each column's bounds are recomputed against
// the table as narrowed by the columns before it, so column order
// matters. That coupling matches the system this replaces; columns are
// processed in the table's declared order to keep runs deterministic.
package cleaning

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"recipelens/domain/report"
	"recipelens/domain/table"
	internal "recipelens/internal"
	"recipelens/internal/errors"
)

// Method selects the outlier rule used while cleaning.
type Method string

const (
	MethodStd    Method = "std"
	MethodZScore Method = "zscore"
)

// DefaultThreshold is the default cleaning threshold.
const DefaultThreshold = 3.0

// ParseMethod validates a method selector.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodStd, MethodZScore:
		return Method(s), nil
	default:
		return "", errors.InvalidInput("cleaning method must be 'std' or 'zscore'")
	}
}

// Clean narrows the table in place. For every numeric column, in
// declaration order, it recomputes mean/std over the current rows and
// drops rows outside the method's bounds; rows missing a value in the
// column are dropped as well (a missing value satisfies no bound).
// Afterward it drops rows null in any column the PRE-CLEAN report
// flagged for missing values; that list is never recomputed. The row
// index is compacted to a dense 0-based sequence. Failure mid-way may
// leave the table partially filtered.
func Clean(t *table.Table, rep *report.AnomalyReport, method Method, threshold float64) error {
	if method != MethodStd && method != MethodZScore {
		err := errors.InvalidInput("cleaning method must be 'std' or 'zscore'")
		internal.DefaultLogger.Error("cleaning aborted: %v", err)
		return err
	}
	if rep == nil {
		err := errors.InvalidInput("cleaning requires the pre-clean anomaly report")
		internal.DefaultLogger.Error("cleaning aborted: %v", err)
		return err
	}

	for _, name := range t.NumericColumns() {
		if err := cleanColumn(t, name, method, threshold); err != nil {
			internal.DefaultLogger.Error("cleaning failed on column %s: %v", name, err)
			return err
		}
	}

	// Drop rows with nulls in the columns the original report flagged.
	for _, name := range rep.MissingValueColumns() {
		if !t.HasColumn(name) {
			continue
		}
		col := name
		t.FilterRows(func(r int) bool {
			v, ok := t.At(r, col)
			return ok && !v.Missing
		})
	}

	return nil
}

func cleanColumn(t *table.Table, name string, method Method, threshold float64) error {
	vals, err := t.Float64s(name)
	if err != nil {
		return err
	}
	obs := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			obs = append(obs, v)
		}
	}
	if len(obs) == 0 {
		// Nothing to bound against; an all-missing column drops every
		// row, same as NaN bounds would.
		t.FilterRows(func(int) bool { return false })
		return nil
	}

	mean := stat.Mean(obs, nil)

	switch method {
	case MethodStd:
		std := stat.StdDev(obs, nil) // sample std, NaN for a single row
		lower := mean - threshold*std
		upper := mean + threshold*std
		t.FilterRows(func(r int) bool {
			v := vals[r]
			// NaN comparisons are false: missing rows and NaN bounds drop.
			return v >= lower && v <= upper
		})
	case MethodZScore:
		variance := stat.Variance(obs, nil) * float64(len(obs)-1) / float64(len(obs))
		std := math.Sqrt(variance) // population std, matching z-score standardization
		t.FilterRows(func(r int) bool {
			z := math.Abs((vals[r] - mean) / std)
			return z <= threshold
		})
	}
	return nil
}
