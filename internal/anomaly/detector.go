// Package anomaly scans a table for missing values and statistical
// outliers, producing the descriptive report consumed by the cleaner
// and the dashboard. Detection is all-or-nothing: any failure aborts
// the whole scan and propagates, no partial report is returned.
package anomaly

import (
	"math"

	"github.com/montanaflynn/stats"

	"recipelens/domain/report"
	"recipelens/domain/table"
	internal "recipelens/internal"
	"recipelens/internal/errors"
)

// Default detection thresholds.
const (
	DefaultStdThreshold    = 3.0
	DefaultZScoreThreshold = 3.0
)

// Detect scans the table and returns the five-part anomaly report.
// The std method uses the sample standard deviation; the z-score
// method standardizes with the population standard deviation. Both
// thresholds are independent.
func Detect(t *table.Table, stdThreshold, zScoreThreshold float64) (*report.AnomalyReport, error) {
	rep := &report.AnomalyReport{
		MissingValues:  []report.MissingValueRow{},
		StdOutliers:    []report.StdOutlierRow{},
		ZScoreOutliers: []report.ZScoreOutlierRow{},
		ColumnInfo:     []report.ColumnInfoRow{},
		DataTypes:      []report.DataTypeRow{},
	}
	total := t.NumRows()

	// Missing values: only columns with a non-zero count appear.
	for _, name := range t.ColumnNames() {
		count := t.MissingCount(name)
		if count == 0 {
			continue
		}
		rep.MissingValues = append(rep.MissingValues, report.MissingValueRow{
			Column:            name,
			MissingCount:      count,
			MissingPercentage: round2(float64(count) / float64(total) * 100),
		})
	}

	for _, name := range t.NumericColumns() {
		vals, err := t.Float64s(name)
		if err != nil {
			internal.DefaultLogger.Error("anomaly detection failed reading column %s: %v", name, err)
			return nil, err
		}
		obs := observed(vals)
		if len(obs) == 0 {
			continue
		}

		mean, err := stats.Mean(obs)
		if err != nil {
			internal.DefaultLogger.Error("anomaly detection failed on column %s: %v", name, err)
			return nil, errors.Wrapf(err, "computing mean of column %s", name)
		}

		// Std-method outliers (sample standard deviation).
		sampleStd, err := stats.StandardDeviationSample(obs)
		if err != nil {
			internal.DefaultLogger.Error("anomaly detection failed on column %s: %v", name, err)
			return nil, errors.Wrapf(err, "computing std of column %s", name)
		}
		stdCount := 0
		for _, v := range vals {
			if math.IsNaN(v) {
				continue
			}
			if math.Abs(v-mean) > stdThreshold*sampleStd {
				stdCount++
			}
		}
		if stdCount > 0 {
			rep.StdOutliers = append(rep.StdOutliers, report.StdOutlierRow{
				Column:            name,
				Mean:              mean,
				StdDev:            sampleStd,
				LowerBound:        mean - stdThreshold*sampleStd,
				UpperBound:        mean + stdThreshold*sampleStd,
				OutlierCount:      stdCount,
				OutlierPercentage: round2(float64(stdCount) / float64(total) * 100),
			})
		}

		// Z-score outliers (population standard deviation).
		popStd, err := stats.StandardDeviationPopulation(obs)
		if err != nil {
			internal.DefaultLogger.Error("anomaly detection failed on column %s: %v", name, err)
			return nil, errors.Wrapf(err, "computing population std of column %s", name)
		}
		// Standardizing a column with missing cells yields NaN for every
		// row, so such columns flag nothing under the z-score rule.
		zCount := 0
		if popStd > 0 && !math.IsNaN(popStd) && len(obs) == len(vals) {
			for _, v := range vals {
				if math.Abs((v-mean)/popStd) > zScoreThreshold {
					zCount++
				}
			}
		}
		if zCount > 0 {
			rep.ZScoreOutliers = append(rep.ZScoreOutliers, report.ZScoreOutlierRow{
				Column:            name,
				Mean:              mean,
				StdDev:            sampleStd,
				OutlierCount:      zCount,
				OutlierPercentage: round2(float64(zCount) / float64(total) * 100),
			})
		}
	}

	// Unique-value counts for categorical-like columns. List columns
	// count the union of elements across rows, not distinct raw cells.
	for _, col := range t.Columns() {
		if col.Kind != table.KindString && col.Kind != table.KindList {
			continue
		}
		unique, err := uniqueCount(t, col)
		if err != nil {
			internal.DefaultLogger.Error("anomaly detection failed counting uniques in %s: %v", col.Name, err)
			return nil, err
		}
		rep.ColumnInfo = append(rep.ColumnInfo, report.ColumnInfoRow{
			Column:           col.Name,
			TotalCount:       total,
			UniqueCount:      unique,
			UniquePercentage: round2(float64(unique) / float64(total) * 100),
		})
	}

	// Data types with one example value from the first row.
	for _, col := range t.Columns() {
		sample := ""
		if v, ok := t.At(0, col.Name); ok {
			sample = v.Render()
		}
		rep.DataTypes = append(rep.DataTypes, report.DataTypeRow{
			Column:   col.Name,
			DataType: string(col.Kind),
			Sample:   sample,
		})
	}

	return rep, nil
}

func uniqueCount(t *table.Table, col table.Column) (int, error) {
	vals, err := t.Values(col.Name)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]struct{})
	for _, v := range vals {
		if v.Missing {
			continue
		}
		if col.Kind == table.KindList {
			elems := v.List
			if elems == nil {
				elems, err = table.ParseStringList(v.Str)
				if err != nil {
					return 0, err
				}
			}
			for _, e := range elems {
				seen[e] = struct{}{}
			}
			continue
		}
		seen[v.Str] = struct{}{}
	}
	return len(seen), nil
}

// observed filters out NaN stand-ins for missing cells.
func observed(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
