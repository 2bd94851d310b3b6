package facets

import (
	"recipelens/domain/report"
	"recipelens/domain/table"
	internal "recipelens/internal"
)

const (
	stepsColumn   = "n_steps"
	minutesColumn = "minutes"
)

// timeRangeLabels are the fixed preparation-time buckets, in bin order.
// Bins are left-open/right-closed: (0,15], (15,30], (30,60], (60,120],
// (120,inf). All labels are always present in the output, zero counts
// included. Minutes of zero or less fall outside every bucket.
var timeRangeLabels = []string{"0-15min", "15-30min", "30-60min", "1-2h", ">2h"}

var timeRangeUpper = []float64{15, 30, 60, 120}

// AnalyzeComplexity reports step-count statistics with a full frequency
// distribution and preparation-time statistics with fixed bucket counts.
func AnalyzeComplexity(t *table.Table) (report.ComplexityStats, error) {
	steps, err := t.Float64s(stepsColumn)
	if err != nil {
		internal.DefaultLogger.Error("complexity analysis failed: %v", err)
		return report.ComplexityStats{}, err
	}
	minutes, err := t.Float64s(minutesColumn)
	if err != nil {
		internal.DefaultLogger.Error("complexity analysis failed: %v", err)
		return report.ComplexityStats{}, err
	}

	stepObs := dropNaN(steps)
	distribution := make(map[int]int, len(stepObs))
	for _, v := range stepObs {
		distribution[int(v)]++
	}

	minuteObs := dropNaN(minutes)
	ranges := make(map[string]int, len(timeRangeLabels))
	for _, label := range timeRangeLabels {
		ranges[label] = 0
	}
	for _, v := range minuteObs {
		if label, ok := timeRange(v); ok {
			ranges[label]++
		}
	}

	return report.ComplexityStats{
		Steps: report.StepsStats{
			Mean:         meanOf(stepObs),
			Median:       medianOf(stepObs),
			Min:          minOf(stepObs),
			Max:          maxOf(stepObs),
			Distribution: distribution,
		},
		Time: report.TimeStats{
			MeanMinutes:   meanOf(minuteObs),
			MedianMinutes: medianOf(minuteObs),
			MinMinutes:    minOf(minuteObs),
			MaxMinutes:    maxOf(minuteObs),
			TimeRanges:    ranges,
		},
	}, nil
}

func timeRange(minutes float64) (string, bool) {
	if minutes <= 0 {
		return "", false
	}
	for i, upper := range timeRangeUpper {
		if minutes <= upper {
			return timeRangeLabels[i], true
		}
	}
	return timeRangeLabels[len(timeRangeLabels)-1], true
}
