// Package facets computes fixed-shape descriptive statistics over one
// semantic dimension of the recipe table at a time. Analyzers read the
// full current table; the list-parsing analyzers append their parsed
// column as a derived column. Degenerate inputs (empty columns, zero
// spread) surface as NaN in the results, never as errors.
package facets

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

func meanOf(obs []float64) float64 {
	v, err := stats.Mean(obs)
	if err != nil {
		return math.NaN()
	}
	return v
}

func medianOf(obs []float64) float64 {
	v, err := stats.Median(obs)
	if err != nil {
		return math.NaN()
	}
	return v
}

func minOf(obs []float64) float64 {
	v, err := stats.Min(obs)
	if err != nil {
		return math.NaN()
	}
	return v
}

func maxOf(obs []float64) float64 {
	v, err := stats.Max(obs)
	if err != nil {
		return math.NaN()
	}
	return v
}

// quantileOf computes a linearly interpolated quantile (R type 7, the
// convention the dashboard's quartile charts assume). Quantile 0.5 is
// exactly the median.
func quantileOf(p float64, obs []float64) float64 {
	if len(obs) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(obs))
	copy(sorted, obs)
	sort.Float64s(sorted)

	idx := p * float64(len(sorted)-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	frac := idx - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// dropNaN filters the NaN stand-ins for missing cells.
func dropNaN(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// rankedCount is a counted key with its first-seen position, used to
// order frequency tables deterministically (count desc, then first
// occurrence).
type rankedCount struct {
	key   string
	count int
	seen  int
}

func topCounts(counts map[string]int, firstSeen map[string]int, limit int) []rankedCount {
	ranked := make([]rankedCount, 0, len(counts))
	for k, c := range counts {
		ranked = append(ranked, rankedCount{key: k, count: c, seen: firstSeen[k]})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].seen < ranked[j].seen
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
