package facets

import (
	"strconv"

	"recipelens/domain/report"
	"recipelens/domain/table"
	internal "recipelens/internal"
	"recipelens/internal/errors"
)

// NutritionFields are the seven values every recipe's nutrition list
// carries, in serialization order.
var NutritionFields = []string{
	"calories", "total_fat", "sugar",
	"sodium", "protein", "saturated_fat", "carbohydrates",
}

const (
	nutritionColumn = "nutrition"
	// nutritionListColumn is the derived parsed column appended on
	// first analysis.
	nutritionListColumn = "nutrition_list"
)

// AnalyzeNutrition parses each row's serialized nutrition list into the
// seven fixed fields and computes mean, median, min, max and the
// 0.25/0.5/0.75 quartiles per field. A malformed or missing nutrition
// cell is fatal for the whole analysis; there is no row-level recovery.
func AnalyzeNutrition(t *table.Table) (map[string]report.NutritionStats, error) {
	vals, err := t.Values(nutritionColumn)
	if err != nil {
		internal.DefaultLogger.Error("nutrition analysis failed: %v", err)
		return nil, err
	}

	fields := make([][]float64, len(NutritionFields))
	for i := range fields {
		fields[i] = make([]float64, 0, len(vals))
	}
	parsed := make([]table.Value, len(vals))

	for r, v := range vals {
		if v.Missing {
			err := errors.DataMalformed("nutrition value missing at row " + strconv.Itoa(r))
			internal.DefaultLogger.Error("nutrition analysis failed: %v", err)
			return nil, err
		}
		nums, err := parseNutritionCell(v)
		if err != nil {
			internal.DefaultLogger.Error("nutrition analysis failed at row %d: %v", r, err)
			return nil, err
		}
		if len(nums) != len(NutritionFields) {
			err := errors.DataMalformed("nutrition list must have exactly 7 values, got " + strconv.Itoa(len(nums)))
			internal.DefaultLogger.Error("nutrition analysis failed at row %d: %v", r, err)
			return nil, err
		}
		elems := make([]string, len(nums))
		for i, n := range nums {
			fields[i] = append(fields[i], n)
			elems[i] = strconv.FormatFloat(n, 'g', -1, 64)
		}
		parsed[r] = table.Parsed(elems)
	}

	if !t.HasColumn(nutritionListColumn) {
		if err := t.AppendColumn(nutritionListColumn, table.KindList, parsed); err != nil {
			internal.DefaultLogger.Error("nutrition analysis failed appending derived column: %v", err)
			return nil, err
		}
	}

	out := make(map[string]report.NutritionStats, len(NutritionFields))
	for i, name := range NutritionFields {
		obs := fields[i]
		out[name] = report.NutritionStats{
			Mean:   meanOf(obs),
			Median: medianOf(obs),
			Min:    minOf(obs),
			Max:    maxOf(obs),
			Quartiles: map[string]float64{
				"0.25": quantileOf(0.25, obs),
				"0.5":  quantileOf(0.5, obs),
				"0.75": quantileOf(0.75, obs),
			},
		}
	}
	return out, nil
}

func parseNutritionCell(v table.Value) ([]float64, error) {
	if v.List != nil {
		nums := make([]float64, len(v.List))
		for i, e := range v.List {
			n, err := strconv.ParseFloat(e, 64)
			if err != nil {
				return nil, errors.DataMalformed("non-numeric nutrition element: " + e)
			}
			nums[i] = n
		}
		return nums, nil
	}
	return table.ParseFloatList(v.Str)
}
