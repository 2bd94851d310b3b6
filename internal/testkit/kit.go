// Package testkit builds small in-memory recipe tables for tests.
package testkit

import (
	"recipelens/domain/table"
)

// BuildTable constructs a table from raw string cells, coercing each
// cell to its column's kind the same way the dataset accessor does.
// It panics on arity mismatches; fixtures are hand-written.
func BuildTable(cols []table.Column, rows [][]string) *table.Table {
	t := table.New(cols)
	for _, raw := range rows {
		vals := make([]table.Value, len(cols))
		for c := range cols {
			vals[c] = table.CoerceCell(raw[c], cols[c].Kind)
		}
		if err := t.AppendRow(vals); err != nil {
			panic(err)
		}
	}
	return t
}

// NumericTable builds a single-column numeric table.
func NumericTable(name string, vals []string) *table.Table {
	cols := []table.Column{{Name: name, Kind: table.KindNumeric}}
	rows := make([][]string, len(vals))
	for i, v := range vals {
		rows[i] = []string{v}
	}
	return BuildTable(cols, rows)
}

// RecipeColumns is the standard fixture layout. The submitted column
// starts as a string column, as it does when freshly loaded from disk.
func RecipeColumns() []table.Column {
	return []table.Column{
		{Name: "name", Kind: table.KindString},
		{Name: "submitted", Kind: table.KindString},
		{Name: "minutes", Kind: table.KindNumeric},
		{Name: "n_steps", Kind: table.KindNumeric},
		{Name: "contributor_id", Kind: table.KindNumeric},
		{Name: "nutrition", Kind: table.KindList},
		{Name: "tags", Kind: table.KindList},
	}
}

// RecipeTable builds the standard four-recipe fixture. The third
// recipe has a missing name, so the missing-values report flags the
// name column.
func RecipeTable() *table.Table {
	return BuildTable(RecipeColumns(), [][]string{
		{"pancakes", "2015-01-01", "10", "5", "100", "[100.0, 5.0, 10.0, 3.0, 4.0, 2.0, 15.0]", "['vegan', 'easy']"},
		{"soup", "2016-06-15", "45", "7", "200", "[200.0, 8.0, 4.0, 6.0, 12.0, 3.0, 20.0]", "['easy', 'soup']"},
		{"", "2017-03-20", "70", "5", "100", "[300.0, 12.0, 22.0, 9.0, 20.0, 5.0, 30.0]", "['dinner']"},
		{"stew", "2018-11-30", "200", "12", "300", "[400.0, 20.0, 35.0, 12.0, 28.0, 9.0, 45.0]", "['vegan', 'dinner', 'easy']"},
	})
}
