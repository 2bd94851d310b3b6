package table

import (
	"math"
	"time"

	"recipelens/internal/errors"
)

// Column describes one table column.
type Column struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// Table is an ordered, in-memory collection of typed rows. It is the
// single shared dataset of an analysis session: the cleaner narrows it
// in place, analyzers read it, and derived parsed-list columns may be
// appended. Callers must serialize mutation against reads; the table
// provides no internal locking.
type Table struct {
	cols  []Column
	index map[string]int
	rows  [][]Value
}

// New creates an empty table with the given column layout.
func New(cols []Column) *Table {
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		index[c.Name] = i
	}
	return &Table{cols: cols, index: index}
}

// AppendRow adds one row; its arity must match the column layout.
func (t *Table) AppendRow(vals []Value) error {
	if len(vals) != len(t.cols) {
		return errors.InvalidInput("row arity does not match column layout")
	}
	t.rows = append(t.rows, vals)
	return nil
}

// NumRows returns the current row count.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// Columns returns the column layout in declaration order.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.cols))
	copy(out, t.cols)
	return out
}

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.Name
	}
	return out
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// KindOf returns the inferred kind of the named column.
func (t *Table) KindOf(name string) (Kind, bool) {
	i, ok := t.index[name]
	if !ok {
		return "", false
	}
	return t.cols[i].Kind, true
}

// At returns the cell at (row, column name).
func (t *Table) At(row int, name string) (Value, bool) {
	i, ok := t.index[name]
	if !ok || row < 0 || row >= len(t.rows) {
		return Value{}, false
	}
	return t.rows[row][i], true
}

// Values gathers all cells of the named column in row order.
func (t *Table) Values(name string) ([]Value, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, errors.ColumnMissing(name)
	}
	out := make([]Value, len(t.rows))
	for r, row := range t.rows {
		out[r] = row[i]
	}
	return out, nil
}

// Float64s returns a numeric column with NaN standing in for missing
// cells, so positions line up with row indices.
func (t *Table) Float64s(name string) ([]float64, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, errors.ColumnMissing(name)
	}
	if t.cols[i].Kind != KindNumeric {
		return nil, errors.InvalidInput("column " + name + " is not numeric")
	}
	out := make([]float64, len(t.rows))
	for r, row := range t.rows {
		if row[i].Missing {
			out[r] = math.NaN()
		} else {
			out[r] = row[i].Num
		}
	}
	return out, nil
}

// NumericColumns returns the names of numeric columns in declaration order.
func (t *Table) NumericColumns() []string {
	var out []string
	for _, c := range t.cols {
		if c.Kind == KindNumeric {
			out = append(out, c.Name)
		}
	}
	return out
}

// MissingCount counts missing cells in the named column.
func (t *Table) MissingCount(name string) int {
	i, ok := t.index[name]
	if !ok {
		return 0
	}
	count := 0
	for _, row := range t.rows {
		if row[i].Missing {
			count++
		}
	}
	return count
}

// FilterRows keeps rows for which keep returns true and compacts the
// table to a dense 0-based index. It returns the number of rows removed.
func (t *Table) FilterRows(keep func(row int) bool) int {
	kept := t.rows[:0]
	removed := 0
	for r := range t.rows {
		if keep(r) {
			kept = append(kept, t.rows[r])
		} else {
			removed++
		}
	}
	t.rows = kept
	return removed
}

// FilterByDateRange narrows the table to rows whose timestamp in the
// named column falls inside [start, end]. Missing timestamps satisfy
// neither bound and are dropped.
func (t *Table) FilterByDateRange(name string, start, end time.Time) error {
	i, ok := t.index[name]
	if !ok {
		return errors.ColumnMissing(name)
	}
	if t.cols[i].Kind != KindTimestamp {
		return errors.InvalidInput("column " + name + " is not a timestamp")
	}
	t.FilterRows(func(r int) bool {
		v := t.rows[r][i]
		if v.Missing {
			return false
		}
		return !v.Time.Before(start) && !v.Time.After(end)
	})
	return nil
}

// ConvertToTimestamp reparses a string column into timestamps. Cells
// that fail to parse are a data error, not silently nulled.
func (t *Table) ConvertToTimestamp(name string) error {
	i, ok := t.index[name]
	if !ok {
		return errors.ColumnMissing(name)
	}
	if t.cols[i].Kind == KindTimestamp {
		return nil
	}
	for r, row := range t.rows {
		if row[i].Missing {
			t.rows[r][i] = Null(KindTimestamp)
			continue
		}
		ts, ok := ParseTimestamp(row[i].Str)
		if !ok {
			return errors.DataMalformed("column " + name + " holds an unparseable date: " + truncate(row[i].Str))
		}
		t.rows[r][i] = Timestamp(ts)
	}
	t.cols[i].Kind = KindTimestamp
	return nil
}

// AppendColumn adds a derived column; its length must match the row count.
func (t *Table) AppendColumn(name string, kind Kind, vals []Value) error {
	if _, exists := t.index[name]; exists {
		return errors.InvalidInput("column " + name + " already exists")
	}
	if len(vals) != len(t.rows) {
		return errors.InvalidInput("derived column length does not match row count")
	}
	t.index[name] = len(t.cols)
	t.cols = append(t.cols, Column{Name: name, Kind: kind})
	for r := range t.rows {
		t.rows[r] = append(t.rows[r], vals[r])
	}
	return nil
}

// ApproxBytes estimates the in-memory size of the table.
func (t *Table) ApproxBytes() int64 {
	var total int64
	for _, row := range t.rows {
		for _, v := range row {
			total += 48 // Value struct overhead
			total += int64(len(v.Str))
			for _, e := range v.List {
				total += int64(len(e)) + 16
			}
		}
	}
	return total
}
