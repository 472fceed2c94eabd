// Package dataset provides the in-memory tabular value threaded through the
// cleaning pipeline: an ordered set of column labels plus rows of cells.
//
// Datasets are immutable from the caller's point of view. Every builder
// method (WithColumns, MapColumn, FilterRows, ...) returns a fresh Dataset
// and leaves the receiver untouched, so pipeline stages can be composed as
// pure functions without aliasing surprises.
package dataset

import "fmt"

// Row is one record, with cells indexed parallel to the dataset's columns.
type Row []Value

// Dataset is an ordered sequence of rows sharing a fixed ordered label set.
type Dataset struct {
	columns []string
	rows    []Row
}

// New creates a dataset from column labels and rows. Every row must have
// exactly one cell per column.
func New(columns []string, rows []Row) (*Dataset, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(columns))
		}
	}
	return &Dataset{
		columns: append([]string(nil), columns...),
		rows:    copyRows(rows),
	}, nil
}

// MustNew is New that panics on width mismatch. Intended for tests and
// literals where the shape is known.
func MustNew(columns []string, rows []Row) *Dataset {
	ds, err := New(columns, rows)
	if err != nil {
		panic(err)
	}
	return ds
}

// Columns returns a copy of the ordered column labels.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// NumColumns returns the number of columns.
func (d *Dataset) NumColumns() int {
	return len(d.columns)
}

// NumRows returns the number of rows.
func (d *Dataset) NumRows() int {
	return len(d.rows)
}

// ColumnIndex returns the position of the column with the given label.
func (d *Dataset) ColumnIndex(label string) (int, bool) {
	for i, c := range d.columns {
		if c == label {
			return i, true
		}
	}
	return 0, false
}

// HasColumn reports whether a column with the given label exists.
func (d *Dataset) HasColumn(label string) bool {
	_, ok := d.ColumnIndex(label)
	return ok
}

// Cell returns the value at the given row and column label.
func (d *Dataset) Cell(row int, label string) (Value, bool) {
	idx, ok := d.ColumnIndex(label)
	if !ok || row < 0 || row >= len(d.rows) {
		return Value{}, false
	}
	return d.rows[row][idx], true
}

// Row returns a copy of the row at the given index.
func (d *Dataset) Row(i int) Row {
	return append(Row(nil), d.rows[i]...)
}

// WithColumns returns a dataset with the same cells under new labels.
// The label count must match the current column count.
func (d *Dataset) WithColumns(labels []string) (*Dataset, error) {
	if len(labels) != len(d.columns) {
		return nil, fmt.Errorf("got %d labels, want %d", len(labels), len(d.columns))
	}
	return &Dataset{
		columns: append([]string(nil), labels...),
		rows:    copyRows(d.rows),
	}, nil
}

// MapColumn returns a dataset with fn applied to every cell of the named
// column. Unknown labels pass the dataset through unchanged (still copied).
func (d *Dataset) MapColumn(label string, fn func(Value) Value) *Dataset {
	out := d.clone()
	idx, ok := out.ColumnIndex(label)
	if !ok {
		return out
	}
	for _, row := range out.rows {
		row[idx] = fn(row[idx])
	}
	return out
}

// FilterRows returns a dataset containing only the rows for which keep
// returns true, in their original order.
func (d *Dataset) FilterRows(keep func(Row) bool) *Dataset {
	out := &Dataset{columns: append([]string(nil), d.columns...)}
	for _, row := range d.rows {
		if keep(append(Row(nil), row...)) {
			out.rows = append(out.rows, append(Row(nil), row...))
		}
	}
	return out
}

// SelectColumns returns a dataset containing the columns at the given
// indices, in the given order, with cells carried along.
func (d *Dataset) SelectColumns(indices []int) (*Dataset, error) {
	out := &Dataset{}
	for _, idx := range indices {
		if idx < 0 || idx >= len(d.columns) {
			return nil, fmt.Errorf("column index %d out of range", idx)
		}
		out.columns = append(out.columns, d.columns[idx])
	}
	for _, row := range d.rows {
		picked := make(Row, 0, len(indices))
		for _, idx := range indices {
			picked = append(picked, row[idx])
		}
		out.rows = append(out.rows, picked)
	}
	return out, nil
}

// Head returns a dataset holding at most n leading rows.
func (d *Dataset) Head(n int) *Dataset {
	if n > len(d.rows) {
		n = len(d.rows)
	}
	if n < 0 {
		n = 0
	}
	return &Dataset{
		columns: append([]string(nil), d.columns...),
		rows:    copyRows(d.rows[:n]),
	}
}

// Records renders the dataset as string records, one slice per row, cells in
// column order. This is the writer-facing form.
func (d *Dataset) Records() [][]string {
	records := make([][]string, 0, len(d.rows))
	for _, row := range d.rows {
		rec := make([]string, 0, len(row))
		for _, v := range row {
			rec = append(rec, v.Text())
		}
		records = append(records, rec)
	}
	return records
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	return d.clone()
}

func (d *Dataset) clone() *Dataset {
	return &Dataset{
		columns: append([]string(nil), d.columns...),
		rows:    copyRows(d.rows),
	}
}

func copyRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, row := range rows {
		out[i] = append(Row(nil), row...)
	}
	return out
}
