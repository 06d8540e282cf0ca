package report

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownColumn = errors.New("unknown column")
	ErrRowWidth      = errors.New("row width does not match columns")
)

// Row is one record of a Table. Cells line up with Table.Columns.
type Row []Cell

// Table is the tabular form every report is assembled into before it is
// handed to a sink (CSV, JSON, SQLite).
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

func NewTable(name string, columns []string) *Table {
	return &Table{Name: name, Columns: columns}
}

// Append adds a row. The row must have exactly one cell per column.
func (t *Table) Append(r Row) error {
	if len(r) != len(t.Columns) {
		return fmt.Errorf("table %s: %w: row has %d cells, want %d", t.Name, ErrRowWidth, len(r), len(t.Columns))
	}
	t.Rows = append(t.Rows, r)
	return nil
}

// Check verifies that every row has one cell per column. Sinks call it
// before writing since Rows may be assigned directly.
func (t *Table) Check() error {
	for i, r := range t.Rows {
		if len(r) != len(t.Columns) {
			return fmt.Errorf("table %s: %w: row %d has %d cells, want %d", t.Name, ErrRowWidth, i, len(r), len(t.Columns))
		}
	}
	return nil
}

func (t *Table) Len() int { return len(t.Rows) }

// ColumnIndex returns the position of column, or -1.
func (t *Table) ColumnIndex(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// SortBy orders rows ascending by column. The sort is stable, so rows
// with equal keys keep their input order.
func (t *Table) SortBy(column string) error {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return fmt.Errorf("table %s: %w %q", t.Name, ErrUnknownColumn, column)
	}
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return less(t.Rows[i][idx], t.Rows[j][idx])
	})
	return nil
}

// Column returns the cells of one column in row order.
func (t *Table) Column(column string) ([]Cell, error) {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil, fmt.Errorf("table %s: %w %q", t.Name, ErrUnknownColumn, column)
	}
	out := make([]Cell, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r[idx]
	}
	return out, nil
}
