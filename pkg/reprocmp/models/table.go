package models

import (
	"encoding/json"

	"github.com/tiendc/go-deepcopy"
)

// Table is one comparison table owned by a paper.
type Table struct {
	// Key identifies the table within its paper. Reproductions reference it.
	Key string `json:"key"`
	// Title is the display label. Required before the table is complete.
	Title string `json:"title" validate:"required"`
	// Columns maps column key to column definition.
	Columns map[string]Column `json:"cols" validate:"dive"`
	// ColumnOrder lists column keys in display order.
	ColumnOrder []string `json:"col_order"`
	// Rows maps row key to row definition.
	Rows map[string]Row `json:"rows" validate:"dive"`
	// RowOrder lists row keys in display order.
	RowOrder []string `json:"row_order"`
	// Values holds the paper's own cell values.
	Values Values `json:"values"`
}

// NewTable returns a table with a fresh key, one unnamed row and one unnamed
// numeric column, and an empty value in the single cell.
func NewTable() Table {
	rowKey, colKey := NewKey(), NewKey()
	return Table{
		Key:         NewKey(),
		Columns:     map[string]Column{colKey: DefaultColumn()},
		ColumnOrder: []string{colKey},
		Rows:        map[string]Row{rowKey: DefaultRow()},
		RowOrder:    []string{rowKey},
		Values:      Values{rowKey: {colKey: ""}},
	}
}

// Column returns the column stored under key.
func (t Table) Column(key string) (Column, bool) {
	c, ok := t.Columns[key]
	return c, ok
}

// Row returns the row stored under key.
func (t Table) Row(key string) (Row, bool) {
	r, ok := t.Rows[key]
	return r, ok
}

// LastColumn returns the most recently added column.
func (t Table) LastColumn() (string, Column, bool) {
	if len(t.ColumnOrder) == 0 {
		return "", Column{}, false
	}
	key := t.ColumnOrder[len(t.ColumnOrder)-1]
	return key, t.Columns[key], true
}

// LastRow returns the most recently added row.
func (t Table) LastRow() (string, Row, bool) {
	if len(t.RowOrder) == 0 {
		return "", Row{}, false
	}
	key := t.RowOrder[len(t.RowOrder)-1]
	return key, t.Rows[key], true
}

// IsEmpty reports whether the table has no cells to compare.
func (t Table) IsEmpty() bool {
	return len(t.RowOrder) == 0 || len(t.ColumnOrder) == 0
}

// Clone returns a deep copy of t.
func (t Table) Clone() (Table, error) {
	var out Table
	if err := deepcopy.Copy(&out, t); err != nil {
		return Table{}, err
	}
	return out, nil
}

// UnmarshalJSON decodes a table and reconciles the order lists with the
// column and row maps.
func (t *Table) UnmarshalJSON(data []byte) error {
	type plain Table
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = Table(p)
	t.ColumnOrder = reconcileOrder(t.ColumnOrder, t.Columns)
	t.RowOrder = reconcileOrder(t.RowOrder, t.Rows)
	return nil
}
