package models

import (
	"github.com/tiendc/go-deepcopy"
)

// Values is the sparse cell grid of a table: row key -> column key -> value.
// A value is a string while being edited, and a float64 (numeric column) or a
// string (text column) once committed.
type Values map[string]map[string]any

// Get returns the raw value at (rowKey, colKey).
func (v Values) Get(rowKey, colKey string) (any, bool) {
	row, ok := v[rowKey]
	if !ok {
		return nil, false
	}
	val, ok := row[colKey]
	return val, ok
}

// Clone returns a deep copy of v.
func (v Values) Clone() (Values, error) {
	if v == nil {
		return nil, nil
	}
	var out Values
	if err := deepcopy.Copy(&out, v); err != nil {
		return nil, err
	}
	return out, nil
}

// TableValues is a reproduction's value-fill: table key -> Values. It carries
// no schema; it is read against the paper's tables.
type TableValues map[string]Values

// Get returns the raw value at (tableKey, rowKey, colKey).
func (tv TableValues) Get(tableKey, rowKey, colKey string) (any, bool) {
	values, ok := tv[tableKey]
	if !ok {
		return nil, false
	}
	return values.Get(rowKey, colKey)
}

// Has reports whether a sub-map exists for tableKey.
func (tv TableValues) Has(tableKey string) bool {
	_, ok := tv[tableKey]
	return ok
}

// Clone returns a deep copy of tv.
func (tv TableValues) Clone() (TableValues, error) {
	if tv == nil {
		return nil, nil
	}
	var out TableValues
	if err := deepcopy.Copy(&out, tv); err != nil {
		return nil, err
	}
	return out, nil
}
