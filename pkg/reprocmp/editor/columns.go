package editor

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
)

// ColumnField names an editable column attribute.
type ColumnField string

const (
	ColumnName ColumnField = "name"
	ColumnType ColumnField = "type"
	ColumnBest ColumnField = "best"
)

// AddColumn appends a default column and an empty cell for it in every row.
// It is refused while the most recently added column has no name.
func AddColumn(table models.Table) (models.Table, error) {
	if _, last, ok := table.LastColumn(); ok && last.Name == "" {
		return table, NewDraftIncompleteError(KindColumn)
	}
	colKey := models.NewKey()

	columns := maps.Clone(table.Columns)
	if columns == nil {
		columns = make(map[string]models.Column, 1)
	}
	columns[colKey] = models.DefaultColumn()

	values := make(models.Values, len(table.RowOrder))
	for _, rowKey := range table.RowOrder {
		row := maps.Clone(table.Values[rowKey])
		if row == nil {
			row = make(map[string]any, 1)
		}
		row[colKey] = ""
		values[rowKey] = row
	}

	table.Columns = columns
	table.ColumnOrder = append(slices.Clone(table.ColumnOrder), colKey)
	table.Values = values
	return table, nil
}

// RemoveColumn deletes a column and its cell in every row.
func RemoveColumn(table models.Table, colKey string) models.Table {
	columns := maps.Clone(table.Columns)
	delete(columns, colKey)

	values := make(models.Values, len(table.Values))
	for rowKey, row := range table.Values {
		if _, ok := row[colKey]; !ok {
			values[rowKey] = row
			continue
		}
		row = maps.Clone(row)
		delete(row, colKey)
		values[rowKey] = row
	}

	table.Columns = columns
	table.ColumnOrder = slices.DeleteFunc(slices.Clone(table.ColumnOrder), func(k string) bool { return k == colKey })
	table.Values = values
	return table
}

// SetColumnField replaces one attribute of a column.
func SetColumnField(table models.Table, colKey string, field ColumnField, value string) (models.Table, error) {
	col, ok := table.Columns[colKey]
	if !ok {
		return table, unknownKey(KindColumn, colKey)
	}
	switch field {
	case ColumnName:
		col.Name = value
	case ColumnType:
		t := models.ColumnType(value)
		if !t.Valid() {
			return table, fmt.Errorf("column type %q: %w", value, ErrInvalidField)
		}
		col.Type = t
	case ColumnBest:
		p := models.BestPolicy(value)
		if !p.Valid() {
			return table, fmt.Errorf("best policy %q: %w", value, ErrInvalidField)
		}
		col.Best = p
	default:
		return table, fmt.Errorf("column field %q: %w", field, ErrInvalidField)
	}

	columns := maps.Clone(table.Columns)
	columns[colKey] = col
	table.Columns = columns
	return table, nil
}
