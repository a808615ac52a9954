package editor

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
)

// RowField names an editable row attribute.
type RowField string

const RowName RowField = "name"

// AddRow appends a default row with an empty cell for every column. It is
// refused while the most recently added row has no name.
func AddRow(table models.Table) (models.Table, error) {
	if _, last, ok := table.LastRow(); ok && last.Name == "" {
		return table, NewDraftIncompleteError(KindRow)
	}
	rowKey := models.NewKey()

	rows := maps.Clone(table.Rows)
	if rows == nil {
		rows = make(map[string]models.Row, 1)
	}
	rows[rowKey] = models.DefaultRow()

	cells := make(map[string]any, len(table.ColumnOrder))
	for _, colKey := range table.ColumnOrder {
		cells[colKey] = ""
	}
	values := maps.Clone(table.Values)
	if values == nil {
		values = make(models.Values, 1)
	}
	values[rowKey] = cells

	table.Rows = rows
	table.RowOrder = append(slices.Clone(table.RowOrder), rowKey)
	table.Values = values
	return table, nil
}

// RemoveRow deletes a row and its cells.
func RemoveRow(table models.Table, rowKey string) models.Table {
	rows := maps.Clone(table.Rows)
	delete(rows, rowKey)
	values := maps.Clone(table.Values)
	delete(values, rowKey)

	table.Rows = rows
	table.RowOrder = slices.DeleteFunc(slices.Clone(table.RowOrder), func(k string) bool { return k == rowKey })
	table.Values = values
	return table
}

// SetRowField replaces one attribute of a row.
func SetRowField(table models.Table, rowKey string, field RowField, value string) (models.Table, error) {
	row, ok := table.Rows[rowKey]
	if !ok {
		return table, unknownKey(KindRow, rowKey)
	}
	if field != RowName {
		return table, fmt.Errorf("row field %q: %w", field, ErrInvalidField)
	}
	row.Name = value

	rows := maps.Clone(table.Rows)
	rows[rowKey] = row
	table.Rows = rows
	return table, nil
}

// SetCellValue replaces the paper's value at (rowKey, colKey). Only the
// outer grid and the affected row are copied.
func SetCellValue(table models.Table, rowKey, colKey string, value any) (models.Table, error) {
	if _, ok := table.Rows[rowKey]; !ok {
		return table, unknownKey(KindRow, rowKey)
	}
	if _, ok := table.Columns[colKey]; !ok {
		return table, unknownKey(KindColumn, colKey)
	}

	row := maps.Clone(table.Values[rowKey])
	if row == nil {
		row = make(map[string]any, 1)
	}
	row[colKey] = value
	values := maps.Clone(table.Values)
	if values == nil {
		values = make(models.Values, 1)
	}
	values[rowKey] = row

	table.Values = values
	return table, nil
}
