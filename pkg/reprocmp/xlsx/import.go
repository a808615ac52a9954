package xlsx

import (
	"fmt"

	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
	"github.com/xuri/excelize/v2"
)

// ImportTable reads a table definition from a worksheet of the workbook at
// path. See ReadTable.
func ImportTable(path, sheetName, rangeRef string) (models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Table{}, err
	}
	defer f.Close()
	return ReadTable(f, sheetName, rangeRef)
}

// ReadTable builds a table from a region of a worksheet. The first row of the
// region holds column names and the first column holds row names; the rest
// are the paper's values. A column is numeric when every non-empty cell is a
// number. An empty sheetName selects the first sheet and an empty rangeRef
// selects the sheet's data bounds. The sheet name becomes the title.
func ReadTable(f *excelize.File, sheetName, rangeRef string) (models.Table, error) {
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Table{}, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	var area Area
	if rangeRef != "" {
		if area, err = ParseRange(rangeRef); err != nil {
			return models.Table{}, err
		}
	} else {
		var ok bool
		if area, ok = DataBounds(rows); !ok {
			return models.Table{}, fmt.Errorf("sheet %q: %w", sheetName, ErrNoTable)
		}
	}
	if area.R2-area.R1 < 1 || area.C2-area.C1 < 1 {
		return models.Table{}, fmt.Errorf("sheet %q %s: %w", sheetName, area, ErrNoTable)
	}

	table := models.Table{
		Key:     models.NewKey(),
		Title:   sheetName,
		Columns: make(map[string]models.Column),
		Rows:    make(map[string]models.Row),
		Values:  make(models.Values),
	}

	for c := area.C1 + 1; c <= area.C2; c++ {
		key := models.NewKey()
		table.Columns[key] = models.Column{
			Name: cellAt(rows, area.R1, c),
			Type: columnType(rows, area, c),
			Best: models.BestHighest,
		}
		table.ColumnOrder = append(table.ColumnOrder, key)
	}

	for r := area.R1 + 1; r <= area.R2; r++ {
		rowKey := models.NewKey()
		table.Rows[rowKey] = models.Row{Name: cellAt(rows, r, area.C1)}
		table.RowOrder = append(table.RowOrder, rowKey)

		cells := make(map[string]any, len(table.ColumnOrder))
		for i, colKey := range table.ColumnOrder {
			text := cellAt(rows, r, area.C1+1+i)
			if table.Columns[colKey].IsNumeric() && text != "" {
				cells[colKey] = parseValue(text)
				continue
			}
			cells[colKey] = text
		}
		table.Values[rowKey] = cells
	}

	return table, nil
}

// columnType reports numeric when column c has at least one value below the
// header and all its values are numbers.
func columnType(rows [][]string, area Area, c int) models.ColumnType {
	seen := false
	for r := area.R1 + 1; r <= area.R2; r++ {
		text := cellAt(rows, r, c)
		if text == "" {
			continue
		}
		if _, isText := parseValue(text).(string); isText {
			return models.ColumnText
		}
		seen = true
	}
	if !seen {
		return models.ColumnText
	}
	return models.ColumnNumeric
}
