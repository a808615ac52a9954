// Package render projects a paper, its reproductions and the aggregator's
// result into display grids with per-cell "best" flags.
package render

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/aggregate"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
)

// PaperLabel labels the paper's own line in every row.
const PaperLabel = "The paper"

// CellView is one rendered cell.
type CellView struct {
	// Display is the formatted value, empty when there is no data.
	Display string `json:"display"`
	// Best marks the winning value of the cell.
	Best bool `json:"best,omitempty"`
	// Missing marks a cell the contributor did not fill in.
	Missing bool `json:"missing,omitempty"`
}

// LineView holds one contributor's values for a row.
type LineView struct {
	// Contributor is the paper or reproduction id.
	Contributor string `json:"contributor"`
	// Label is the display name of the contributor.
	Label string `json:"label"`
	// Cells follow the table's column order.
	Cells []CellView `json:"cells"`
}

// RowView is one table row with a line per contributor.
type RowView struct {
	Key   string     `json:"key"`
	Name  string     `json:"name"`
	Lines []LineView `json:"lines"`
}

// ColumnView is one column header.
type ColumnView struct {
	Key  string            `json:"key"`
	Name string            `json:"name"`
	Type models.ColumnType `json:"type"`
	Best models.BestPolicy `json:"best,omitempty"`
}

// TableView is a display grid for one paper table.
type TableView struct {
	Key     string       `json:"key"`
	Title   string       `json:"title"`
	Columns []ColumnView `json:"columns"`
	Rows    []RowView    `json:"rows"`
}

// IsBest reports whether the contributor's value for the cell is highlighted.
func IsBest(best aggregate.BestCells, tableKey, rowKey, colKey, contributorID string) bool {
	return best.IsBest(tableKey, rowKey, colKey, contributorID)
}

// Project builds a view per paper table, in order. Every row shows the paper
// first, then each reproduction that filled in the table, in the given order.
func Project(paper models.Paper, reprods []models.Reproduction, best aggregate.BestCells) []TableView {
	views := make([]TableView, 0, paper.Tables.Len())
	for _, table := range paper.Tables.List() {
		view := TableView{Key: table.Key, Title: table.Title}
		for _, colKey := range table.ColumnOrder {
			col := table.Columns[colKey]
			cv := ColumnView{Key: colKey, Name: col.Name, Type: col.Type}
			if col.IsNumeric() {
				cv.Best = col.Best
			}
			view.Columns = append(view.Columns, cv)
		}
		for _, rowKey := range table.RowOrder {
			rv := RowView{Key: rowKey, Name: table.Rows[rowKey].Name}
			rv.Lines = append(rv.Lines, line(table, rowKey, paper.ID, PaperLabel, table.Values, best))
			for _, r := range reprods {
				values, ok := r.Tables[table.Key]
				if !ok {
					continue
				}
				rv.Lines = append(rv.Lines, line(table, rowKey, r.ID, reproductionLabel(r), values, best))
			}
			view.Rows = append(view.Rows, rv)
		}
		views = append(views, view)
	}
	return views
}

func line(table models.Table, rowKey, contributor, label string, values models.Values, best aggregate.BestCells) LineView {
	lv := LineView{Contributor: contributor, Label: label}
	for _, colKey := range table.ColumnOrder {
		raw, ok := values.Get(rowKey, colKey)
		cell := CellView{
			Display: Format(raw),
			Best:    IsBest(best, table.Key, rowKey, colKey, contributor),
			Missing: !ok || models.IsBlank(raw),
		}
		lv.Cells = append(lv.Cells, cell)
	}
	return lv
}

func reproductionLabel(r models.Reproduction) string {
	if r.Title != "" {
		return r.Title
	}
	return r.ID
}

// Format renders a raw cell value.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
