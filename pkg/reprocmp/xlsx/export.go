package xlsx

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/render"
	"github.com/xuri/excelize/v2"
)

// maxSheetName is Excel's sheet name length limit.
const maxSheetName = 31

// Export writes views to a new workbook at path.
func Export(path string, views []render.TableView) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := WriteViews(f, views); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// WriteViews writes one sheet per view, replacing the workbook's default
// sheet. Each row of a table becomes one line per contributor; best values
// are bold on a green fill.
func WriteViews(f *excelize.File, views []render.TableView) error {
	bestStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"C6EFCE"}},
	})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	defaultSheet := f.GetSheetName(0)
	used := make(map[string]bool)
	for i, view := range views {
		name := sheetName(view.Title, used)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}
		if err := writeView(f, name, view, headerStyle, bestStyle); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
	}
	return nil
}

func writeView(f *excelize.File, sheet string, view render.TableView, headerStyle, bestStyle int) error {
	header := []interface{}{"Row", "Contributor"}
	for _, col := range view.Columns {
		name := col.Name
		if col.Type == models.ColumnNumeric {
			name = fmt.Sprintf("%s (%s best)", col.Name, col.Best)
		}
		header = append(header, name)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	rowNum := 2
	for _, row := range view.Rows {
		for _, line := range row.Lines {
			values := []interface{}{row.Name, line.Label}
			for i, cell := range line.Cells {
				if view.Columns[i].Type == models.ColumnNumeric && !cell.Missing {
					values = append(values, parseValue(cell.Display))
					continue
				}
				values = append(values, cell.Display)
			}
			start, _ := excelize.CoordinatesToCellName(1, rowNum)
			if err := f.SetSheetRow(sheet, start, &values); err != nil {
				return err
			}
			for i, cell := range line.Cells {
				if !cell.Best {
					continue
				}
				name, _ := excelize.CoordinatesToCellName(3+i, rowNum)
				if err := f.SetCellStyle(sheet, name, name, bestStyle); err != nil {
					return err
				}
			}
			rowNum++
		}
	}
	return f.SetColWidth(sheet, "A", "B", 20)
}

// sheetName turns a title into a unique valid sheet name.
func sheetName(title string, used map[string]bool) string {
	base := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(title))
	base = strings.Trim(base, "'")
	if base == "" {
		base = "Table"
	}
	name := truncate(base, maxSheetName)
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		name = truncate(base, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
