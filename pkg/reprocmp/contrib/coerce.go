package contrib

import (
	"fmt"

	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
)

// CoerceTables returns a copy of tables ready to be stored: every cell of a
// numeric column becomes a float64, every text cell a string, and cells
// outside rows × columns are dropped. A numeric cell that is empty or not a
// finite number fails the whole submission.
func CoerceTables(tables models.TableSet) (models.TableSet, error) {
	out, err := tables.Clone()
	if err != nil {
		return models.TableSet{}, err
	}
	for _, key := range out.Order {
		table := out.Tables[key]
		values := make(models.Values, len(table.RowOrder))
		for _, rowKey := range table.RowOrder {
			row := make(map[string]any, len(table.ColumnOrder))
			for _, colKey := range table.ColumnOrder {
				raw, _ := table.Values.Get(rowKey, colKey)
				if table.Columns[colKey].IsNumeric() {
					f, ok := models.ParseNumber(raw)
					if !ok {
						return models.TableSet{}, NewCoercionError(key, rowKey, colKey, raw)
					}
					row[colKey] = f
					continue
				}
				row[colKey] = text(raw)
			}
			values[rowKey] = row
		}
		table.Values = values
		out.Tables[key] = table
	}
	return out, nil
}

// CoerceTableValues returns a reproduction's value-fill interpreted against
// the paper's current tables. Blank cells are dropped since a partial fill is
// legal; cells whose table, row or column is not in the schema are dropped
// too. A non-blank numeric cell that is not a finite number fails the whole
// submission.
func CoerceTableValues(schema models.TableSet, tv models.TableValues) (models.TableValues, error) {
	out := make(models.TableValues, len(tv))
	for _, table := range schema.List() {
		values, ok := tv[table.Key]
		if !ok {
			continue
		}
		coerced := make(models.Values, len(values))
		for _, rowKey := range table.RowOrder {
			src, ok := values[rowKey]
			if !ok {
				continue
			}
			row := make(map[string]any, len(src))
			for _, colKey := range table.ColumnOrder {
				raw, ok := src[colKey]
				if !ok || models.IsBlank(raw) {
					continue
				}
				if table.Columns[colKey].IsNumeric() {
					f, ok := models.ParseNumber(raw)
					if !ok {
						return nil, NewCoercionError(table.Key, rowKey, colKey, raw)
					}
					row[colKey] = f
					continue
				}
				row[colKey] = text(raw)
			}
			if len(row) > 0 {
				coerced[rowKey] = row
			}
		}
		out[table.Key] = coerced
	}
	return out, nil
}

func text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
