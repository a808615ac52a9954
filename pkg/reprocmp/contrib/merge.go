package contrib

import (
	"maps"

	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
)

// SetValue returns tv with the cell at (tableKey, rowKey, colKey) replaced.
// Only the containing maps are copied.
func SetValue(tv models.TableValues, tableKey, rowKey, colKey string, value any) models.TableValues {
	row := maps.Clone(tv[tableKey][rowKey])
	if row == nil {
		row = make(map[string]any, 1)
	}
	row[colKey] = value

	values := maps.Clone(tv[tableKey])
	if values == nil {
		values = make(models.Values, 1)
	}
	values[rowKey] = row

	out := maps.Clone(tv)
	if out == nil {
		out = make(models.TableValues, 1)
	}
	out[tableKey] = values
	return out
}

// MergeTableValues is a shallow union of sources keyed by table key. When a
// key appears in more than one source the later source wins.
// Earlier fills of the same table are dropped without notice.
func MergeTableValues(sources ...models.TableValues) models.TableValues {
	out := make(models.TableValues)
	for _, src := range sources {
		maps.Copy(out, src)
	}
	return out
}

// MergeTableSets is a shallow union of sources keyed by table key, later
// sources winning. Order follows first appearance.
func MergeTableSets(sources ...models.TableSet) models.TableSet {
	out := models.TableSet{Tables: make(map[string]models.Table)}
	for _, src := range sources {
		for _, table := range src.List() {
			if _, ok := out.Tables[table.Key]; !ok {
				out.Order = append(out.Order, table.Key)
			}
			out.Tables[table.Key] = table
		}
	}
	return out
}

// ReproductionTables folds the value-fills of reprods, in order, into one
// TableValues.
func ReproductionTables(reprods []models.Reproduction) models.TableValues {
	sources := make([]models.TableValues, 0, len(reprods))
	for _, r := range reprods {
		sources = append(sources, r.Tables)
	}
	return MergeTableValues(sources...)
}
