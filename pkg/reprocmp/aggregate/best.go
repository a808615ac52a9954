// Package aggregate decides, for every numeric cell of a paper's tables,
// which contributor holds the best value: the paper itself or one of its
// reproductions.
package aggregate

import (
	"math"

	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
)

// Contribution is one reproduction's value-fill as seen by the aggregator.
type Contribution struct {
	// ID is the contributor id used in result keys.
	ID string
	// Tables is the value-fill keyed by the paper's table keys.
	Tables models.TableValues
}

// ComputeBestCells returns, for every (table, row, numeric column) of tables,
// the key of the contributor holding the best value.
//
// Candidates are visited in a fixed order: the paper (paperValues under
// paperID) first, then every contribution that has values for the table, in
// the order given. A missing or non-numeric value counts as the worst
// possible one for the column's policy. The running best is replaced only on
// a strictly better value, so ties go to the earliest candidate and a cell
// where every value is missing still gets exactly one winner.
//
// Text columns and cells outside the paper's current rows × columns are
// ignored. The inputs are not modified.
func ComputeBestCells(tables models.TableSet, paperValues models.TableValues, contributions []Contribution, paperID string) BestCells {
	best := make(BestCells)
	for _, table := range tables.List() {
		for _, colKey := range table.ColumnOrder {
			col, ok := table.Columns[colKey]
			if !ok || !col.IsNumeric() {
				continue
			}
			better := comparator(col.Best)
			worst := sentinel(col.Best)
			for _, rowKey := range table.RowOrder {
				winner := CellKey(table.Key, rowKey, colKey, paperID)
				winning := numberOr(paperValues, table.Key, rowKey, colKey, worst)
				for _, c := range contributions {
					if !c.Tables.Has(table.Key) {
						continue
					}
					v := numberOr(c.Tables, table.Key, rowKey, colKey, worst)
					if better(v, winning) {
						winner = CellKey(table.Key, rowKey, colKey, c.ID)
						winning = v
					}
				}
				best[winner] = struct{}{}
			}
		}
	}
	return best
}

// ForPaper runs ComputeBestCells over a paper's own tables and values and its
// reproductions in the given order.
func ForPaper(paper models.Paper, reprods []models.Reproduction) BestCells {
	paperValues := make(models.TableValues, paper.Tables.Len())
	for _, table := range paper.Tables.List() {
		paperValues[table.Key] = table.Values
	}
	contributions := make([]Contribution, 0, len(reprods))
	for _, r := range reprods {
		contributions = append(contributions, Contribution{ID: r.ID, Tables: r.Tables})
	}
	return ComputeBestCells(paper.Tables, paperValues, contributions, paper.ID)
}

// comparator returns the strict "is better than" test for a policy. Anything
// other than lowest is treated as highest.
func comparator(policy models.BestPolicy) func(a, b float64) bool {
	if policy == models.BestLowest {
		return func(a, b float64) bool { return a < b }
	}
	return func(a, b float64) bool { return a > b }
}

// sentinel returns the worst possible value for a policy.
func sentinel(policy models.BestPolicy) float64 {
	if policy == models.BestLowest {
		return math.Inf(1)
	}
	return math.Inf(-1)
}

func numberOr(tv models.TableValues, tableKey, rowKey, colKey string, fallback float64) float64 {
	raw, ok := tv.Get(tableKey, rowKey, colKey)
	if !ok {
		return fallback
	}
	f, ok := models.ParseNumber(raw)
	if !ok {
		return fallback
	}
	return f
}
