package aggregate

import (
	"fmt"
	"slices"
)

// CellContributorKey names one contributor's entry for one table cell, in
// the form "{tableKey}_{rowKey}_{colKey}_{contributorID}".
type CellContributorKey string

// CellKey builds the CellContributorKey for a cell and contributor.
func CellKey(tableKey, rowKey, colKey, contributorID string) CellContributorKey {
	return CellContributorKey(fmt.Sprintf("%s_%s_%s_%s", tableKey, rowKey, colKey, contributorID))
}

// BestCells is the set of winning keys.
type BestCells map[CellContributorKey]struct{}

// Has reports whether key won its cell.
func (b BestCells) Has(key CellContributorKey) bool {
	_, ok := b[key]
	return ok
}

// IsBest reports whether contributorID holds the best value of the cell.
func (b BestCells) IsBest(tableKey, rowKey, colKey, contributorID string) bool {
	return b.Has(CellKey(tableKey, rowKey, colKey, contributorID))
}

// Keys returns the winning keys in sorted order.
func (b BestCells) Keys() []CellContributorKey {
	keys := make([]CellContributorKey, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
