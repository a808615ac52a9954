package models

import (
	"slices"
	"strconv"

	"github.com/google/uuid"
)

// NewKey returns a fresh opaque key for a table, row, column or document.
// Keys are never derived from existing ones, so a key freed by a deletion
// cannot come back.
func NewKey() string {
	return uuid.NewString()
}

// sortKeys orders keys numerically when both sides are integers and
// lexically otherwise. Documents written before explicit ordering was stored
// used "0", "1", ... keys.
func sortKeys(keys []string) {
	slices.SortStableFunc(keys, func(a, b string) int {
		ai, aErr := strconv.Atoi(a)
		bi, bErr := strconv.Atoi(b)
		switch {
		case aErr == nil && bErr == nil:
			return ai - bi
		case aErr == nil:
			return -1
		case bErr == nil:
			return 1
		}
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	})
}

// reconcileOrder returns order restricted to keys present in the map, with
// any keys missing from order appended in sortKeys order.
func reconcileOrder[V any](order []string, m map[string]V) []string {
	out := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, k := range order {
		if _, ok := m[k]; ok && !seen[k] {
			out = append(out, k)
			seen[k] = true
		}
	}
	var rest []string
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sortKeys(rest)
	return append(out, rest...)
}
