package xlsx

import (
	"strings"

	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
)

// cellAt returns the text at the 1-based (row, col) of rows, or "" when the
// row is short or missing.
func cellAt(rows [][]string, row, col int) string {
	if row < 1 || row > len(rows) {
		return ""
	}
	r := rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return strings.TrimSpace(r[col-1])
}

// parseValue attempts to parse a string value as a finite number.
// Returns float64 for numbers or the original string.
func parseValue(s string) interface{} {
	if f, ok := models.ParseNumber(s); ok {
		return f
	}
	return s
}
