// Package xlsx exchanges comparison tables with Excel workbooks.
package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Area is a rectangular cell region. Coordinates are 1-based and inclusive.
type Area struct {
	R1 int
	C1 int
	R2 int
	C2 int
}

// String returns the area in A1:B2 notation.
func (a Area) String() string {
	start, _ := excelize.CoordinatesToCellName(a.C1, a.R1)
	end, _ := excelize.CoordinatesToCellName(a.C2, a.R2)
	return fmt.Sprintf("%s:%s", start, end)
}

// ParseRange parses a range like $A$1:$D$10 or 'Sheet 1'!A1:D10. A sheet
// prefix is ignored.
func ParseRange(ref string) (Area, error) {
	rangeStr := strings.TrimSpace(ref)
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return Area{}, fmt.Errorf("range %q: %w", ref, ErrInvalidRange)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return Area{}, fmt.Errorf("range %q: %w", ref, ErrInvalidRange)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return Area{}, fmt.Errorf("range %q: %w", ref, ErrInvalidRange)
	}

	return Area{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}
