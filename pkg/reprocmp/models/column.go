// Package models defines the comparison-table data structures shared by a paper
// and its reproductions.
package models

// ColumnType selects how a column's cells are interpreted.
type ColumnType string

const (
	// ColumnNumeric cells hold numbers and take part in best-value comparison.
	ColumnNumeric ColumnType = "numeric"
	// ColumnText cells hold free text and are never compared.
	ColumnText ColumnType = "text"
)

// Valid reports whether t is a known column type.
func (t ColumnType) Valid() bool {
	return t == ColumnNumeric || t == ColumnText
}

// BestPolicy decides which numeric value wins a cell.
type BestPolicy string

const (
	// BestHighest makes the largest value win.
	BestHighest BestPolicy = "highest"
	// BestLowest makes the smallest value win.
	BestLowest BestPolicy = "lowest"
)

// Valid reports whether p is a known policy.
func (p BestPolicy) Valid() bool {
	return p == BestHighest || p == BestLowest
}

// Column describes one column of a comparison table.
type Column struct {
	// Name is the column header.
	Name string `json:"name" validate:"required"`
	// Type is numeric or text.
	Type ColumnType `json:"type" validate:"oneof=numeric text"`
	// Best is the winning policy. Only meaningful for numeric columns.
	Best BestPolicy `json:"best,omitempty" validate:"omitempty,oneof=highest lowest"`
}

// IsNumeric reports whether the column takes part in best-value comparison.
func (c Column) IsNumeric() bool {
	return c.Type == ColumnNumeric
}

// Row describes one row of a comparison table.
type Row struct {
	// Name is the row header.
	Name string `json:"name" validate:"required"`
}

// DefaultColumn returns the shape of a freshly added column.
func DefaultColumn() Column {
	return Column{
		Name: "",
		Type: ColumnNumeric,
		Best: BestHighest,
	}
}

// DefaultRow returns the shape of a freshly added row.
func DefaultRow() Row {
	return Row{Name: ""}
}
