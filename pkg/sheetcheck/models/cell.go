// Package models defines data structures for workbook header extraction.
package models

// StyledCell is a single cell value together with its font weight.
type StyledCell struct {
	// Value is the raw cell value. Formula cells carry their cached result.
	Value string `json:"value"`
	// Bold reports whether the cell font is bold. Only set for non-empty cells.
	Bold bool `json:"bold,omitempty"`
}

// StyledRow is one sheet row. Cells are column-aligned, index 0 is column A.
type StyledRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Cells holds the row's cells up to its last non-empty column.
	Cells []StyledCell `json:"cells"`
}

// Values returns the row's cell values.
func (r StyledRow) Values() []string {
	values := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		values[i] = c.Value
	}
	return values
}

// CellRow represents a single data row below a header.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps header label to cell value. Columns without a label are keyed
	// by their 1-based column index.
	C map[string]interface{} `json:"c"`
}
