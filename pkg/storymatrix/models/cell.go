// Package models defines data structures shared by the storymatrix packages.
package models

// CellRow represents a single non-empty row of a sheet.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Cells holds cleaned cell text, index 0 is column A.
	Cells []string `json:"cells"`
}

// At returns the cell text at the 1-based column, or "" when out of range.
func (r CellRow) At(col int) string {
	if col < 1 || col > len(r.Cells) {
		return ""
	}
	return r.Cells[col-1]
}
