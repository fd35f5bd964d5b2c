package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Range holds 1-based inclusive cell bounds.
type Range struct {
	R1, C1 int
	R2, C2 int
}

// Ref renders the range in A1 notation, e.g. "A1:D10".
func (r Range) Ref() string {
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return fmt.Sprintf("%s:%s", start, end)
}

// UsedRange returns the bounding box of non-empty cells. ok is false for an
// empty grid.
func (g Grid) UsedRange() (Range, bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(g.rows)
	if minRow < 0 {
		return Range{}, false
	}
	return Range{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// findDataBounds finds the 0-based bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
