// Package sheet provides excelize helpers for locating and mutating cells in
// story matrix sheets.
package sheet

import (
	"strings"

	"github.com/ukaji3/storymatrix-go/pkg/storymatrix"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/routes"
	"github.com/xuri/excelize/v2"
)

// Grid is a cleaned, 1-based view of a sheet's cell text.
type Grid struct {
	rows [][]string
}

// ReadGrid reads all cell text of a sheet.
func ReadGrid(f *excelize.File, sheetName string) (Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return Grid{}, err
	}
	for _, row := range rows {
		for i, v := range row {
			row[i] = storymatrix.Clean(v)
		}
	}
	return Grid{rows: rows}, nil
}

// NewGrid builds a Grid from literal rows, mainly for tests.
func NewGrid(rows [][]string) Grid {
	g := Grid{rows: make([][]string, len(rows))}
	for i, row := range rows {
		g.rows[i] = make([]string, len(row))
		for j, v := range row {
			g.rows[i][j] = storymatrix.Clean(v)
		}
	}
	return g
}

// At returns the text at (row, col), both 1-based, or "" outside the data.
func (g Grid) At(row, col int) string {
	if row < 1 || row > len(g.rows) {
		return ""
	}
	r := g.rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

// MaxRow returns the last row holding data.
func (g Grid) MaxRow() int {
	return len(g.rows)
}

// MaxCol returns the widest row's column count.
func (g Grid) MaxCol() int {
	maxCol := 0
	for _, r := range g.rows {
		if len(r) > maxCol {
			maxCol = len(r)
		}
	}
	return maxCol
}

func (g *Grid) set(row, col int, v string) {
	for len(g.rows) < row {
		g.rows = append(g.rows, nil)
	}
	r := g.rows[row-1]
	for len(r) < col {
		r = append(r, "")
	}
	r[col-1] = storymatrix.Clean(v)
	g.rows[row-1] = r
}

// Matcher tests a cleaned cell value.
type Matcher func(string) bool

// Equals matches cells equal to label after cleaning.
func Equals(label string) Matcher {
	want := storymatrix.Clean(label)
	return func(v string) bool { return v == want }
}

// Contains matches cells containing label.
func Contains(label string) Matcher {
	want := storymatrix.Clean(label)
	return func(v string) bool { return strings.Contains(v, want) }
}

// HasPrefix matches cells starting with prefix.
func HasPrefix(prefix string) Matcher {
	return func(v string) bool { return strings.HasPrefix(v, prefix) }
}

// RouteEquals matches cells whose normalized route equals route.
func RouteEquals(route string) Matcher {
	want := routes.Normalize(route)
	return func(v string) bool { return want != "" && routes.Normalize(v) == want }
}

// FindRow scans col over rows from..to (inclusive) and returns the first row
// whose value matches. A non-positive to means the last data row.
func (g Grid) FindRow(col, from, to int, match Matcher) (int, bool) {
	if from < 1 {
		from = 1
	}
	if to <= 0 || to > g.MaxRow() {
		to = g.MaxRow()
	}
	for r := from; r <= to; r++ {
		if match(g.At(r, col)) {
			return r, true
		}
	}
	return 0, false
}

// FindCol scans row from column from to the widest column and returns the
// first column whose value matches.
func (g Grid) FindCol(row, from int, match Matcher) (int, bool) {
	if from < 1 {
		from = 1
	}
	for c := from; c <= g.MaxCol(); c++ {
		if match(g.At(row, c)) {
			return c, true
		}
	}
	return 0, false
}

// RouteCell is a route read from a sheet together with its row.
type RouteCell struct {
	Row   int
	Route string
}

// Routes reads normalized routes from col, starting at row from. Blank
// cells, "None" placeholders and the route header label are skipped.
func (g Grid) Routes(col, from int) []RouteCell {
	var out []RouteCell
	for r := max(from, 1); r <= g.MaxRow(); r++ {
		v := g.At(r, col)
		if v == "" || v == "None" || strings.EqualFold(v, storymatrix.RouteHeader) {
			continue
		}
		out = append(out, RouteCell{Row: r, Route: routes.Normalize(v)})
	}
	return out
}

// RouteHeaderRow finds the row within the layout's search range whose route
// column holds the route header label.
func (g Grid) RouteHeaderRow(l storymatrix.Layout) (int, bool) {
	return g.FindRow(l.RouteCol, 1, l.HeaderSearchRows, Equals(storymatrix.RouteHeader))
}

// Locate finds the column labelled label on headerRow (from the layout's
// first label column) and the row below headerRow whose route column holds
// route. ok is false when either lookup misses.
func (g Grid) Locate(l storymatrix.Layout, headerRow int, route, label string) (row, col int, ok bool) {
	col, ok = g.FindCol(headerRow, l.FirstLabelCol, Equals(label))
	if !ok {
		return 0, 0, false
	}
	row, ok = g.FindRow(l.RouteCol, headerRow+1, 0, RouteEquals(route))
	if !ok {
		return 0, 0, false
	}
	return row, col, true
}
