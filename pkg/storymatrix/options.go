// Package storymatrix provides traceability-matrix tooling for a web
// application's route tree and its Excel user story matrix.
package storymatrix

const (
	// DefaultPageFile is the file name marking a directory as a page.
	DefaultPageFile = "page.tsx"
	// Marker is the cell value recording membership.
	Marker = "X"
	// RouteHeader labels the route column.
	RouteHeader = "Route/URL"
	// NameHeader labels the page-name column.
	NameHeader = "Tên giao diện"
	// StoryPrefix starts every user story ID.
	StoryPrefix = "US-"
)

// Layout describes where a matrix sheet keeps its labels and data.
type Layout struct {
	// NameCol is the 1-based column holding the page name.
	NameCol int
	// RouteCol is the 1-based column holding the route.
	RouteCol int
	// FirstLabelCol is the first column carrying story IDs or role codes.
	FirstLabelCol int
	// HeaderSearchRows bounds the header search to rows 1..HeaderSearchRows.
	HeaderSearchRows int
	// DataOffset is the distance from the route header row to the first data row.
	DataOffset int
}

// RoleSheetLayout returns the layout of a per-role story sheet: the route
// header sits on row 2, story IDs on row 3, data from row 4.
func RoleSheetLayout() Layout {
	return Layout{
		NameCol:          1,
		RouteCol:         2,
		FirstLabelCol:    3,
		HeaderSearchRows: 9,
		DataOffset:       2,
	}
}

// RoleMatrixLayout returns the layout of the role matrix sheet, where role
// codes share the route header row and data follows directly.
func RoleMatrixLayout() Layout {
	return Layout{
		NameCol:          1,
		RouteCol:         2,
		FirstLabelCol:    3,
		HeaderSearchRows: 9,
		DataOffset:       1,
	}
}
