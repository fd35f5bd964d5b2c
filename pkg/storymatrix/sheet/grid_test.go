package sheet

import (
	"testing"

	"github.com/ukaji3/storymatrix-go/pkg/storymatrix"
)

func sampleGrid() Grid {
	return NewGrid([][]string{
		{"1. EMP: Nhân viên"},
		{"Tên giao diện", "Route/URL", "Epic EMP-00: Xác thực"},
		{"", "", "US-EMP-00-01", " US-EMP-00-02 "},
		{"Đăng nhập", "/login", "X"},
		{"Dashboard", `dashboard`, "", "x"},
		{},
		{"Chi tiết", `\projects\[id]`},
	})
}

func TestGridAt(t *testing.T) {
	g := sampleGrid()
	if g.At(3, 4) != "US-EMP-00-02" {
		t.Errorf("Expected trimmed story ID, got %q", g.At(3, 4))
	}
	if g.At(0, 1) != "" || g.At(99, 1) != "" || g.At(1, 99) != "" {
		t.Errorf("Expected empty text outside the data")
	}
	if g.MaxRow() != 7 {
		t.Errorf("Expected max row 7, got %d", g.MaxRow())
	}
	if g.MaxCol() != 4 {
		t.Errorf("Expected max col 4, got %d", g.MaxCol())
	}
}

func TestFindRowAndCol(t *testing.T) {
	g := sampleGrid()

	if r, ok := g.FindRow(2, 1, 9, Equals("Route/URL")); !ok || r != 2 {
		t.Errorf("FindRow(Route/URL) = %d, %v", r, ok)
	}
	if _, ok := g.FindRow(2, 1, 1, Equals("Route/URL")); ok {
		t.Errorf("Expected bounded search to miss")
	}
	if r, ok := g.FindRow(3, 1, 9, HasPrefix(storymatrix.StoryPrefix)); !ok || r != 3 {
		t.Errorf("FindRow(US-) = %d, %v", r, ok)
	}
	if r, ok := g.FindRow(2, 3, 0, RouteEquals("/projects/[id]")); !ok || r != 7 {
		t.Errorf("FindRow(route) = %d, %v", r, ok)
	}
	if c, ok := g.FindCol(3, 3, Equals("US-EMP-00-02")); !ok || c != 4 {
		t.Errorf("FindCol = %d, %v", c, ok)
	}
	if _, ok := g.FindCol(3, 3, Equals("US-EMP-99-99")); ok {
		t.Errorf("Expected FindCol to miss")
	}
	if r, ok := g.RouteHeaderRow(storymatrix.RoleSheetLayout()); !ok || r != 2 {
		t.Errorf("RouteHeaderRow = %d, %v", r, ok)
	}
}

func TestGridRoutes(t *testing.T) {
	g := sampleGrid()
	got := g.Routes(2, 2)
	want := []RouteCell{
		{Row: 4, Route: "/login"},
		{Row: 5, Route: "/dashboard"},
		{Row: 7, Route: "/projects/[id]"},
	}
	if len(got) != len(want) {
		t.Fatalf("Routes() = %+v, expected %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Routes()[%d] = %+v, expected %+v", i, got[i], want[i])
		}
	}
}

func TestLocate(t *testing.T) {
	g := sampleGrid()
	l := storymatrix.RoleSheetLayout()

	tests := []struct {
		route   string
		label   string
		wantRow int
		wantCol int
		wantOK  bool
	}{
		{"/dashboard", "US-EMP-00-02", 5, 4, true},
		{"login", "US-EMP-00-01", 4, 3, true},
		{"/dashboard", "US-EMP-05-05", 0, 0, false},
		{"/reports", "US-EMP-00-01", 0, 0, false},
	}

	for _, tt := range tests {
		r, c, ok := g.Locate(l, 3, tt.route, tt.label)
		if r != tt.wantRow || c != tt.wantCol || ok != tt.wantOK {
			t.Errorf("Locate(%q, %q) = %d, %d, %v, expected %d, %d, %v",
				tt.route, tt.label, r, c, ok, tt.wantRow, tt.wantCol, tt.wantOK)
		}
	}
}

func TestUsedRange(t *testing.T) {
	g := NewGrid([][]string{
		{},
		{"", "a"},
		{"", "", "", "b"},
	})
	rng, ok := g.UsedRange()
	if !ok {
		t.Fatalf("Expected a used range")
	}
	if rng.Ref() != "B2:D3" {
		t.Errorf("Expected B2:D3, got %s", rng.Ref())
	}

	if _, ok := NewGrid(nil).UsedRange(); ok {
		t.Errorf("Expected empty grid to have no used range")
	}
}
