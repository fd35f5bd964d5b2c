package sheet

import (
	"fmt"
	"sort"

	"github.com/ukaji3/storymatrix-go/pkg/storymatrix"
	"github.com/xuri/excelize/v2"
)

// Sheet couples a workbook sheet with a cached Grid of its text. Writes made
// through Sheet keep the cache current.
type Sheet struct {
	f    *excelize.File
	name string
	grid Grid
}

// Exists reports whether the workbook has a sheet with the given name.
func Exists(f *excelize.File, name string) bool {
	idx, err := f.GetSheetIndex(name)
	return err == nil && idx >= 0
}

// Open loads a sheet, returning storymatrix.ErrSheetNotFound when it is absent.
func Open(f *excelize.File, name string) (*Sheet, error) {
	if !Exists(f, name) {
		return nil, fmt.Errorf("%w: %s", storymatrix.ErrSheetNotFound, name)
	}
	s := &Sheet{f: f, name: name}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the sheet name.
func (s *Sheet) Name() string { return s.name }

// Grid returns the cached cell text.
func (s *Sheet) Grid() Grid { return s.grid }

// Refresh re-reads the sheet into the cache.
func (s *Sheet) Refresh() error {
	g, err := ReadGrid(s.f, s.name)
	if err != nil {
		return storymatrix.NewSheetError(s.name, "read", err)
	}
	s.grid = g
	return nil
}

// Set writes a value at (row, col).
func (s *Sheet) Set(row, col int, v interface{}) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	if err := s.f.SetCellValue(s.name, cell, v); err != nil {
		return "", err
	}
	s.grid.set(row, col, fmt.Sprint(v))
	return cell, nil
}

// Mark writes value into the cell at the intersection of the column labelled
// label on headerRow and the row holding route. When either lookup misses
// nothing is written and ok is false; this is not an error.
func (s *Sheet) Mark(l storymatrix.Layout, headerRow int, route, label, value string) (cell string, ok bool, err error) {
	row, col, found := s.grid.Locate(l, headerRow, route, label)
	if !found {
		return "", false, nil
	}
	cell, err = s.Set(row, col, value)
	if err != nil {
		return "", false, err
	}
	return cell, true, nil
}

// DeleteRows removes the given rows, bottom-up so earlier indexes stay valid.
func (s *Sheet) DeleteRows(rows []int) error {
	if len(rows) == 0 {
		return nil
	}
	sorted := append([]int(nil), rows...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, r := range sorted {
		if err := s.f.RemoveRow(s.name, r); err != nil {
			return fmt.Errorf("remove row %d: %w", r, err)
		}
	}
	return s.Refresh()
}

// WriteRow writes values into row starting at column A. Nil values leave a
// cell untouched.
func (s *Sheet) WriteRow(row int, values ...interface{}) error {
	for i, v := range values {
		if v == nil {
			continue
		}
		if _, err := s.Set(row, i+1, v); err != nil {
			return err
		}
	}
	if s.grid.MaxRow() < row {
		s.grid.set(row, 1, "")
	}
	return nil
}

// StyleRow applies a style to columns fromCol..toCol of row.
func (s *Sheet) StyleRow(row, fromCol, toCol, styleID int) error {
	if toCol < fromCol {
		return nil
	}
	start, err := excelize.CoordinatesToCellName(fromCol, row)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(toCol, row)
	if err != nil {
		return err
	}
	return s.f.SetCellStyle(s.name, start, end, styleID)
}
