package storymatrix

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

var newlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Clean normalizes a cell value for comparison and display: newlines become
// spaces, the text is NFC-composed and surrounding whitespace is trimmed.
func Clean(v string) string {
	return strings.TrimSpace(norm.NFC.String(newlines.Replace(v)))
}

// OpenWorkbook opens an xlsx file, reporting ErrFileNotFound for a missing path.
func OpenWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return f, nil
}

// Load reads every sheet of an xlsx file into a snapshot.
func Load(path string) (*models.WorkbookData, error) {
	f, err := OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Snapshot(f, filepath.Base(path))
}

// Snapshot reads every sheet of an open workbook in tab order.
func Snapshot(f *excelize.File, bookName string) (*models.WorkbookData, error) {
	wb := &models.WorkbookData{BookName: bookName}
	for _, name := range f.GetSheetList() {
		sheet, err := ReadSheet(f, name)
		if err != nil {
			return nil, NewSheetError(name, "read", err)
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return wb, nil
}

// ReadSheet extracts the non-empty rows of a sheet with cleaned cell text.
func ReadSheet(f *excelize.File, sheetName string) (models.SheetData, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.SheetData{}, err
	}

	data := models.SheetData{Name: sheetName}
	for rowIdx, row := range rows {
		cells := make([]string, len(row))
		last := -1
		for colIdx, v := range row {
			cells[colIdx] = Clean(v)
			if cells[colIdx] != "" {
				last = colIdx
			}
		}
		if last < 0 {
			continue
		}
		cells = cells[:last+1]
		if len(cells) > data.Width {
			data.Width = len(cells)
		}
		data.Rows = append(data.Rows, models.CellRow{
			R:     rowIdx + 1, // 1-based row index
			Cells: cells,
		})
	}
	return data, nil
}
