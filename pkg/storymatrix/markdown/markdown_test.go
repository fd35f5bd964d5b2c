package markdown

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/models"
	"github.com/xuri/excelize/v2"
)

func TestWrite(t *testing.T) {
	wb := &models.WorkbookData{Sheets: []models.SheetData{
		{
			Name:  "1. EMP",
			Width: 3,
			Rows: []models.CellRow{
				{R: 2, Cells: []string{"Tên giao diện", "Route/URL", "US-EMP-00-01"}},
				{R: 4, Cells: []string{"Đăng nhập", "/login"}},
				{R: 5, Cells: []string{"a|b", "/x", "X"}},
			},
		},
		{Name: "Empty"},
	}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, wb, "docs/UI_STORY_MATRIX.xlsx"))

	want := "# UI-STORY MATRIX CHECKLIST\n\n" +
		"**Source:** `docs/UI_STORY_MATRIX.xlsx`\n\n" +
		"## SHEET: 1. EMP\n\n" +
		"| Tên giao diện | Route/URL | US-EMP-00-01 |\n" +
		"| --- | --- | --- |\n" +
		"| Đăng nhập | /login |  |\n" +
		"| a\\|b | /x | X |\n" +
		"\n---\n\n" +
		"## SHEET: Empty\n\n"
	assert.Equal(t, want, buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteError(t *testing.T) {
	err := Write(failWriter{}, &models.WorkbookData{}, "x.xlsx")
	assert.EqualError(t, err, "disk full")
}

func TestWriteFromWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Route/URL"))
	require.NoError(t, f.SetCellValue("Sheet1", "A3", "/tasks\n/new"))

	wb, err := storymatrix.Snapshot(f, "book.xlsx")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, wb, "book.xlsx"))
	assert.Contains(t, buf.String(), "| Route/URL |\n| --- |\n| /tasks /new |\n")
}
