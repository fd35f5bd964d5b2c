// Package markdown renders workbook snapshots as markdown tables.
package markdown

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/models"
)

// Title heads every export.
const Title = "# UI-STORY MATRIX CHECKLIST"

var pipe = strings.NewReplacer("|", `\|`)

// Write renders every sheet of wb in workbook order. Each sheet becomes a
// table whose header is the sheet's first non-empty row; shorter rows are
// padded to the sheet width. Sheets without data get a heading only.
func Write(w io.Writer, wb *models.WorkbookData, source string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", Title)
	fmt.Fprintf(&b, "**Source:** `%s`\n\n", source)

	for _, s := range wb.Sheets {
		fmt.Fprintf(&b, "## SHEET: %s\n\n", s.Name)
		if len(s.Rows) == 0 {
			continue
		}
		width := max(s.Width, 1)

		writeRow(&b, s.Rows[0].Cells, width)
		sep := make([]string, width)
		for i := range sep {
			sep[i] = "---"
		}
		b.WriteString("| " + strings.Join(sep, " | ") + " |\n")
		for _, row := range s.Rows[1:] {
			writeRow(&b, row.Cells, width)
		}
		b.WriteString("\n---\n\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRow(b *strings.Builder, cells []string, width int) {
	out := make([]string, width)
	for i := 0; i < width && i < len(cells); i++ {
		out[i] = pipe.Replace(cells[i])
	}
	b.WriteString("| " + strings.Join(out, " | ") + " |\n")
}
