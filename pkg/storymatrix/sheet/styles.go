package sheet

import (
	"github.com/xuri/excelize/v2"
)

// Fill colors used across generated workbooks.
const (
	HeaderColor = "4472C4"
	EpicColor   = "5B9BD5"
	StoryColor  = "BDD7EE"
	CheckColor  = "C6EFCE"
	AltRowColor = "F2F2F2"
	CheckFont   = "006100"
)

// Styles holds style IDs registered on one workbook.
type Styles struct {
	Title      int // white bold 14pt on header blue
	Header     int // white bold on header blue, wrapped
	Epic       int // white bold on epic blue, wrapped
	Story      int // bold on story blue, rotated 90 degrees
	StoryBlank int
	Cell       int // thin border
	CellAlt    int // thin border, alternate row fill
	Center     int
	CenterAlt  int
	Check      int // bold green X on green fill
	Bold       int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func solid(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

// NewStyles registers the shared styles on f.
func NewStyles(f *excelize.File) (*Styles, error) {
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	wrapped := &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}

	s := &Styles{}
	defs := []struct {
		id    *int
		style *excelize.Style
	}{
		{&s.Title, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 14},
			Fill:      solid(HeaderColor),
			Alignment: center,
		}},
		{&s.Header, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill:      solid(HeaderColor),
			Alignment: wrapped,
			Border:    thinBorder(),
		}},
		{&s.Epic, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill:      solid(EpicColor),
			Alignment: wrapped,
			Border:    thinBorder(),
		}},
		{&s.Story, &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Fill:      solid(StoryColor),
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", TextRotation: 90},
			Border:    thinBorder(),
		}},
		{&s.StoryBlank, &excelize.Style{
			Fill:   solid(StoryColor),
			Border: thinBorder(),
		}},
		{&s.Cell, &excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
			Border:    thinBorder(),
		}},
		{&s.CellAlt, &excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
			Fill:      solid(AltRowColor),
			Border:    thinBorder(),
		}},
		{&s.Center, &excelize.Style{
			Alignment: center,
			Border:    thinBorder(),
		}},
		{&s.CenterAlt, &excelize.Style{
			Alignment: center,
			Fill:      solid(AltRowColor),
			Border:    thinBorder(),
		}},
		{&s.Check, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: CheckFont},
			Fill:      solid(CheckColor),
			Alignment: center,
			Border:    thinBorder(),
		}},
		{&s.Bold, &excelize.Style{
			Font: &excelize.Font{Bold: true},
		}},
	}

	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return nil, err
		}
		*d.id = id
	}
	return s, nil
}
