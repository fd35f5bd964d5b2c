package matrix

import (
	"fmt"

	"github.com/ukaji3/storymatrix-go/pkg/storymatrix"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/catalog"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/models"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/sheet"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	descriptionText = "File này thể hiện mối quan hệ giữa các Giao diện (UI) và User Stories theo từng vai trò"
	roleMatrixTitle = "Ma trận phân quyền theo Route"
)

var guideLines = []string{
	"- Trục X (hàng ngang): Tên Epic và các User Story ID",
	"- Trục Y (cột dọc): Tên giao diện và Route/URL",
	"- Ô có dấu 'X': Giao diện đó thuộc User Story tương ứng",
}

// generator writes a fresh workbook from catalog data.
type generator struct {
	f      *excelize.File
	cat    *catalog.Catalog
	styles *sheet.Styles
}

// Generate builds the story matrix workbook: a summary sheet, one sheet per
// role and the role matrix. The caller owns the returned file.
func Generate(cat *catalog.Catalog, log *zap.Logger) (*excelize.File, error) {
	if log == nil {
		log = zap.NewNop()
	}
	f := excelize.NewFile()
	styles, err := sheet.NewStyles(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("register styles: %w", err)
	}
	g := &generator{f: f, cat: cat, styles: styles}

	if err := g.summary(); err != nil {
		f.Close()
		return nil, storymatrix.NewSheetError(cat.Workbook.SummarySheet, "generate", err)
	}
	log.Info("created sheet", zap.String("sheet", cat.Workbook.SummarySheet))

	for _, role := range cat.Roles {
		if err := g.roleSheet(role); err != nil {
			f.Close()
			return nil, storymatrix.NewSheetError(role.Sheet, "generate", err)
		}
		log.Info("created sheet", zap.String("sheet", role.Sheet), zap.Int("stories", len(role.Stories())))
	}

	if err := g.roleMatrix(); err != nil {
		f.Close()
		return nil, storymatrix.NewSheetError(cat.Workbook.RoleMatrixSheet, "generate", err)
	}
	log.Info("created sheet", zap.String("sheet", cat.Workbook.RoleMatrixSheet))
	return f, nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func (g *generator) set(sheetName string, col, row int, v interface{}, style int) error {
	cell := cellName(col, row)
	if err := g.f.SetCellValue(sheetName, cell, v); err != nil {
		return err
	}
	if style == 0 {
		return nil
	}
	return g.f.SetCellStyle(sheetName, cell, cell, style)
}

func (g *generator) summary() error {
	name := g.cat.Workbook.SummarySheet
	if err := g.f.SetSheetName("Sheet1", name); err != nil {
		return err
	}
	if err := g.f.MergeCell(name, "A1", "E1"); err != nil {
		return err
	}
	if err := g.set(name, 1, 1, g.cat.Workbook.Title, g.styles.Title); err != nil {
		return err
	}
	if err := g.f.SetRowHeight(name, 1, 30); err != nil {
		return err
	}

	if err := g.set(name, 1, 3, "Mô tả:", g.styles.Bold); err != nil {
		return err
	}
	if err := g.set(name, 2, 3, descriptionText, 0); err != nil {
		return err
	}
	if err := g.set(name, 1, 5, "Hướng dẫn:", g.styles.Bold); err != nil {
		return err
	}
	for i, line := range guideLines {
		if err := g.set(name, 1, 6+i, line, 0); err != nil {
			return err
		}
	}

	if err := g.set(name, 1, 10, "Các Sheet:", g.styles.Bold); err != nil {
		return err
	}
	row := 11
	for _, role := range g.cat.Roles {
		values := []interface{}{
			role.Sheet,
			role.Name,
			fmt.Sprintf("%d Epics", len(role.Epics)),
			fmt.Sprintf("%d Stories", len(role.Stories())),
		}
		if err := g.f.SetSheetRow(name, cellName(1, row), &values); err != nil {
			return err
		}
		row++
	}

	if err := g.set(name, 1, row+1, "Thống kê:", g.styles.Bold); err != nil {
		return err
	}
	if err := g.set(name, 1, row+2, g.cat.Workbook.TotalPagesLabel+":", 0); err != nil {
		return err
	}
	if err := g.set(name, 2, row+2, len(g.cat.Pages), 0); err != nil {
		return err
	}
	if err := g.set(name, 1, row+3, g.cat.Workbook.TotalStoriesLabel+":", 0); err != nil {
		return err
	}
	if err := g.set(name, 2, row+3, g.cat.StoryCount(), 0); err != nil {
		return err
	}

	for col, width := range map[string]float64{"A": 20, "B": 50, "C": 15, "D": 15} {
		if err := g.f.SetColWidth(name, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

func (g *generator) roleSheet(role models.Role) error {
	name := role.Sheet
	if _, err := g.f.NewSheet(name); err != nil {
		return err
	}
	l := storymatrix.RoleSheetLayout()
	stories := role.Stories()
	lastCol := max(l.FirstLabelCol+len(stories)-1, l.RouteCol)

	// Row 1: title.
	if err := g.f.MergeCell(name, cellName(1, 1), cellName(lastCol, 1)); err != nil {
		return err
	}
	if err := g.set(name, 1, 1, fmt.Sprintf("%s: %s", role.Sheet, role.Name), g.styles.Title); err != nil {
		return err
	}

	// Row 2: column labels and epic spans.
	if err := g.set(name, l.NameCol, 2, storymatrix.NameHeader, g.styles.Epic); err != nil {
		return err
	}
	if err := g.set(name, l.RouteCol, 2, storymatrix.RouteHeader, g.styles.Epic); err != nil {
		return err
	}
	col := l.FirstLabelCol
	for _, epic := range role.Epics {
		if len(epic.Stories) == 0 {
			continue
		}
		end := col + len(epic.Stories) - 1
		if end > col {
			if err := g.f.MergeCell(name, cellName(col, 2), cellName(end, 2)); err != nil {
				return err
			}
		}
		if err := g.set(name, col, 2, epic.Name, 0); err != nil {
			return err
		}
		if err := g.f.SetCellStyle(name, cellName(col, 2), cellName(end, 2), g.styles.Epic); err != nil {
			return err
		}
		col = end + 1
	}

	// Row 3: story IDs.
	if err := g.f.SetCellStyle(name, cellName(1, 3), cellName(l.RouteCol, 3), g.styles.StoryBlank); err != nil {
		return err
	}
	for i, id := range stories {
		if err := g.set(name, l.FirstLabelCol+i, 3, id, g.styles.Story); err != nil {
			return err
		}
	}

	// Data rows.
	for i, p := range g.cat.Pages {
		row := 4 + i
		cellStyle, centerStyle := g.styles.Cell, g.styles.Center
		if i%2 == 1 {
			cellStyle, centerStyle = g.styles.CellAlt, g.styles.CenterAlt
		}
		if err := g.set(name, l.NameCol, row, p.Name, cellStyle); err != nil {
			return err
		}
		if err := g.set(name, l.RouteCol, row, p.Route, cellStyle); err != nil {
			return err
		}
		owned := make(map[string]bool, len(p.Stories))
		for _, id := range p.Stories {
			owned[id] = true
		}
		for j, id := range stories {
			c := l.FirstLabelCol + j
			if owned[id] {
				if err := g.set(name, c, row, storymatrix.Marker, g.styles.Check); err != nil {
					return err
				}
				continue
			}
			if err := g.f.SetCellStyle(name, cellName(c, row), cellName(c, row), centerStyle); err != nil {
				return err
			}
		}
	}

	if err := g.f.SetColWidth(name, "A", "A", 25); err != nil {
		return err
	}
	if err := g.f.SetColWidth(name, "B", "B", 35); err != nil {
		return err
	}
	if len(stories) > 0 {
		first, _ := excelize.ColumnNumberToName(l.FirstLabelCol)
		last, _ := excelize.ColumnNumberToName(lastCol)
		if err := g.f.SetColWidth(name, first, last, 5); err != nil {
			return err
		}
	}
	if err := g.f.SetRowHeight(name, 2, 60); err != nil {
		return err
	}
	if err := g.f.SetRowHeight(name, 3, 100); err != nil {
		return err
	}
	return g.f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		XSplit:      2,
		YSplit:      3,
		TopLeftCell: "C4",
		ActivePane:  "bottomRight",
	})
}

// roleMatrix writes one row per page with a marker under each role owning
// any of the page's stories, matching what the role sheets show.
func (g *generator) roleMatrix() error {
	name := g.cat.Workbook.RoleMatrixSheet
	if _, err := g.f.NewSheet(name); err != nil {
		return err
	}
	l := storymatrix.RoleMatrixLayout()
	codes := g.cat.RoleCodes()
	lastCol := l.FirstLabelCol + len(codes) - 1

	if err := g.f.MergeCell(name, cellName(1, 1), cellName(max(lastCol, l.RouteCol), 1)); err != nil {
		return err
	}
	if err := g.set(name, 1, 1, roleMatrixTitle, g.styles.Title); err != nil {
		return err
	}

	header := []interface{}{storymatrix.NameHeader, storymatrix.RouteHeader}
	for _, c := range codes {
		header = append(header, c)
	}
	if err := g.f.SetSheetRow(name, "A2", &header); err != nil {
		return err
	}
	if err := g.f.SetCellStyle(name, "A2", cellName(max(lastCol, l.RouteCol), 2), g.styles.Header); err != nil {
		return err
	}

	owners := make(map[string][]string)
	for _, role := range g.cat.Roles {
		for _, id := range role.Stories() {
			owners[id] = append(owners[id], role.Code)
		}
	}
	for i, p := range g.cat.Pages {
		row := 3 + i
		if err := g.set(name, l.NameCol, row, p.Name, g.styles.Cell); err != nil {
			return err
		}
		if err := g.set(name, l.RouteCol, row, p.Route, g.styles.Cell); err != nil {
			return err
		}
		access := make(map[string]bool)
		for _, id := range p.Stories {
			for _, code := range owners[id] {
				access[code] = true
			}
		}
		for j, code := range codes {
			col := l.FirstLabelCol + j
			if access[code] {
				if err := g.set(name, col, row, storymatrix.Marker, g.styles.Check); err != nil {
					return err
				}
				continue
			}
			c := cellName(col, row)
			if err := g.f.SetCellStyle(name, c, c, g.styles.Center); err != nil {
				return err
			}
		}
	}

	if err := g.f.SetColWidth(name, "A", "A", 30); err != nil {
		return err
	}
	if err := g.f.SetColWidth(name, "B", "B", 40); err != nil {
		return err
	}
	return g.f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		XSplit:      2,
		YSplit:      2,
		TopLeftCell: "C3",
		ActivePane:  "bottomRight",
	})
}
