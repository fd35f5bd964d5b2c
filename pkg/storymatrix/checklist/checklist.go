// Package checklist builds the tester checklist workbook: an inventory of
// every page and the data-testid hooks its source exposes, grouped by module
// with suggested test actions.
package checklist

import (
	"fmt"
	"math"
	"strings"

	"github.com/ukaji3/storymatrix-go/pkg/storymatrix"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/catalog"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/models"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/routes"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/sheet"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Sheet names of the checklist workbook.
const (
	OverviewSheet   = "1. UI Checklist"
	TestIDSheet     = "2. TestId by File"
	StatisticsSheet = "Statistics"
)

// ReviewThreshold is the test ID count from which a page counts as done.
const ReviewThreshold = 5

const (
	statusDone     = "Done"
	statusReview   = "Need Review"
	statusUntested = "⬜ Chưa test"
	dynamicPrefix  = "[DYNAMIC] "
)

var (
	overviewHeaders = []string{
		"STT", "Nhóm/Module", "Tên UI", "Route/URL", "User Story ID",
		"Database Tables", "Role", "Số TestId", "Source File", "Trạng thái",
	}
	overviewWidths = []float64{5, 20, 25, 40, 30, 35, 15, 12, 55, 15}

	testIDHeaders = []string{"Source File", "Số lượng", "data-testid List"}
	testIDWidths  = []float64{60, 12, 150}

	detailHeaders = []string{
		"STT", "Page", "Route/URL", "data-testid", "Loại Element", "Mô tả",
		"User Story ID", "Database Tables", "Role",
		"Hành động Test", "Expected Result", "Priority",
		"Status", "Bug ID", "Tester", "Ngày test",
	}
	detailWidths = []float64{5, 22, 28, 35, 12, 35, 45, 40, 25, 20, 30, 10, 15, 10, 15, 12}
)

// Page is one discovered page with its catalog data and test IDs.
type Page struct {
	models.PageFile
	Name    string
	Module  string
	Stories []string
	Tables  []string
	Roles   []string
	TestIDs []models.TestID
}

// Status reports whether the page carries enough test IDs.
func (p Page) Status() string {
	if len(p.TestIDs) >= ReviewThreshold {
		return statusDone
	}
	return statusReview
}

// Collect reads the test IDs of each page file and joins the catalog data.
func Collect(files []models.PageFile, cat *catalog.Catalog) ([]Page, error) {
	pages := make([]Page, 0, len(files))
	for _, pf := range files {
		ids, err := routes.ReadTestIDs(pf.Path)
		if err != nil {
			return nil, err
		}
		p := Page{
			PageFile: pf,
			Name:     cat.Name(pf.Route),
			Module:   cat.Module(pf.Route),
			Roles:    cat.RoleAccess(pf.Route),
			TestIDs:  ids,
		}
		if cp, ok := cat.Page(pf.Route); ok {
			p.Stories = cp.Stories
			p.Tables = cp.Tables
		}
		pages = append(pages, p)
	}
	return pages, nil
}

type builder struct {
	f      *excelize.File
	styles *sheet.Styles
}

// Build writes the checklist workbook for pages. Module detail sheets follow
// the catalog's module order; the caller owns the returned file.
func Build(pages []Page, cat *catalog.Catalog, log *zap.Logger) (*excelize.File, error) {
	if log == nil {
		log = zap.NewNop()
	}
	f := excelize.NewFile()
	styles, err := sheet.NewStyles(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("register styles: %w", err)
	}
	b := &builder{f: f, styles: styles}

	type step struct {
		name string
		fn   func() error
	}
	steps := []step{
		{OverviewSheet, func() error { return b.overview(pages) }},
		{TestIDSheet, func() error { return b.testIDs(pages) }},
	}
	for _, m := range cat.Modules {
		steps = append(steps, step{m.Name, func() error { return b.module(m, pages) }})
	}
	steps = append(steps, step{StatisticsSheet, func() error { return b.statistics(pages, cat.Modules) }})

	for _, s := range steps {
		if err := s.fn(); err != nil {
			f.Close()
			return nil, storymatrix.NewSheetError(s.name, "generate", err)
		}
		log.Info("created sheet", zap.String("sheet", s.name))
	}
	return f, nil
}

func (b *builder) header(name string, row int, headers []string, widths []float64) error {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		if err := b.f.SetCellValue(name, cell, h); err != nil {
			return err
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(headers), row)
	if err := b.f.SetCellStyle(name, first, last, b.styles.Header); err != nil {
		return err
	}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := b.f.SetColWidth(name, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) row(name string, row int, values []interface{}, alt bool) error {
	first, _ := excelize.CoordinatesToCellName(1, row)
	if err := b.f.SetSheetRow(name, first, &values); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(values), row)
	style := b.styles.Cell
	if alt {
		style = b.styles.CellAlt
	}
	return b.f.SetCellStyle(name, first, last, style)
}

func join(v []string) string { return strings.Join(v, ", ") }

func (b *builder) overview(pages []Page) error {
	name := OverviewSheet
	if err := b.f.SetSheetName("Sheet1", name); err != nil {
		return err
	}
	if err := b.header(name, 1, overviewHeaders, overviewWidths); err != nil {
		return err
	}
	for i, p := range pages {
		values := []interface{}{
			i + 1, p.Module, p.Name, p.Route, join(p.Stories),
			join(p.Tables), join(p.Roles), len(p.TestIDs), p.Source, p.Status(),
		}
		if err := b.row(name, i+2, values, i%2 == 1); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) testIDs(pages []Page) error {
	name := TestIDSheet
	if _, err := b.f.NewSheet(name); err != nil {
		return err
	}
	if err := b.header(name, 1, testIDHeaders, testIDWidths); err != nil {
		return err
	}
	for i, p := range pages {
		ids := make([]string, len(p.TestIDs))
		for j, id := range p.TestIDs {
			ids[j] = id.Value
		}
		if err := b.row(name, i+2, []interface{}{p.Source, len(ids), join(ids)}, false); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) module(m models.Module, pages []Page) error {
	name := m.Name
	if _, err := b.f.NewSheet(name); err != nil {
		return err
	}
	last, _ := excelize.ColumnNumberToName(len(detailHeaders))
	if err := b.f.MergeCell(name, "A1", last+"1"); err != nil {
		return err
	}
	if err := b.f.SetCellValue(name, "A1", fmt.Sprintf("%s: %s", m.Name, m.Description)); err != nil {
		return err
	}
	if err := b.f.SetCellStyle(name, "A1", last+"1", b.styles.Epic); err != nil {
		return err
	}
	if err := b.header(name, 2, detailHeaders, detailWidths); err != nil {
		return err
	}

	byRoute := make(map[string][]Page)
	for _, p := range pages {
		byRoute[p.Route] = append(byRoute[p.Route], p)
	}

	row, n := 3, 1
	for _, route := range m.Routes {
		for _, p := range byRoute[route] {
			for _, id := range p.TestIDs {
				kind := ElementType(id.Value)
				display := id.Value
				if id.Dynamic {
					display = dynamicPrefix + id.Value
				}
				values := []interface{}{
					n, p.Name, p.Route, display, kind, Describe(id.Value, kind),
					join(p.Stories), join(p.Tables), join(p.Roles),
					Action(kind), Expected(kind), Priority(kind),
					statusUntested, "", "", "",
				}
				if err := b.row(name, row, values, n%2 == 0); err != nil {
					return err
				}
				row++
				n++
			}
		}
	}
	return b.f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		YSplit:      2,
		TopLeftCell: "A3",
		ActivePane:  "bottomLeft",
	})
}

// Stats summarizes the checklist.
type Stats struct {
	Pages   int
	TestIDs int
	// Average is test IDs per page rounded to one decimal.
	Average float64
	// ByModule counts test IDs per module, in module order.
	ByModule []ModuleCount
}

// ModuleCount is the test ID count of one module.
type ModuleCount struct {
	Module  string
	TestIDs int
}

// Summarize computes checklist statistics.
func Summarize(pages []Page, modules []models.Module) Stats {
	s := Stats{Pages: len(pages)}
	perRoute := make(map[string]int)
	for _, p := range pages {
		s.TestIDs += len(p.TestIDs)
		perRoute[p.Route] += len(p.TestIDs)
	}
	if s.Pages > 0 {
		s.Average = math.Round(float64(s.TestIDs)/float64(s.Pages)*10) / 10
	}
	for _, m := range modules {
		mc := ModuleCount{Module: m.Name}
		for _, r := range m.Routes {
			mc.TestIDs += perRoute[r]
		}
		s.ByModule = append(s.ByModule, mc)
	}
	return s
}

func (b *builder) statistics(pages []Page, modules []models.Module) error {
	name := StatisticsSheet
	if _, err := b.f.NewSheet(name); err != nil {
		return err
	}
	if err := b.f.MergeCell(name, "A1", "D1"); err != nil {
		return err
	}
	if err := b.f.SetCellValue(name, "A1", "📊 Thống kê UI Checklist"); err != nil {
		return err
	}
	if err := b.f.SetCellStyle(name, "A1", "D1", b.styles.Epic); err != nil {
		return err
	}

	st := Summarize(pages, modules)
	rows := [][]interface{}{
		{"Tổng số Pages", st.Pages},
		{"Tổng số data-testid", st.TestIDs},
		{"Trung bình testid/page", st.Average},
		{"", ""},
		{"Theo Module:", "Số testid"},
	}
	row := 3
	for _, values := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := b.f.SetSheetRow(name, cell, &values); err != nil {
			return err
		}
		if err := b.f.SetCellStyle(name, cell, cell, b.styles.Bold); err != nil {
			return err
		}
		row++
	}
	for _, mc := range st.ByModule {
		values := []interface{}{mc.Module, mc.TestIDs}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := b.f.SetSheetRow(name, cell, &values); err != nil {
			return err
		}
		row++
	}
	if err := b.f.SetColWidth(name, "A", "A", 25); err != nil {
		return err
	}
	return b.f.SetColWidth(name, "B", "B", 15)
}
