package matrix

import (
	"fmt"

	"github.com/ukaji3/storymatrix-go/pkg/storymatrix"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/models"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/reconcile"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/routes"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/sheet"
	"go.uber.org/zap"
)

// summaryRows bounds the summary-sheet search for the page count label.
const (
	summaryFirstRow = 15
	summaryLastRow  = 29
)

// fillFunc decorates a freshly appended row.
type fillFunc func(s *sheet.Sheet, headerRow, row int, route string) error

// SyncRoutes makes every role sheet list exactly the source routes: rows
// whose route is gone are deleted and missing routes are appended.
func (m *Matrix) SyncRoutes(source []string, names ...string) ([]models.SyncResult, error) {
	l := storymatrix.RoleSheetLayout()
	var results []models.SyncResult
	for _, name := range m.roleSheets(names) {
		res, err := m.syncSheet(name, l, source, nil)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// SyncRoleMatrix applies the same reconciliation to the role matrix sheet and
// marks the catalog's role access on appended rows.
func (m *Matrix) SyncRoleMatrix(source []string) (models.SyncResult, error) {
	return m.syncSheet(m.cat.Workbook.RoleMatrixSheet, storymatrix.RoleMatrixLayout(), source, m.fillRoles)
}

func (m *Matrix) syncSheet(name string, l storymatrix.Layout, source []string, fill fillFunc) (models.SyncResult, error) {
	res := models.SyncResult{Sheet: name}
	log := m.log.With(zap.String("sheet", name))

	s, ok, err := m.open(name)
	if err != nil {
		return res, err
	}
	if !ok {
		log.Warn("sheet not found, skipping")
		res.Skipped = true
		return res, nil
	}
	header, found := s.Grid().RouteHeaderRow(l)
	if !found {
		log.Warn("route header not found, skipping")
		res.Skipped = true
		return res, nil
	}
	start := header + l.DataOffset

	want := reconcile.NewSet(source)
	have := make(map[string]bool)
	var stale []int
	for _, c := range s.Grid().Routes(l.RouteCol, start) {
		if !want.Has(c.Route) {
			stale = append(stale, c.Row)
			res.Deleted = append(res.Deleted, c.Route)
			continue
		}
		have[c.Route] = true
	}
	if err := s.DeleteRows(stale); err != nil {
		return res, storymatrix.NewSheetError(name, "sync", err)
	}
	res.Kept = len(have)

	lastCol := l.RouteCol
	if used, ok := s.Grid().UsedRange(); ok {
		lastCol = max(used.C2, l.RouteCol)
		log.Debug("sheet bounds", zap.String("used", used.Ref()))
	}
	for _, route := range routes.Unique(source) {
		if have[route] {
			continue
		}
		row := max(s.Grid().MaxRow()+1, start)
		if err := s.WriteRow(row, m.cat.Name(route), route); err != nil {
			return res, storymatrix.NewSheetError(name, "sync", err)
		}
		if err := s.StyleRow(row, 1, l.RouteCol, m.styles.Cell); err != nil {
			return res, err
		}
		if err := s.StyleRow(row, l.RouteCol+1, lastCol, m.styles.Center); err != nil {
			return res, err
		}
		if fill != nil {
			if err := fill(s, header, row, route); err != nil {
				return res, storymatrix.NewSheetError(name, "sync", err)
			}
		}
		res.Added = append(res.Added, route)
	}

	log.Info("synced routes",
		zap.Int("deleted", len(res.Deleted)),
		zap.Int("added", len(res.Added)),
		zap.Int("kept", res.Kept))
	return res, nil
}

// fillRoles writes the marker into each role column the catalog grants for
// route.
func (m *Matrix) fillRoles(s *sheet.Sheet, headerRow, row int, route string) error {
	l := storymatrix.RoleMatrixLayout()
	for _, code := range m.cat.RoleAccess(route) {
		col, ok := s.Grid().FindCol(headerRow, l.FirstLabelCol, sheet.Equals(code))
		if !ok {
			m.log.Debug("role column not found", zap.String("role", code))
			continue
		}
		if _, err := s.Set(row, col, storymatrix.Marker); err != nil {
			return err
		}
	}
	return nil
}

// UpdateSummary writes count next to the summary sheet's page count label.
// It reports false when the sheet or label is absent.
func (m *Matrix) UpdateSummary(count int) (bool, error) {
	name := m.cat.Workbook.SummarySheet
	s, ok, err := m.open(name)
	if err != nil {
		return false, err
	}
	if !ok {
		m.log.Warn("summary sheet not found", zap.String("sheet", name))
		return false, nil
	}
	row, found := s.Grid().FindRow(1, summaryFirstRow, summaryLastRow, sheet.Contains(m.cat.Workbook.TotalPagesLabel))
	if !found {
		m.log.Warn("page count label not found", zap.String("sheet", name))
		return false, nil
	}
	cell, err := s.Set(row, 2, count)
	if err != nil {
		return false, fmt.Errorf("update summary: %w", err)
	}
	m.log.Info("updated page count", zap.String("cell", cell), zap.Int("count", count))
	return true, nil
}
