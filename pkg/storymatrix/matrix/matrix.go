// Package matrix maintains the UI story matrix workbook: it generates the
// workbook from the catalog, keeps its route rows in step with the source
// tree, maps pages to stories and checks the role matrix.
package matrix

import (
	"errors"
	"fmt"

	"github.com/ukaji3/storymatrix-go/pkg/storymatrix"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/catalog"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/routes"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/sheet"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Matrix operates on one open story matrix workbook.
type Matrix struct {
	f      *excelize.File
	cat    *catalog.Catalog
	log    *zap.Logger
	styles *sheet.Styles
	sheets map[string]*sheet.Sheet
}

// New wraps an open workbook. A nil logger discards output.
func New(f *excelize.File, cat *catalog.Catalog, log *zap.Logger) (*Matrix, error) {
	if log == nil {
		log = zap.NewNop()
	}
	styles, err := sheet.NewStyles(f)
	if err != nil {
		return nil, fmt.Errorf("register styles: %w", err)
	}
	return &Matrix{
		f:      f,
		cat:    cat,
		log:    log,
		styles: styles,
		sheets: make(map[string]*sheet.Sheet),
	}, nil
}

// File returns the underlying workbook.
func (m *Matrix) File() *excelize.File { return m.f }

// open returns the cached sheet. The second result is false when the sheet
// does not exist.
func (m *Matrix) open(name string) (*sheet.Sheet, bool, error) {
	if s, ok := m.sheets[name]; ok {
		return s, true, nil
	}
	s, err := sheet.Open(m.f, name)
	if errors.Is(err, storymatrix.ErrSheetNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	m.sheets[name] = s
	return s, true, nil
}

// roleSheets resolves names to role sheets, defaulting to every role in the
// catalog.
func (m *Matrix) roleSheets(names []string) []string {
	if len(names) == 0 {
		return m.cat.RoleSheets()
	}
	return names
}

// RecordedRoutes returns the routes recorded on the named sheets, or on every
// role sheet when names is empty. Missing sheets and sheets without a route
// header are skipped.
func (m *Matrix) RecordedRoutes(names ...string) ([]string, error) {
	l := storymatrix.RoleSheetLayout()
	var out []string
	for _, name := range m.roleSheets(names) {
		s, ok, err := m.open(name)
		if err != nil {
			return nil, err
		}
		if !ok {
			m.log.Warn("sheet not found", zap.String("sheet", name))
			continue
		}
		header, found := s.Grid().RouteHeaderRow(l)
		if !found {
			m.log.Warn("route header not found", zap.String("sheet", name))
			continue
		}
		cells := s.Grid().Routes(l.RouteCol, header+1)
		m.log.Debug("read routes", zap.String("sheet", name), zap.Int("count", len(cells)))
		for _, c := range cells {
			out = append(out, c.Route)
		}
	}
	return routes.Unique(out), nil
}
