package matrix

import (
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/models"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/routes"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/sheet"
	"go.uber.org/zap"
)

// defaultStoryRow is the story ID row used when no row within the header
// range starts with a story ID.
const defaultStoryRow = 3

// storyRow finds the row carrying story IDs on a role sheet.
func storyRow(g sheet.Grid, l storymatrix.Layout) int {
	if r, ok := g.FindRow(l.FirstLabelCol, 1, l.HeaderSearchRows, sheet.HasPrefix(storymatrix.StoryPrefix)); ok {
		return r
	}
	return defaultStoryRow
}

// ApplyStories marks, for each catalog page, the intersection of the page's
// row and each of its stories' columns on the owning role sheet. When only is
// non-empty just those routes are mapped. Pages, stories or sheets that the
// workbook does not carry are skipped.
func (m *Matrix) ApplyStories(only ...string) ([]models.Mark, error) {
	l := storymatrix.RoleSheetLayout()
	filter := make(map[string]bool, len(only))
	for _, r := range only {
		filter[routes.Normalize(r)] = true
	}

	var marks []models.Mark
	for _, p := range m.cat.Pages {
		if len(filter) > 0 && !filter[p.Route] {
			continue
		}
		for _, id := range p.Stories {
			role, ok := m.cat.RoleForStory(id)
			if !ok {
				m.log.Debug("no role for story", zap.String("story", id))
				continue
			}
			s, ok, err := m.open(role.Sheet)
			if err != nil {
				return marks, err
			}
			if !ok {
				m.log.Debug("role sheet not found", zap.String("sheet", role.Sheet))
				continue
			}
			cell, ok, err := s.Mark(l, storyRow(s.Grid(), l), p.Route, id, storymatrix.Marker)
			if err != nil {
				return marks, storymatrix.NewSheetError(role.Sheet, "map", err)
			}
			if !ok {
				m.log.Debug("no cell for mapping",
					zap.String("sheet", role.Sheet),
					zap.String("route", p.Route),
					zap.String("story", id))
				continue
			}
			marks = append(marks, models.Mark{Sheet: role.Sheet, Route: p.Route, Target: id, Cell: cell})
		}
	}
	m.log.Info("mapped stories", zap.Int("marks", len(marks)))
	return marks, nil
}
