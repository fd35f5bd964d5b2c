package matrix

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ukaji3/storymatrix-go/pkg/storymatrix"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/models"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/routes"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/sheet"
	"go.uber.org/zap"
)

var (
	documentStory = regexp.MustCompile(`\*\*US-(\w+)-\d+-\d+\*\*`)
	sheetStory    = regexp.MustCompile(`^US-\w+-\d+-\d+`)
)

// isMarked reports whether a cell holds the membership marker.
func isMarked(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), storymatrix.Marker)
}

// expectedRoles derives, from the role sheets, the roles of each route: a
// route belongs to a role when any story cell on its row is marked.
func (m *Matrix) expectedRoles() (map[string]map[string]bool, error) {
	l := storymatrix.RoleSheetLayout()
	out := make(map[string]map[string]bool)
	for _, role := range m.cat.Roles {
		s, ok, err := m.open(role.Sheet)
		if err != nil {
			return nil, err
		}
		if !ok {
			m.log.Warn("role sheet not found", zap.String("sheet", role.Sheet))
			continue
		}
		g := s.Grid()
		header, found := g.RouteHeaderRow(l)
		if !found {
			m.log.Warn("route header not found", zap.String("sheet", role.Sheet))
			continue
		}
		for _, c := range g.Routes(l.RouteCol, header+l.DataOffset) {
			if _, ok := g.FindCol(c.Row, l.FirstLabelCol, isMarked); !ok {
				continue
			}
			if out[c.Route] == nil {
				out[c.Route] = make(map[string]bool)
			}
			out[c.Route][role.Code] = true
		}
	}
	return out, nil
}

// VerifyRoleMatrix compares each role matrix row with the roles derived from
// the role sheets.
func (m *Matrix) VerifyRoleMatrix() (models.RoleReport, error) {
	var report models.RoleReport
	name := m.cat.Workbook.RoleMatrixSheet
	l := storymatrix.RoleMatrixLayout()

	s, ok, err := m.open(name)
	if err != nil {
		return report, err
	}
	if !ok {
		return report, fmt.Errorf("%w: %s", storymatrix.ErrSheetNotFound, name)
	}
	g := s.Grid()
	header, found := g.RouteHeaderRow(l)
	if !found {
		return report, storymatrix.NewSheetError(name, "verify", storymatrix.ErrHeaderNotFound)
	}
	cols := make(map[string]int)
	for _, code := range m.cat.RoleCodes() {
		if c, ok := g.FindCol(header, l.FirstLabelCol, sheet.Equals(code)); ok {
			cols[code] = c
		}
	}

	expected, err := m.expectedRoles()
	if err != nil {
		return report, err
	}

	for _, c := range g.Routes(l.RouteCol, header+l.DataOffset) {
		actual := make(map[string]bool)
		for code, col := range cols {
			if isMarked(g.At(c.Row, col)) {
				actual[code] = true
			}
		}
		want := expected[routes.Normalize(c.Route)]
		report.Total++

		missing := minus(want, actual)
		extra := minus(actual, want)
		if len(missing) == 0 && len(extra) == 0 {
			report.Correct++
			continue
		}
		report.Mismatches = append(report.Mismatches, models.RoleMismatch{
			Route:    c.Route,
			Expected: keys(want),
			Actual:   keys(actual),
			Missing:  missing,
			Extra:    extra,
		})
	}
	m.log.Info("verified role matrix",
		zap.Int("total", report.Total),
		zap.Int("correct", report.Correct))
	return report, nil
}

func keys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func minus(a, b map[string]bool) []string {
	var out []string
	for k := range a {
		if !b[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// CountDocumentStories counts bold story IDs (**US-<ROLE>-nn-nn**) in a BA
// document, keyed by role code.
func CountDocumentStories(doc []byte) map[string]int {
	counts := make(map[string]int)
	for _, m := range documentStory.FindAllSubmatch(doc, -1) {
		counts[string(m[1])]++
	}
	return counts
}

// VerifyStories compares the story counts of a BA document with the story
// ID cells of each role sheet, in role order.
func (m *Matrix) VerifyStories(doc []byte) ([]models.StoryCount, error) {
	l := storymatrix.RoleSheetLayout()
	docCounts := CountDocumentStories(doc)

	out := make([]models.StoryCount, 0, len(m.cat.Roles))
	for _, role := range m.cat.Roles {
		sc := models.StoryCount{Role: role.Code, Document: docCounts[role.Code]}
		s, ok, err := m.open(role.Sheet)
		if err != nil {
			return nil, err
		}
		if ok {
			g := s.Grid()
			row := storyRow(g, l)
			for c := l.FirstLabelCol; c <= g.MaxCol(); c++ {
				if sheetStory.MatchString(g.At(row, c)) {
					sc.Sheet++
				}
			}
		} else {
			m.log.Warn("role sheet not found", zap.String("sheet", role.Sheet))
		}
		out = append(out, sc)
	}
	return out, nil
}
