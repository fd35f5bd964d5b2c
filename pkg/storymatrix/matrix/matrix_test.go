package matrix

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/catalog"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/models"
	"github.com/xuri/excelize/v2"
)

const testCatalog = `
workbook:
  title: "MATRIX"
  summary_sheet: "0. Tổng quan"
  role_matrix_sheet: "6. Role Matrix"
  total_pages_label: "Tổng số giao diện"
  total_stories_label: "Tổng số User Stories"
roles:
  - sheet: "1. EMP"
    code: EMP
    name: "Employee"
    epics:
      - name: "Auth"
        stories: ["US-EMP-00-01", "US-EMP-00-02"]
      - name: "Tasks"
        stories: ["US-EMP-01-01"]
  - sheet: "2. PM (MNG)"
    code: MNG
    name: "Manager"
    epics:
      - name: "Projects"
        stories: ["US-MNG-00-01"]
pages:
  - route: /login
    name: "Đăng nhập"
    stories: ["US-EMP-00-01", "US-MNG-00-01"]
  - route: /tasks
    name: "Tasks"
    stories: ["US-EMP-01-01"]
  - route: /projects
    name: "Projects"
    stories: ["US-MNG-00-01"]
  - route: /admin
    name: "Admin"
    stories: ["US-XYZ-00-01"]
`

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(testCatalog))
	require.NoError(t, err)
	return c
}

// generated returns a Matrix over a workbook freshly generated from cat.
func generated(t *testing.T, cat *catalog.Catalog) *Matrix {
	t.Helper()
	f, err := Generate(cat, nil)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	m, err := New(f, cat, nil)
	require.NoError(t, err)
	return m
}

func cell(t *testing.T, f *excelize.File, sheetName, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheetName, ref)
	require.NoError(t, err)
	return v
}

func TestGenerate(t *testing.T) {
	cat := newCatalog(t)
	f := generated(t, cat).File()

	assert.Equal(t, []string{"0. Tổng quan", "1. EMP", "2. PM (MNG)", "6. Role Matrix"}, f.GetSheetList())

	assert.Equal(t, "1. EMP: Employee", cell(t, f, "1. EMP", "A1"))
	assert.Equal(t, storymatrix.NameHeader, cell(t, f, "1. EMP", "A2"))
	assert.Equal(t, storymatrix.RouteHeader, cell(t, f, "1. EMP", "B2"))
	assert.Equal(t, "Auth", cell(t, f, "1. EMP", "C2"))
	assert.Equal(t, "Tasks", cell(t, f, "1. EMP", "E2"))
	assert.Equal(t, "US-EMP-00-02", cell(t, f, "1. EMP", "D3"))
	assert.Equal(t, "/login", cell(t, f, "1. EMP", "B4"))
	assert.Equal(t, "X", cell(t, f, "1. EMP", "C4"))
	assert.Equal(t, "", cell(t, f, "1. EMP", "D4"))
	assert.Equal(t, "X", cell(t, f, "1. EMP", "E5"))

	assert.Equal(t, "EMP", cell(t, f, "6. Role Matrix", "C2"))
	assert.Equal(t, "X", cell(t, f, "6. Role Matrix", "D3"))
	assert.Equal(t, "", cell(t, f, "6. Role Matrix", "C5"))

	// Role rows start at 11; with two roles the page count lands on 15.
	assert.Equal(t, "Tổng số giao diện:", cell(t, f, "0. Tổng quan", "A15"))
	assert.Equal(t, "4", cell(t, f, "0. Tổng quan", "B15"))
	assert.Equal(t, "4", cell(t, f, "0. Tổng quan", "B16"))

	path := filepath.Join(t.TempDir(), "matrix.xlsx")
	require.NoError(t, f.SaveAs(path))
}

func TestGenerateIsConsistent(t *testing.T) {
	m := generated(t, newCatalog(t))

	report, err := m.VerifyRoleMatrix()
	require.NoError(t, err)
	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 4, report.Correct)
	assert.Empty(t, report.Mismatches)
}

func TestRecordedRoutes(t *testing.T) {
	m := generated(t, newCatalog(t))

	got, err := m.RecordedRoutes()
	require.NoError(t, err)
	assert.Equal(t, []string{"/admin", "/login", "/projects", "/tasks"}, got)

	got, err = m.RecordedRoutes("1. EMP", "9. Missing")
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestSyncRoutes(t *testing.T) {
	m := generated(t, newCatalog(t))
	f := m.File()
	source := []string{"/login", "tasks", "/new-page"}

	results, err := m.SyncRoutes(source)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, res := range results {
		assert.Equal(t, []string{"/projects", "/admin"}, res.Deleted, res.Sheet)
		assert.Equal(t, []string{"/new-page"}, res.Added, res.Sheet)
		assert.Equal(t, 2, res.Kept, res.Sheet)
	}

	assert.Equal(t, "/login", cell(t, f, "1. EMP", "B4"))
	assert.Equal(t, "/tasks", cell(t, f, "1. EMP", "B5"))
	assert.Equal(t, "New-page", cell(t, f, "1. EMP", "A6"))
	assert.Equal(t, "/new-page", cell(t, f, "1. EMP", "B6"))

	recorded, err := m.RecordedRoutes()
	require.NoError(t, err)
	assert.Equal(t, []string{"/login", "/new-page", "/tasks"}, recorded)

	// A second pass over unchanged input changes nothing.
	results, err = m.SyncRoutes(source)
	require.NoError(t, err)
	for _, res := range results {
		assert.Empty(t, res.Deleted)
		assert.Empty(t, res.Added)
		assert.Equal(t, 3, res.Kept)
	}
}

func TestSyncSkipsMissingSheet(t *testing.T) {
	m := generated(t, newCatalog(t))

	results, err := m.SyncRoutes([]string{"/login"}, "9. Missing")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Skipped)
}

func TestSyncRoleMatrix(t *testing.T) {
	m := generated(t, newCatalog(t))
	f := m.File()

	res, err := m.SyncRoleMatrix([]string{"/tasks", "/projects", "/admin"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/login"}, res.Deleted)

	res, err = m.SyncRoleMatrix([]string{"/tasks", "/projects", "/admin", "/login"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/login"}, res.Added)

	assert.Equal(t, "/login", cell(t, f, "6. Role Matrix", "B6"))
	assert.Equal(t, "X", cell(t, f, "6. Role Matrix", "C6"))
	assert.Equal(t, "X", cell(t, f, "6. Role Matrix", "D6"))
}

func TestUpdateSummary(t *testing.T) {
	m := generated(t, newCatalog(t))

	ok, err := m.UpdateSummary(42)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "42", cell(t, m.File(), "0. Tổng quan", "B15"))
}

func TestUpdateSummaryWithoutSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	m, err := New(f, newCatalog(t), nil)
	require.NoError(t, err)

	ok, err := m.UpdateSummary(1)
	require.NoError(t, err)
	assert.False(t, ok)
}

// unmapped generates a workbook from cat with every page's stories cleared,
// then returns a Matrix over it backed by the full catalog.
func unmapped(t *testing.T, cat *catalog.Catalog) *Matrix {
	t.Helper()
	bare := *cat
	bare.Pages = make([]models.Page, len(cat.Pages))
	for i, p := range cat.Pages {
		p.Stories = nil
		bare.Pages[i] = p
	}
	f, err := Generate(&bare, nil)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	m, err := New(f, cat, nil)
	require.NoError(t, err)
	return m
}

func TestApplyStories(t *testing.T) {
	m := unmapped(t, newCatalog(t))
	f := m.File()
	assert.Equal(t, "", cell(t, f, "1. EMP", "C4"))

	marks, err := m.ApplyStories()
	require.NoError(t, err)
	assert.Equal(t, []models.Mark{
		{Sheet: "1. EMP", Route: "/login", Target: "US-EMP-00-01", Cell: "C4"},
		{Sheet: "2. PM (MNG)", Route: "/login", Target: "US-MNG-00-01", Cell: "C4"},
		{Sheet: "1. EMP", Route: "/tasks", Target: "US-EMP-01-01", Cell: "E5"},
		{Sheet: "2. PM (MNG)", Route: "/projects", Target: "US-MNG-00-01", Cell: "C6"},
	}, marks)
	assert.Equal(t, "X", cell(t, f, "1. EMP", "C4"))
	assert.Equal(t, "X", cell(t, f, "2. PM (MNG)", "C6"))
}

func TestApplyStoriesFiltered(t *testing.T) {
	m := unmapped(t, newCatalog(t))

	marks, err := m.ApplyStories("tasks")
	require.NoError(t, err)
	require.Len(t, marks, 1)
	assert.Equal(t, "E5", marks[0].Cell)
	assert.Equal(t, "", cell(t, m.File(), "1. EMP", "C4"))
}

func TestApplyStoriesMissingRowIsNoop(t *testing.T) {
	cat := newCatalog(t)
	m := generated(t, cat)
	_, err := m.SyncRoutes([]string{"/tasks"})
	require.NoError(t, err)

	marks, err := m.ApplyStories("/login")
	require.NoError(t, err)
	assert.Empty(t, marks)
}

func TestVerifyRoleMatrixMismatch(t *testing.T) {
	m := generated(t, newCatalog(t))
	f := m.File()
	require.NoError(t, f.SetCellValue("6. Role Matrix", "C5", "x"))
	require.NoError(t, f.SetCellValue("6. Role Matrix", "D3", ""))

	m, err := New(f, newCatalog(t), nil)
	require.NoError(t, err)
	report, err := m.VerifyRoleMatrix()
	require.NoError(t, err)

	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 2, report.Correct)
	assert.Equal(t, []models.RoleMismatch{
		{Route: "/login", Expected: []string{"EMP", "MNG"}, Actual: []string{"EMP"}, Missing: []string{"MNG"}},
		{Route: "/projects", Expected: []string{"MNG"}, Actual: []string{"EMP", "MNG"}, Extra: []string{"EMP"}},
	}, report.Mismatches)
}

func TestVerifyRoleMatrixWithoutSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	m, err := New(f, newCatalog(t), nil)
	require.NoError(t, err)

	_, err = m.VerifyRoleMatrix()
	assert.True(t, errors.Is(err, storymatrix.ErrSheetNotFound))
}

func TestCountDocumentStories(t *testing.T) {
	doc := []byte("# Stories\n**US-EMP-00-01** login\n**US-EMP-00-02**\n- **US-MNG-10-01** x\nUS-EMP-01-01 plain\n")
	assert.Equal(t, map[string]int{"EMP": 2, "MNG": 1}, CountDocumentStories(doc))
}

func TestVerifyStories(t *testing.T) {
	m := generated(t, newCatalog(t))
	doc := []byte("**US-EMP-00-01** **US-EMP-00-02** **US-MNG-00-01**")

	counts, err := m.VerifyStories(doc)
	require.NoError(t, err)
	assert.Equal(t, []models.StoryCount{
		{Role: "EMP", Document: 2, Sheet: 3},
		{Role: "MNG", Document: 1, Sheet: 1},
	}, counts)
	assert.False(t, counts[0].Match())
	assert.True(t, counts[1].Match())
}
