package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix"
)

const sample = `
workbook:
  summary_sheet: "0. Summary"
  role_matrix_sheet: "6. Role Matrix"
  total_pages_label: "Pages"
roles:
  - sheet: "1. EMP"
    code: EMP
    epics:
      - name: "Auth"
        stories: ["US-EMP-00-01", "US-EMP-00-02"]
  - sheet: "2. PM (MNG)"
    code: MNG
    epics:
      - name: "Projects"
        stories: ["US-MNG-01-01"]
  - sheet: "4. SYS_ADMIN"
    code: SYS
    epics: []
pages:
  - route: "login"
    name: "Sign in"
    stories: ["US-EMP-00-01", "US-MNG-01-01"]
  - route: "/admin/users"
    name: "Users"
    roles: ["sys"]
  - route: "/projects"
    stories: ["US-MNG-99-01"]
modules:
  - name: "Auth"
    routes: ["/login"]
`

func mustParse(t *testing.T, data string) *Catalog {
	t.Helper()
	c, err := Parse([]byte(data))
	require.NoError(t, err)
	return c
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"EMP", "MNG", "CEO", "SYS", "ORG"}, c.RoleCodes())
	assert.Equal(t, "0. Tổng quan", c.Workbook.SummarySheet)
	assert.Equal(t, "6. Role Matrix", c.Workbook.RoleMatrixSheet)
	assert.NotEmpty(t, c.Pages)
	assert.Greater(t, c.StoryCount(), 0)

	p, ok := c.Page("/projects/[id]/settings/custom-fields")
	require.True(t, ok)
	assert.Equal(t, []string{"custom_field_definitions"}, p.Tables)
}

func TestParseNormalizesRoutes(t *testing.T) {
	c := mustParse(t, sample)
	p, ok := c.Page("/login")
	require.True(t, ok)
	assert.Equal(t, "/login", p.Route)
	assert.Equal(t, "Auth", c.Module("login"))
	assert.Equal(t, OtherModule, c.Module("/nowhere"))
}

func TestParseRejectsDuplicates(t *testing.T) {
	tests := map[string]string{
		"page": `
workbook: {summary_sheet: s, role_matrix_sheet: m, total_pages_label: l}
roles: [{sheet: a, code: A}]
pages: [{route: /x}, {route: x}]
`,
		"code": `
workbook: {summary_sheet: s, role_matrix_sheet: m, total_pages_label: l}
roles: [{sheet: a, code: A}, {sheet: b, code: A}]
`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.ErrorContains(t, err, "duplicate")
		})
	}
}

func TestParseValidates(t *testing.T) {
	_, err := Parse([]byte("roles: []\n"))
	assert.ErrorContains(t, err, "invalid catalog")

	_, err = Parse([]byte("roles: [\n"))
	assert.ErrorContains(t, err, "decode catalog")
}

func TestName(t *testing.T) {
	c := mustParse(t, sample)
	tests := []struct {
		route string
		want  string
	}{
		{"/login", "Sign in"},
		{"/projects", "Projects"},
		{"/reports/cost-analysis", "Cost-analysis"},
		{"/hr/SALARY", "Salary"},
		{"/", "/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Name(tt.route), tt.route)
	}
}

func TestRoleForStory(t *testing.T) {
	c := mustParse(t, sample)

	r, ok := c.RoleForStory("US-EMP-00-02")
	require.True(t, ok)
	assert.Equal(t, "1. EMP", r.Sheet)

	r, ok = c.RoleForStory("US-MNG-99-01")
	require.True(t, ok)
	assert.Equal(t, "MNG", r.Code)

	_, ok = c.RoleForStory("US-XYZ-01-01")
	assert.False(t, ok)
}

func TestRoleAccess(t *testing.T) {
	c := mustParse(t, sample)
	assert.Equal(t, []string{"EMP", "MNG"}, c.RoleAccess("/login"))
	assert.Equal(t, []string{"SYS"}, c.RoleAccess("/admin/users"))
	assert.Equal(t, []string{"MNG"}, c.RoleAccess("/projects"))
	assert.Nil(t, c.RoleAccess("/unknown"))
}

func TestLookups(t *testing.T) {
	c := mustParse(t, sample)

	r, ok := c.RoleBySheet("2. PM (MNG)")
	require.True(t, ok)
	assert.Equal(t, "MNG", r.Code)

	r, ok = c.RoleByCode("sys")
	require.True(t, ok)
	assert.Equal(t, "4. SYS_ADMIN", r.Sheet)

	assert.Equal(t, []string{"/login"}, c.PagesForStory("US-EMP-00-01"))
	assert.Equal(t, []string{"/login", "/admin/users", "/projects"}, c.Routes())
	assert.Equal(t, 3, c.StoryCount())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Pages, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, storymatrix.ErrFileNotFound))
}
