// Package catalog holds the business data behind the story matrix: which
// pages exist, which user stories and tables they cover, and which roles can
// reach them. The data ships embedded as YAML and can be replaced by a user
// file.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/models"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/routes"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultData []byte

// OtherModule is the module name given to routes no module claims.
const OtherModule = "Other"

// Workbook names the fixed sheets and labels of the story matrix workbook.
type Workbook struct {
	Title             string `yaml:"title"`
	SummarySheet      string `yaml:"summary_sheet" validate:"required"`
	RoleMatrixSheet   string `yaml:"role_matrix_sheet" validate:"required"`
	TotalPagesLabel   string `yaml:"total_pages_label" validate:"required"`
	TotalStoriesLabel string `yaml:"total_stories_label"`
}

// Catalog is the route, story and role lookup data.
type Catalog struct {
	Workbook Workbook        `yaml:"workbook"`
	Roles    []models.Role   `yaml:"roles" validate:"required,dive"`
	Pages    []models.Page   `yaml:"pages" validate:"dive"`
	Modules  []models.Module `yaml:"modules" validate:"dive"`

	pages map[string]int
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultData)
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", storymatrix.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates catalog YAML. Page routes are normalized.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for i := range c.Pages {
		c.Pages[i].Route = routes.Normalize(c.Pages[i].Route)
	}
	for i := range c.Modules {
		for j, r := range c.Modules[i].Routes {
			c.Modules[i].Routes[j] = routes.Normalize(r)
		}
	}
	if err := validator.New().Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) index() error {
	sheets := make(map[string]bool, len(c.Roles))
	codes := make(map[string]bool, len(c.Roles))
	for _, r := range c.Roles {
		if sheets[r.Sheet] {
			return fmt.Errorf("invalid catalog: duplicate role sheet %q", r.Sheet)
		}
		if codes[r.Code] {
			return fmt.Errorf("invalid catalog: duplicate role code %q", r.Code)
		}
		sheets[r.Sheet] = true
		codes[r.Code] = true
	}
	c.pages = make(map[string]int, len(c.Pages))
	for i, p := range c.Pages {
		if _, dup := c.pages[p.Route]; dup {
			return fmt.Errorf("invalid catalog: duplicate page %q", p.Route)
		}
		c.pages[p.Route] = i
	}
	return nil
}

// Page returns the page recorded for route.
func (c *Catalog) Page(route string) (models.Page, bool) {
	i, ok := c.pages[routes.Normalize(route)]
	if !ok {
		return models.Page{}, false
	}
	return c.Pages[i], true
}

// Name returns the page name for route. Unknown routes fall back to their
// capitalized last segment, and the root route to itself.
func (c *Catalog) Name(route string) string {
	if p, ok := c.Page(route); ok && p.Name != "" {
		return p.Name
	}
	last := routes.LastSegment(route)
	if last == "" {
		return routes.Normalize(route)
	}
	return capitalize(last)
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + cases.Lower(language.Und).String(s[size:])
}

// Routes returns the catalog routes in catalog order.
func (c *Catalog) Routes() []string {
	out := make([]string, len(c.Pages))
	for i, p := range c.Pages {
		out[i] = p.Route
	}
	return out
}

// RoleBySheet returns the role whose matrix lives on sheet.
func (c *Catalog) RoleBySheet(sheet string) (models.Role, bool) {
	for _, r := range c.Roles {
		if r.Sheet == sheet {
			return r, true
		}
	}
	return models.Role{}, false
}

// RoleByCode returns the role with the given code.
func (c *Catalog) RoleByCode(code string) (models.Role, bool) {
	for _, r := range c.Roles {
		if strings.EqualFold(r.Code, code) {
			return r, true
		}
	}
	return models.Role{}, false
}

// RoleForStory returns the role owning a story ID. Stories not listed in any
// epic are attributed by their US-<CODE>- prefix.
func (c *Catalog) RoleForStory(id string) (models.Role, bool) {
	for _, r := range c.Roles {
		for _, e := range r.Epics {
			for _, s := range e.Stories {
				if s == id {
					return r, true
				}
			}
		}
	}
	for _, r := range c.Roles {
		if strings.HasPrefix(id, storymatrix.StoryPrefix+r.Code+"-") {
			return r, true
		}
	}
	return models.Role{}, false
}

// RoleAccess returns the codes of roles that can reach route, in role order:
// roles owning any of the page's stories plus the page's explicit roles.
func (c *Catalog) RoleAccess(route string) []string {
	p, ok := c.Page(route)
	if !ok {
		return nil
	}
	set := make(map[string]bool)
	for _, id := range p.Stories {
		if r, ok := c.RoleForStory(id); ok {
			set[r.Code] = true
		}
	}
	for _, code := range p.Roles {
		set[strings.ToUpper(code)] = true
	}
	var out []string
	for _, r := range c.Roles {
		if set[r.Code] {
			out = append(out, r.Code)
		}
	}
	return out
}

// RoleCodes returns every role code in role order.
func (c *Catalog) RoleCodes() []string {
	out := make([]string, len(c.Roles))
	for i, r := range c.Roles {
		out[i] = r.Code
	}
	return out
}

// RoleSheets returns every role sheet name in role order.
func (c *Catalog) RoleSheets() []string {
	out := make([]string, len(c.Roles))
	for i, r := range c.Roles {
		out[i] = r.Sheet
	}
	return out
}

// PagesForStory returns the routes implementing a story, sorted.
func (c *Catalog) PagesForStory(id string) []string {
	var out []string
	for _, p := range c.Pages {
		for _, s := range p.Stories {
			if s == id {
				out = append(out, p.Route)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}

// Module returns the module claiming route, or OtherModule.
func (c *Catalog) Module(route string) string {
	route = routes.Normalize(route)
	for _, m := range c.Modules {
		for _, r := range m.Routes {
			if r == route {
				return m.Name
			}
		}
	}
	return OtherModule
}

// StoryCount returns the number of stories across all roles.
func (c *Catalog) StoryCount() int {
	n := 0
	for _, r := range c.Roles {
		n += len(r.Stories())
	}
	return n
}
