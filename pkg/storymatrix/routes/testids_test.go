package routes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/models"
)

const samplePage = `export default function Page() {
  return (
    <div data-testid="users-page">
      <h1 data-testid="page-title">Users</h1>
      {rows.map((u) => <tr key={u.id} data-testid={` + "`row-${u.id}`" + `} />)}
      <button data-testid="btn-create">New</button>
      <span data-testid={'badge-static'} />
    </div>
  )
}`

func TestExtractTestIDs(t *testing.T) {
	got := ExtractTestIDs([]byte(samplePage))
	assert.Equal(t, []models.TestID{
		{Value: "users-page"},
		{Value: "page-title"},
		{Value: "btn-create"},
		{Value: "row-${u.id}", Dynamic: true},
		{Value: "badge-static", Dynamic: true},
	}, got)

	assert.Empty(t, ExtractTestIDs([]byte("<div className=\"x\" />")))
}

func TestReadTestIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.tsx")
	require.NoError(t, os.WriteFile(path, []byte(samplePage), 0644))

	ids, err := ReadTestIDs(path)
	require.NoError(t, err)
	assert.Len(t, ids, 5)

	_, err = ReadTestIDs(filepath.Join(t.TempDir(), "missing.tsx"))
	assert.Error(t, err)
}
