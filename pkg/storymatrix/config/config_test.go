package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storymatrix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "page.tsx", cfg.Frontend.Marker)
	assert.Equal(t, cfg.Workbook.Path, cfg.OutputPath())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
frontend:
  dir: web/app
workbook:
  path: matrix.xlsx
  output: out.xlsx
logging:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "web/app", cfg.Frontend.Dir)
	assert.Equal(t, "page.tsx", cfg.Frontend.Marker, "unset keys keep defaults")
	assert.Equal(t, "matrix.xlsx", cfg.Workbook.Path)
	assert.Equal(t, "out.xlsx", cfg.OutputPath())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "workbook:\n  path: matrix.xlsx\n")
	t.Setenv("STORYMATRIX_WORKBOOK_PATH", "env.xlsx")
	t.Setenv("STORYMATRIX_LOGGING_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env.xlsx", cfg.Workbook.Path)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, errors.Is(err, storymatrix.ErrFileNotFound))
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"bad level":  "logging:\n  level: loud\n",
		"no marker":  "frontend:\n  marker: \"\"\n",
		"bad syntax": "frontend: [\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
