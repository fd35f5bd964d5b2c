package routes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/ukaji3/storymatrix-go/pkg/storymatrix"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/models"
)

// Walk visits root recursively and returns one PageFile per directory that
// contains a file named marker. Source paths are made relative to base (or
// root when base is empty) and use forward slashes. Results are sorted by
// route, then source.
func Walk(root, base, marker string) ([]models.PageFile, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", storymatrix.ErrDirNotFound, root)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", storymatrix.ErrDirNotFound, root)
	}
	if marker == "" {
		marker = storymatrix.DefaultPageFile
	}
	if base == "" {
		base = root
	}

	var pages []models.PageFile
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != marker {
			return nil
		}

		rel, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil {
			return err
		}
		source, err := filepath.Rel(base, path)
		if err != nil {
			source = path
		}
		pages = append(pages, models.PageFile{
			Route:  FromRelPath(rel),
			Source: filepath.ToSlash(source),
			Path:   path,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Slice(pages, func(i, j int) bool {
		if pages[i].Route != pages[j].Route {
			return pages[i].Route < pages[j].Route
		}
		return pages[i].Source < pages[j].Source
	})
	return pages, nil
}

// Extract returns the deduplicated, sorted routes of every page under root.
func Extract(root, marker string) ([]string, error) {
	pages, err := Walk(root, "", marker)
	if err != nil {
		return nil, err
	}
	routes := make([]string, 0, len(pages))
	for _, p := range pages {
		routes = append(routes, p.Route)
	}
	return Unique(routes), nil
}
