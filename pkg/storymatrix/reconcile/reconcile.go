// Package reconcile compares routes found in source code with routes
// recorded in the story matrix.
package reconcile

import (
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/models"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/routes"
)

// Compare returns the routes recorded but absent from source (MissingInCode)
// and the routes in source but not recorded (NewInCode). Both inputs are
// normalized the same way before comparison; results are sorted.
func Compare(source, recorded []string) models.Diff {
	src := routes.Unique(source)
	rec := routes.Unique(recorded)

	return models.Diff{
		MissingInCode: difference(rec, src),
		NewInCode:     difference(src, rec),
	}
}

// difference returns the elements of a not present in b, preserving a's order.
func difference(a, b []string) []string {
	in := make(map[string]struct{}, len(b))
	for _, r := range b {
		in[r] = struct{}{}
	}
	out := []string{}
	for _, r := range a {
		if _, ok := in[r]; !ok {
			out = append(out, r)
		}
	}
	return out
}

// Set is a set of normalized routes.
type Set map[string]struct{}

// NewSet builds a Set from routes, normalizing each.
func NewSet(rs []string) Set {
	s := make(Set, len(rs))
	for _, r := range rs {
		if n := routes.Normalize(r); n != "" {
			s[n] = struct{}{}
		}
	}
	return s
}

// Has reports whether the normalized route is in the set.
func (s Set) Has(route string) bool {
	_, ok := s[routes.Normalize(route)]
	return ok
}
