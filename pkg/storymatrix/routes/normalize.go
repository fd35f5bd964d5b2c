// Package routes derives application routes from a frontend directory tree.
package routes

import (
	"path/filepath"
	"sort"
	"strings"
)

// Normalize returns the canonical form of a route read from any source:
// surrounding whitespace trimmed, backslashes rewritten to slashes and a
// leading slash added. An empty input stays empty. Normalize is idempotent.
func Normalize(route string) string {
	r := strings.TrimSpace(route)
	if r == "" {
		return ""
	}
	r = strings.ReplaceAll(r, `\`, "/")
	if !strings.HasPrefix(r, "/") {
		r = "/" + r
	}
	return r
}

// IsGroupSegment reports whether a path segment is a grouping segment such
// as "(frontend)" that does not appear in the URL.
func IsGroupSegment(seg string) bool {
	return len(seg) >= 2 && strings.HasPrefix(seg, "(") && strings.HasSuffix(seg, ")")
}

// FromRelPath converts a directory path relative to the route root into a
// route. "." maps to "/" and grouping segments are dropped.
func FromRelPath(rel string) string {
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == "" {
		return "/"
	}

	var parts []string
	for _, seg := range strings.Split(strings.ReplaceAll(rel, `\`, "/"), "/") {
		if seg == "" || seg == "." || IsGroupSegment(seg) {
			continue
		}
		parts = append(parts, seg)
	}
	return "/" + strings.Join(parts, "/")
}

// Unique normalizes, deduplicates and sorts routes. Empty entries are dropped.
func Unique(routes []string) []string {
	seen := make(map[string]struct{}, len(routes))
	out := make([]string, 0, len(routes))
	for _, r := range routes {
		n := Normalize(r)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// LastSegment returns the final path segment of a route, or "" for "/".
func LastSegment(route string) string {
	r := strings.TrimRight(Normalize(route), "/")
	if i := strings.LastIndex(r, "/"); i >= 0 {
		return r[i+1:]
	}
	return r
}
