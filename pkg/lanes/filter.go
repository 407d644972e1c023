package lanes

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/kestrelworks/laneview/pkg/model"
)

// Filter narrows the visible lane list for a search query using a
// two-phase match. The first pass keeps lanes whose name starts with the
// query, case-insensitively, preserving sorted order. When that pass
// matches nothing, a second pass keeps lanes whose name contains the
// query anywhere, scanning the original source-order list rather than
// the sorted one. An empty query returns sorted unchanged.
func Filter(sorted, original []model.Lane, query string) []model.Lane {
	if query == "" {
		return sorted
	}
	q := strings.ToLower(query)

	matched := make([]model.Lane, 0, len(sorted))
	for _, ln := range sorted {
		if strings.HasPrefix(strings.ToLower(ln.ID.Name), q) {
			matched = append(matched, ln)
		}
	}
	if len(matched) > 0 {
		return matched
	}

	for _, ln := range original {
		if strings.Contains(strings.ToLower(ln.ID.Name), q) {
			matched = append(matched, ln)
		}
	}
	return matched
}

// FilterFuzzy narrows the lane list with fuzzy matching over lane names,
// ordered best match first. An empty query returns sorted unchanged.
func FilterFuzzy(sorted []model.Lane, query string) []model.Lane {
	if strings.TrimSpace(query) == "" {
		return sorted
	}

	names := make([]string, len(sorted))
	for i, ln := range sorted {
		names[i] = ln.ID.Name
	}

	matches := fuzzy.Find(query, names)
	matched := make([]model.Lane, 0, len(matches))
	for _, m := range matches {
		matched = append(matched, sorted[m.Index])
	}
	return matched
}
