package lanes

import (
	"sort"
	"strings"

	"github.com/kestrelworks/laneview/pkg/model"
)

// Less returns a total-order comparator over lanes for the given sort mode.
//
// Alphabetical compares scopes case-sensitively first when groupScopes is
// set and the scopes differ, then names case-insensitively. Created and
// updated compare the respective timestamp descending, so the most recent
// lane sorts first; a missing timestamp is the zero time and sorts last.
func Less(mode model.SortMode, groupScopes bool) func(a, b model.Lane) bool {
	switch mode {
	case model.SortCreated:
		return func(a, b model.Lane) bool {
			return a.CreatedAt.After(b.CreatedAt)
		}
	case model.SortUpdated:
		return func(a, b model.Lane) bool {
			return a.UpdatedAt.After(b.UpdatedAt)
		}
	default:
		return func(a, b model.Lane) bool {
			if groupScopes && a.ID.Scope != b.ID.Scope {
				return a.ID.Scope < b.ID.Scope
			}
			an := strings.ToLower(a.ID.Name)
			bn := strings.ToLower(b.ID.Name)
			if an != bn {
				return an < bn
			}
			// Case-sensitive tie-break keeps the order deterministic for
			// names that fold to the same string.
			return a.ID.Name < b.ID.Name
		}
	}
}

// Sort orders lanes in place with the comparator for mode. The sort is
// stable, so re-sorting unchanged input reproduces the same order.
func Sort(lns []model.Lane, mode model.SortMode, groupScopes bool) {
	less := Less(mode, groupScopes)
	sort.SliceStable(lns, func(i, j int) bool {
		return less(lns[i], lns[j])
	})
}
