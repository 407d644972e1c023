package lanes

import (
	"testing"

	"github.com/kestrelworks/laneview/pkg/model"
)

func namedLanes(names ...string) []model.Lane {
	lns := make([]model.Lane, len(names))
	for i, n := range names {
		lns[i] = model.Lane{ID: model.LaneID{Scope: "ws", Name: n}}
	}
	return lns
}

func TestFilterEmptyQueryReturnsSortedUnchanged(t *testing.T) {
	sorted := namedLanes("alpha", "beta", "metal")
	original := namedLanes("metal", "alpha", "beta")

	got := Filter(sorted, original, "")

	if len(got) != 3 {
		t.Fatalf("expected 3 lanes, got %d", len(got))
	}
	for i := range sorted {
		if got[i].ID != sorted[i].ID {
			t.Errorf("order changed at %d: got %s, want %s", i, got[i].ID, sorted[i].ID)
		}
	}
}

func TestFilterPrefixPassSkipsSubstringFallback(t *testing.T) {
	sorted := namedLanes("alpha", "beta", "metal")
	original := namedLanes("metal", "beta", "alpha")

	// "al" prefixes alpha; metal contains it but must not appear
	// because the prefix pass found a match.
	got := Filter(sorted, original, "al")

	if len(got) != 1 {
		t.Fatalf("expected 1 lane, got %d: %v", len(got), refs(got))
	}
	if got[0].ID.Name != "alpha" {
		t.Errorf("expected alpha, got %s", got[0].ID.Name)
	}
}

func TestFilterPrefixIsCaseInsensitive(t *testing.T) {
	sorted := namedLanes("Alpha", "beta")

	got := Filter(sorted, sorted, "aL")

	if len(got) != 1 || got[0].ID.Name != "Alpha" {
		t.Errorf("expected case-insensitive prefix match on Alpha, got %v", refs(got))
	}
}

func TestFilterFallbackSearchesOriginalOrder(t *testing.T) {
	// No name starts with "et"; the substring fallback must scan the
	// original source-order list, not the sorted one.
	sorted := namedLanes("beta", "metal", "zinc")
	original := namedLanes("metal", "zinc", "beta")

	got := Filter(sorted, original, "et")

	if len(got) != 2 {
		t.Fatalf("expected 2 lanes, got %d: %v", len(got), refs(got))
	}
	if got[0].ID.Name != "metal" || got[1].ID.Name != "beta" {
		t.Errorf("fallback should preserve original order [metal beta], got %v", refs(got))
	}
}

func TestFilterNoMatchAnywhereIsEmpty(t *testing.T) {
	sorted := namedLanes("alpha", "beta", "metal")

	got := Filter(sorted, sorted, "xyz")

	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", refs(got))
	}
}

func TestFilterResultIsSubsetOfFullList(t *testing.T) {
	sorted := namedLanes("alpha", "beta", "metal", "Zeta", "zebra")
	original := namedLanes("zebra", "Zeta", "metal", "beta", "alpha")

	inFull := make(map[model.LaneID]bool)
	for _, ln := range sorted {
		inFull[ln.ID] = true
	}

	for _, query := range []string{"a", "z", "et", "ZE", "q", "metal"} {
		for _, ln := range Filter(sorted, original, query) {
			if !inFull[ln.ID] {
				t.Errorf("query %q produced lane %s not in the full list", query, ln.ID)
			}
		}
	}
}

func TestFilterFuzzyMatchesScattered(t *testing.T) {
	sorted := namedLanes("feature-login", "fix-layout", "docs")

	got := FilterFuzzy(sorted, "flg")

	if len(got) == 0 {
		t.Fatal("expected at least one fuzzy match")
	}
	if got[0].ID.Name != "feature-login" {
		t.Errorf("expected feature-login as best match, got %s", got[0].ID.Name)
	}
}

func TestFilterFuzzyEmptyQueryReturnsAll(t *testing.T) {
	sorted := namedLanes("alpha", "beta")

	got := FilterFuzzy(sorted, "  ")

	if len(got) != 2 {
		t.Errorf("expected all lanes for blank query, got %d", len(got))
	}
}
