package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/kestrelworks/laneview/pkg/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), ".workspace", "history.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndMostRecent(t *testing.T) {
	db := openTestDB(t)

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	clock := base
	db.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	for _, ref := range []string{"acme/main", "tools/spike", "acme/main"} {
		id, err := model.ParseLaneID(ref)
		if err != nil {
			t.Fatal(err)
		}
		if err := db.RecordSelection(id); err != nil {
			t.Fatalf("record %s: %v", ref, err)
		}
	}

	recent, err := db.MostRecent()
	if err != nil {
		t.Fatalf("most recent: %v", err)
	}
	if recent == nil || recent.String() != "acme/main" {
		t.Errorf("expected acme/main most recent, got %v", recent)
	}
}

func TestRecentSelectionsDistinctMostRecentFirst(t *testing.T) {
	db := openTestDB(t)

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	clock := base
	db.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	for _, ref := range []string{"a/one", "b/two", "a/one", "c/three"} {
		id, _ := model.ParseLaneID(ref)
		if err := db.RecordSelection(id); err != nil {
			t.Fatal(err)
		}
	}

	got, err := db.RecentSelections(10)
	if err != nil {
		t.Fatalf("recent selections: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 distinct lanes, got %d: %v", len(got), got)
	}
	want := []string{"c/three", "a/one", "b/two"}
	for i, id := range got {
		if id.String() != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], id)
		}
	}
}

func TestMostRecentEmptyHistory(t *testing.T) {
	db := openTestDB(t)

	recent, err := db.MostRecent()
	if err != nil {
		t.Fatalf("most recent: %v", err)
	}
	if recent != nil {
		t.Errorf("expected nil for empty history, got %v", recent)
	}
}
