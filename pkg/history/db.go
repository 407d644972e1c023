// Package history persists lane selections so the picker can
// pre-highlight the most recently used lane.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kestrelworks/laneview/pkg/model"
)

// DB handles selection history persistence
type DB struct {
	db  *sql.DB
	now func() time.Time
}

// OpenDB opens or creates the history database at the given path
func OpenDB(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	hdb := &DB{db: db, now: time.Now}
	if err := hdb.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS lane_selections (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scope TEXT NOT NULL,
		name TEXT NOT NULL,
		selected_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_selections_lane ON lane_selections(scope, name);
	`

	_, err := d.db.Exec(schema)
	return err
}

// RecordSelection inserts a selection record for the lane.
func (d *DB) RecordSelection(id model.LaneID) error {
	_, err := d.db.Exec(`
		INSERT INTO lane_selections (scope, name, selected_at)
		VALUES (?, ?, ?)
	`, id.Scope, id.Name, d.now().UTC())
	return err
}

// RecentSelections returns distinct recently selected lanes, most
// recent first, up to limit.
func (d *DB) RecentSelections(limit int) ([]model.LaneID, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := d.db.Query(`
		SELECT scope, name, MAX(selected_at) AS last
		FROM lane_selections
		GROUP BY scope, name
		ORDER BY last DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []model.LaneID
	for rows.Next() {
		var id model.LaneID
		var last string
		if err := rows.Scan(&id.Scope, &id.Name, &last); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// MostRecent returns the most recently selected lane, or nil when the
// history is empty.
func (d *DB) MostRecent() (*model.LaneID, error) {
	ids, err := d.RecentSelections(1)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return &ids[0], nil
}
