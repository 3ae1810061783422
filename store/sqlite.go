package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/msarica/untangle-game/core"
	"github.com/msarica/untangle-game/geom"

	_ "modernc.org/sqlite" // cgo-free sqlite driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS levels (
	number INTEGER NOT NULL,
	width  REAL    NOT NULL,
	height REAL    NOT NULL,
	doc    BLOB    NOT NULL,
	PRIMARY KEY (number, width, height)
);`

// SQLiteStore is the durable level store: one row per (number, extent),
// holding the YAML level document. Levels cross the boundary through the
// snapshot codec, so the same clone discipline as MemoryStore holds —
// decoding always yields fresh objects.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the level database at path.
// Complexity: O(1) plus driver/schema setup.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if _, err = db.Exec(sqliteSchema); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("store: init schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load fetches and decodes the level stored under the exact (number,
// extent) key; ok reports a hit.
// Complexity: O(V + E) for decoding on hit.
func (s *SQLiteStore) Load(number int, extent geom.Extent) (*core.Level, bool, error) {
	var doc []byte
	err := s.db.QueryRow(
		`SELECT doc FROM levels WHERE number = ? AND width = ? AND height = ?`,
		number, extent.Width, extent.Height,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store: load level %d: %w", number, err)
	}

	lv, err := DecodeLevel(doc)
	if err != nil {
		return nil, false, fmt.Errorf("store: load level %d: %w", number, err)
	}
	if lv == nil {
		// An empty document behaves like a miss.
		return nil, false, nil
	}

	return lv, true, nil
}

// Save upserts the level document under its (number, extent) key.
// Returns ErrNilLevel for nil input.
// Complexity: O(V + E) for encoding.
func (s *SQLiteStore) Save(lv *core.Level) error {
	doc, err := EncodeLevel(lv)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`INSERT INTO levels (number, width, height, doc) VALUES (?, ?, ?, ?)
		 ON CONFLICT (number, width, height) DO UPDATE SET doc = excluded.doc`,
		lv.Number, lv.Extent.Width, lv.Extent.Height, doc,
	)
	if err != nil {
		return fmt.Errorf("store: save level %d: %w", lv.Number, err)
	}

	return nil
}
