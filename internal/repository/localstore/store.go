package localstore

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"

	"go-jobportal-client/internal/domain"
	"go-jobportal-client/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS mirror (
	key        TEXT PRIMARY KEY,
	payload    BLOB NOT NULL,
	stored_at  INTEGER NOT NULL
);`

// Open opens the mirror database, creating the schema if needed.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

type mirrorStore struct {
	db *sql.DB
}

func NewMirrorStore(db *sql.DB) domain.MirrorStore {
	return &mirrorStore{db: db}
}

// Read never surfaces an error: a missing row, a failed query or a
// corrupt payload all read as "nothing stored", the same way the browser
// cache treated an unparseable local-storage entry.
func (s *mirrorStore) Read(key string) ([]byte, time.Time, bool) {
	var payload []byte
	var storedAt int64
	err := s.db.QueryRow(
		`SELECT payload, stored_at FROM mirror WHERE key = ?`, key,
	).Scan(&payload, &storedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.Warn("mirror read failed", "key", key, "error", err)
		}
		return nil, time.Time{}, false
	}
	return payload, time.Unix(storedAt, 0).UTC(), true
}

func (s *mirrorStore) Write(key string, payload []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO mirror (key, payload, stored_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, stored_at = excluded.stored_at`,
		key, payload, time.Now().Unix(),
	)
	return err
}

func (s *mirrorStore) Clear(key string) error {
	_, err := s.db.Exec(`DELETE FROM mirror WHERE key = ?`, key)
	return err
}

// ReadList reads a whole stored array. Absent or unparseable payloads
// come back as an empty list, matching the mirror contract.
func ReadList[T any](store domain.MirrorStore, key string) []T {
	payload, _, ok := store.Read(key)
	if !ok {
		return []T{}
	}
	var list []T
	if err := json.Unmarshal(payload, &list); err != nil {
		logger.Log.Warn("mirror payload unparseable, treating as empty", "key", key, "error", err)
		return []T{}
	}
	return list
}

// Age reports how long ago the key was last written. Missing keys report
// ok=false.
func Age(store domain.MirrorStore, key string) (time.Duration, bool) {
	_, storedAt, ok := store.Read(key)
	if !ok {
		return 0, false
	}
	return time.Since(storedAt), true
}

// WriteList replaces the whole stored array for key.
func WriteList[T any](store domain.MirrorStore, key string, list []T) error {
	payload, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return store.Write(key, payload)
}
