/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package notify

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// ThrottleStore remembers which throttle keys have already fired. Keys embed
// the clock hour, so entries go stale on their own; durability beyond the
// current session is not required.
type ThrottleStore interface {
	// Seen reports whether the key has been marked.
	Seen(key string) (bool, error)

	// Mark records the key. Marking an already-marked key is a no-op.
	Mark(key string) error

	Close() error
}

// MemoryThrottle keeps throttle keys in process memory. Used in tests and
// when no throttle database is configured.
type MemoryThrottle struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

// NewMemoryThrottle creates an empty in-memory throttle store.
func NewMemoryThrottle() *MemoryThrottle {
	return &MemoryThrottle{keys: make(map[string]struct{})}
}

func (m *MemoryThrottle) Seen(key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.keys[key]
	return ok, nil
}

func (m *MemoryThrottle) Mark(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[key] = struct{}{}
	return nil
}

func (m *MemoryThrottle) Close() error {
	return nil
}

// throttleMaxAge bounds growth of the throttle table. Keys are hour-scoped,
// so anything older than two days can never match again.
const throttleMaxAge = 48 * time.Hour

// SQLiteThrottle persists throttle keys to a local SQLite database so a
// restarted watcher within the same hour does not re-fire.
type SQLiteThrottle struct {
	db *sql.DB
}

// NewSQLiteThrottle opens (creating if needed) the throttle database at the
// given path and prunes stale keys.
func NewSQLiteThrottle(path string) (*SQLiteThrottle, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open throttle database %s: %w", path, err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS notified_keys (
			throttle_key TEXT PRIMARY KEY,
			marked_at    TIMESTAMP NOT NULL
		)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create throttle table: %w", err)
	}
	cutoff := time.Now().Add(-throttleMaxAge)
	if _, err := db.Exec(`DELETE FROM notified_keys WHERE marked_at < ?`, cutoff); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to prune throttle table: %w", err)
	}
	return &SQLiteThrottle{db: db}, nil
}

func (s *SQLiteThrottle) Seen(key string) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM notified_keys WHERE throttle_key = ?`, key).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *SQLiteThrottle) Mark(key string) error {
	_, err := s.db.Exec(`INSERT OR IGNORE INTO notified_keys (throttle_key, marked_at) VALUES (?, ?)`,
		key, time.Now())
	return err
}

func (s *SQLiteThrottle) Close() error {
	return s.db.Close()
}
