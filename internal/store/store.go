// Package store handles SQLite persistence of the progress record.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spellsan/spellsan/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

const progressKey = "spellsan-progress"

// Store persists the progress record as one versioned JSON document and
// notifies subscribers after every successful save.
type Store struct {
	db *sql.DB

	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db, subs: map[chan struct{}]struct{}{}}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS progress (
			key TEXT PRIMARY KEY,
			version TEXT NOT NULL,
			saved_at TEXT NOT NULL,
			payload TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Load returns the persisted record merged over defaults. It never fails:
// a missing row, corrupt payload, or storage error yields defaults and a
// stderr diagnostic. PracticeToday is recomputed, not trusted from storage.
func (s *Store) Load(ctx context.Context) model.Record {
	record := model.DefaultRecord()
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM progress WHERE key = ?`, progressKey).Scan(&payload)
	switch {
	case err == sql.ErrNoRows:
		return record
	case err != nil:
		logErrf("failed to load progress: %v\n", err)
		return record
	}
	// Decoding over a defaults-initialized record gives every missing field
	// its default; unknown fields are ignored.
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		logErrf("failed to parse progress, starting fresh: %v\n", err)
		return model.DefaultRecord()
	}
	record.RecountToday(time.Now())
	return record
}

// Save serializes and persists the full record with the schema version and a
// save timestamp, then notifies subscribers. A failed save leaves the
// previously persisted document untouched.
func (s *Store) Save(ctx context.Context, record model.Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO progress (key, version, saved_at, payload) VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET version = excluded.version,
			saved_at = excluded.saved_at, payload = excluded.payload`,
		progressKey,
		model.SchemaVersion,
		time.Now().Format(time.RFC3339Nano),
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	s.notify()
	return nil
}

// Reset deletes all persisted progress. A subsequent Load returns defaults.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM progress WHERE key = ?`, progressKey); err != nil {
		return fmt.Errorf("failed to reset progress: %w", err)
	}
	s.notify()
	return nil
}

// Subscribe returns a channel that receives a signal after every successful
// save. The signal is advisory: it carries no payload and is dropped rather
// than blocking when the subscriber is not draining.
func (s *Store) Subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscription channel.
func (s *Store) Unsubscribe(ch chan struct{}) {
	s.mu.Lock()
	delete(s.subs, ch)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
