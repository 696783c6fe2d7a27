package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// Logical collection names. Each collection is a single JSON document
// that is read wholesale and replaced wholesale; there are no
// field-level updates.
const (
	CollectionBookings  = "bookings"
	CollectionInquiries = "inquiries"
	CollectionSessions  = "sessions"
	CollectionAdmins    = "admins"
)

var collections = []string{
	CollectionBookings,
	CollectionInquiries,
	CollectionSessions,
	CollectionAdmins,
}

var ErrUnknownCollection = errors.New("unknown collection")

// Config holds record store configuration
type Config struct {
	Path string
}

// Store is the durable record store backing bookings, inquiries,
// sessions and admin accounts. Writes to a collection are serialized
// through a per-collection mutex, so they apply in submission order and
// never interleave; reads are not blocked by writers.
type Store struct {
	db *sql.DB
	mu map[string]*sync.Mutex
}

// Open initializes the record store and runs migrations
func Open(cfg Config) (*Store, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	s := &Store{
		db: db,
		mu: make(map[string]*sync.Mutex, len(collections)),
	}
	for _, name := range collections {
		s.mu[name] = &sync.Mutex{}
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Read returns the raw JSON document for a collection. A collection
// that was never written reads as empty.
func (s *Store) Read(name string) ([]byte, error) {
	if _, ok := s.mu[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}

	var data []byte
	err := s.db.QueryRow(
		"SELECT data FROM collections WHERE name = ?", name,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", name, err)
	}
	return data, nil
}

// Write replaces the entire document for a collection. Concurrent
// writers to the same collection queue behind each other.
func (s *Store) Write(name string, data []byte) error {
	mu, ok := s.mu[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}

	mu.Lock()
	defer mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO collections (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, name, data)
	if err != nil {
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	return nil
}

// migrate runs all store migrations
func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if err := s.runMigration(m); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.name, err)
		}
	}
	return nil
}

type migration struct {
	name string
	up   string
}

func (s *Store) runMigration(m migration) error {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM migrations WHERE name = ?", m.name).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil // Already applied
	}

	if _, err := s.db.Exec(m.up); err != nil {
		return err
	}

	_, err = s.db.Exec("INSERT INTO migrations (name) VALUES (?)", m.name)
	return err
}

var migrations = []migration{
	{
		name: "001_create_collections",
		up: `
			CREATE TABLE collections (
				name TEXT PRIMARY KEY,
				data BLOB NOT NULL,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
}
