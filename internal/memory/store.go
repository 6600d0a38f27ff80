// Package memory provides a persistent translation memory. Translations
// that succeeded once are stored in a SQLite database and reused on later
// runs, so re-translating an unchanged workbook is cheap.
package memory

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a source-text to translated-text lookup backed by SQLite, with
// an in-memory cache in front of it.
type Store struct {
	db    *sql.DB
	mu    sync.Mutex
	cache map[string]string
}

// Open opens (or creates) a translation memory database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create memory directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open translation memory: %w", err)
	}

	query := `CREATE TABLE IF NOT EXISTS translations (
		source text PRIMARY KEY,
		translated text NOT NULL,
		created_at integer NOT NULL
	)`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create translations table: %w", err)
	}

	return &Store{db: db, cache: make(map[string]string)}, nil
}

// Lookup returns the stored translation for source, if any.
func (s *Store) Lookup(source string) (string, bool) {
	s.mu.Lock()
	if translated, ok := s.cache[source]; ok {
		s.mu.Unlock()
		return translated, true
	}
	s.mu.Unlock()

	var translated string
	err := s.db.QueryRow(
		`SELECT translated FROM translations WHERE source = ?`, source,
	).Scan(&translated)
	if err != nil {
		return "", false
	}

	s.mu.Lock()
	s.cache[source] = translated
	s.mu.Unlock()
	return translated, true
}

// Save stores a successful translation. An existing entry for the same
// source is replaced.
func (s *Store) Save(source, translated string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO translations (source, translated, created_at) VALUES (?, ?, ?)`,
		source, translated, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save translation: %w", err)
	}

	s.mu.Lock()
	s.cache[source] = translated
	s.mu.Unlock()
	return nil
}

// Len returns the number of stored translations.
func (s *Store) Len() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM translations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count translations: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
