package kv

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"

	"go.trai.ch/gostore/internal/core/ports"
	"go.trai.ch/zerr"
	_ "modernc.org/sqlite" // Registers the "sqlite" driver.
)

var _ ports.KVStore = (*SQLiteStore)(nil)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLiteStore implements ports.KVStore on a single SQLite table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the SQLite database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, zerr.New("sqlite store path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open sqlite store"), "path", path)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to ping sqlite store"), "path", path)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, zerr.Wrap(err, "failed to create kv table")
	}

	return &SQLiteStore{db: db}, nil
}

// Get reads the value stored under key.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, zerr.With(zerr.Wrap(err, "failed to query key"), "key", key)
	}
	return value, true, nil
}

// Set upserts value under key.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to upsert key"), "key", key)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
