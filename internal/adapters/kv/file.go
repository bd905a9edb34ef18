// Package kv implements the durable key-value stores the cart is persisted to.
package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/gostore/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.KVStore = (*FileStore)(nil)

// FileStore implements ports.KVStore with one file per key inside a directory.
// File names are the XXHash of the key, so any key is a valid file name.
type FileStore struct {
	dir string
	mu  sync.RWMutex
}

// NewFileStore creates a FileStore rooted at dir. The directory is created on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: filepath.Clean(dir)}
}

func (s *FileStore) pathFor(key string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%016x.json", xxhash.Sum64String(key)))
}

// Get reads the value stored under key.
func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.pathFor(key)
	//nolint:gosec // Path is derived from a hash inside the configured directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, zerr.With(zerr.Wrap(err, "failed to read key file"), "path", path)
	}
	return string(data), true, nil
}

// Set writes value under key. The file is replaced atomically.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create store directory"), "dir", s.dir)
	}

	path := s.pathFor(key)
	tmp, err := os.CreateTemp(s.dir, ".kv-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Already renamed on success

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write temp file")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write key file"), "path", path)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}
