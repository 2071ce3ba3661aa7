// Package storage is the local persistence shim: JSON documents under fixed
// keys, the server-side analogue of browser local storage. Persistence is
// best-effort caching, not a durability guarantee — every failure is logged
// and absorbed, and callers fall back to their in-memory defaults.
package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/campushub/dashboard/internal/pkg/apperrors"
)

// Storage reads and writes JSON blobs under fixed string keys.
type Storage interface {
	// Load unmarshals the value stored under key into dst and returns true.
	// When the key is missing or the stored data is unreadable or malformed
	// it returns false and leaves dst untouched, so callers keep whatever
	// fallback value dst already holds.
	Load(key string, dst interface{}) bool

	// Save stores value under key. Failures are logged and swallowed.
	Save(key string, value interface{})

	// Delete removes the value stored under key, if any.
	Delete(key string)
}

// Open returns a file-backed Storage rooted at dir. When the directory cannot
// be created the shim degrades to a purely in-memory store for this run.
func Open(dir string, logger zerolog.Logger) Storage {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn().Err(err).Str("dir", dir).
			Msg("persistent storage unavailable, falling back to in-memory storage")
		return NewMemoryStorage()
	}
	return &FileStorage{dir: dir, logger: logger}
}

// FileStorage keeps one <key>.json document per key under a directory.
type FileStorage struct {
	dir    string
	logger zerolog.Logger
}

// NewFileStorage creates a FileStorage, creating dir if needed
func NewFileStorage(dir string, logger zerolog.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrPersistenceUnavailable, err.Error())
	}
	return &FileStorage{dir: dir, logger: logger}, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load implements Storage
func (s *FileStorage) Load(key string, dst interface{}) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to read stored state")
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		// Corrupt document: treat as absent rather than failing the caller
		s.logger.Warn().Err(err).Str("key", key).Msg("stored state is malformed, using fallback")
		return false
	}
	return true
}

// Save implements Storage
func (s *FileStorage) Save(key string, value interface{}) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to encode state")
		return
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to persist state")
	}
}

// Delete implements Storage
func (s *FileStorage) Delete(key string) {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to remove stored state")
	}
}

// MemoryStorage is the in-memory backend used in tests and when the file
// backend is unavailable. Values are stored as marshalled JSON so Load/Save
// round-trip semantics match the file backend exactly.
type MemoryStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryStorage creates an empty MemoryStorage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

// Load implements Storage
func (s *MemoryStorage) Load(key string, dst interface{}) bool {
	s.mu.Lock()
	data, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

// Save implements Storage
func (s *MemoryStorage) Save(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
}

// Delete implements Storage
func (s *MemoryStorage) Delete(key string) {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
}
