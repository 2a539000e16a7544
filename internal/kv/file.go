package kv

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one file per key under a data directory. It is the default
// backend and plays the part the browser's local storage plays in the
// original platform.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}

	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read key %s: %w", key, err)
	}

	return string(data), true, nil
}

func (s *FileStore) Set(key, value string) error {
	// Write-then-rename so a failed write never truncates the stored blob.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("write key %s: %w", key, err)
	}

	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("store key %s: %w", key, err)
	}

	return nil
}

func (s *FileStore) Remove(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove key %s: %w", key, err)
	}

	return nil
}
