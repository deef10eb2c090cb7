package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	domainRepo "ads-dental-admin/internal/domain/repository"

	"github.com/spf13/afero"
)

type fileStorage struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
}

// NewFileStorage keeps all entries in a single JSON object at path.
func NewFileStorage(fs afero.Fs, path string) domainRepo.SessionStorage {
	return &fileStorage{fs: fs, path: path}
}

func (s *fileStorage) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := entries[key]
	return value, ok, nil
}

func (s *fileStorage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	entries[key] = value
	return s.save(entries)
}

func (s *fileStorage) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	for _, key := range keys {
		delete(entries, key)
	}
	if len(entries) == 0 {
		if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove session file: %w", err)
		}
		return nil
	}
	return s.save(entries)
}

func (s *fileStorage) load() (map[string]string, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}
	entries := map[string]string{}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}
	return entries, nil
}

func (s *fileStorage) save(entries map[string]string) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	return afero.WriteFile(s.fs, s.path, data, 0o600)
}
