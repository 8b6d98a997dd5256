// Package memory provides an in-memory StorageCollaborator, used in
// tests and dry runs.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.Storage = (*Store)(nil)

// Store is an in-memory implementation of driven.Storage. Files are
// keyed by (owner, repo, branch, path). Concurrent writes to the same
// path are last-write-wins, matching the staging-ground contract.
type Store struct {
	mu    sync.RWMutex
	files map[string]string
}

// NewStore creates a new in-memory storage.
func NewStore() *Store {
	return &Store{files: make(map[string]string)}
}

// LoadFile returns the file content at path.
func (s *Store) LoadFile(_ context.Context, owner, repo, branch, path string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.files[key(owner, repo, branch, path)]
	if !ok {
		return "", fmt.Errorf("%s: %w", path, domain.ErrFileNotFound)
	}
	return content, nil
}

// SaveFile writes content at path, creating or overwriting it.
func (s *Store) SaveFile(_ context.Context, owner, repo, branch, path, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[key(owner, repo, branch, path)] = content
	return nil
}

// ListFiles returns all paths under pathPrefix in sorted order.
func (s *Store) ListFiles(_ context.Context, owner, repo, branch, pathPrefix string) ([]string, error) {
	scope := key(owner, repo, branch, "")
	s.mu.RLock()
	defer s.mu.RUnlock()

	var paths []string
	for k := range s.files {
		if !strings.HasPrefix(k, scope) {
			continue
		}
		path := strings.TrimPrefix(k, scope)
		if strings.HasPrefix(path, pathPrefix) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// DeleteFile removes the file at path.
func (s *Store) DeleteFile(_ context.Context, owner, repo, branch, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(owner, repo, branch, path)
	if _, ok := s.files[k]; !ok {
		return fmt.Errorf("%s: %w", path, domain.ErrFileNotFound)
	}
	delete(s.files, k)
	return nil
}

// Len returns the number of stored files. Test helper.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}

func key(owner, repo, branch, path string) string {
	return owner + "\x00" + repo + "\x00" + branch + "\x00" + path
}
