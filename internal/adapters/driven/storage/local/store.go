// Package local provides a local-filesystem StorageCollaborator. Each
// (owner, repo, branch) scope maps to a directory tree under the
// store's root, which makes a checked-out DAK repository directly
// addressable as a staging ground.
package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.Storage = (*Store)(nil)

// Store is a filesystem implementation of driven.Storage rooted at a
// base directory. Files live at <root>/<owner>/<repo>/<branch>/<path>.
type Store struct {
	root string
}

// NewStore creates a filesystem store rooted at root, creating the
// directory if needed.
func NewStore(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: root directory required", domain.ErrInvalidInput)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create root %s: %w", root, err)
	}
	return &Store{root: root}, nil
}

// Root returns the store's base directory.
func (s *Store) Root() string {
	return s.root
}

// ScopeDir returns the directory backing one repository scope.
func (s *Store) ScopeDir(owner, repo, branch string) string {
	return filepath.Join(s.root, owner, repo, branch)
}

// LoadFile returns the file content at path.
func (s *Store) LoadFile(_ context.Context, owner, repo, branch, path string) (string, error) {
	data, err := os.ReadFile(s.filePath(owner, repo, branch, path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", path, domain.ErrFileNotFound)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// SaveFile writes content at path, creating parent directories as
// needed.
func (s *Store) SaveFile(_ context.Context, owner, repo, branch, path, content string) error {
	full := s.filePath(owner, repo, branch, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ListFiles returns all file paths under pathPrefix in sorted order.
// A missing prefix directory yields an empty list, not an error.
func (s *Store) ListFiles(_ context.Context, owner, repo, branch, pathPrefix string) ([]string, error) {
	scope := s.ScopeDir(owner, repo, branch)

	var paths []string
	err := filepath.WalkDir(scope, func(full string, entry fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(scope, full)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if strings.HasPrefix(rel, pathPrefix) {
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("list %s: %w", pathPrefix, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// DeleteFile removes the file at path.
func (s *Store) DeleteFile(_ context.Context, owner, repo, branch, path string) error {
	err := os.Remove(s.filePath(owner, repo, branch, path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, domain.ErrFileNotFound)
		}
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

func (s *Store) filePath(owner, repo, branch, path string) string {
	return filepath.Join(s.ScopeDir(owner, repo, branch), filepath.FromSlash(path))
}
