package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/dakforge/dakforge/internal/logger"
)

// Change is one filesystem event inside a repository scope.
type Change struct {
	// Path is the storage path relative to the scope root.
	Path string

	// Removed is true when the file was deleted or renamed away.
	Removed bool
}

// Watch emits a Change for every file created, written, removed or
// renamed under the given scope until ctx is cancelled. New
// subdirectories are picked up as they appear. The channel is closed
// on cancellation or watcher failure.
func (s *Store) Watch(ctx context.Context, owner, repo, branch string) (<-chan Change, error) {
	scope := s.ScopeDir(owner, repo, branch)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := addRecursive(watcher, scope); err != nil {
		watcher.Close()
		return nil, err
	}

	changes := make(chan Change)
	go func() {
		defer close(changes)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				rel, err := filepath.Rel(scope, event.Name)
				if err != nil {
					continue
				}
				rel = filepath.ToSlash(rel)

				// Start watching directories created after the fact.
				if event.Op.Has(fsnotify.Create) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						if err := addRecursive(watcher, event.Name); err != nil {
							logger.Warn("watch %s: %v", rel, err)
						}
						continue
					}
				}

				switch {
				case event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename):
					changes <- Change{Path: rel, Removed: true}
				case event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write):
					changes <- Change{Path: rel}
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error: %v", err)
			}
		}
	}()
	return changes, nil
}

// addRecursive registers dir and every subdirectory with the watcher.
func addRecursive(watcher *fsnotify.Watcher, dir string) error {
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		if strings.HasPrefix(entry.Name(), ".git") {
			return fs.SkipDir
		}
		return watcher.Add(path)
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	return nil
}
