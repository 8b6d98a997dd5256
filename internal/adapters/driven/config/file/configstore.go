// Package file provides the TOML-backed configuration store holding
// the default repository coordinates and storage settings for the CLI.
package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/dakforge/dakforge/internal/core/domain"
)

// Config is the persisted CLI configuration.
type Config struct {
	// Owner, Repo and Branch are the default repository coordinates.
	Owner  string `toml:"owner"`
	Repo   string `toml:"repo"`
	Branch string `toml:"branch"`

	// Token is the GitHub personal access token for the github backend.
	Token string `toml:"token,omitempty"`

	// Storage selects the staging-ground backend: local, sqlite or
	// github. Defaults to local.
	Storage string `toml:"storage"`

	// StagingDir is the root directory of the local backend.
	StagingDir string `toml:"staging_dir"`
}

// Repository returns the configured coordinates as a domain value,
// defaulting the branch to main.
func (c Config) Repository() domain.Repository {
	branch := c.Branch
	if branch == "" {
		branch = "main"
	}
	return domain.Repository{Owner: c.Owner, Repo: c.Repo, Branch: branch}
}

// Store is a file-based configuration store using TOML.
// Configuration lives in a single file inside the dakforge config
// directory.
type Store struct {
	mu       sync.RWMutex
	filePath string
	config   Config
}

// NewStore creates a TOML-based config store.
// If configDir is empty, defaults to ~/.dakforge/config.toml.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".dakforge")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &Store{
		filePath: filepath.Join(configDir, "config.toml"),
		config:   Config{Storage: "local"},
	}

	if err := s.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return s, nil
}

// Config returns a copy of the current configuration.
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// SetConfig replaces the configuration and persists it.
func (s *Store) SetConfig(cfg Config) error {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
	return s.Save()
}

// Load reads the config file from disk.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	if cfg.Storage == "" {
		cfg.Storage = "local"
	}
	s.config = cfg
	return nil
}

// Save writes the config file to disk with owner-only permissions,
// since it may hold a token.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := toml.Marshal(s.config)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}
