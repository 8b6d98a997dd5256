// Package github provides a GitHub-API-backed StorageCollaborator:
// the staging ground lives directly on a repository branch, one commit
// per file write.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.Storage = (*Store)(nil)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// ProactiveRate throttles API calls below GitHub's core limit.
	ProactiveRate = 2 // requests per second
)

// Store is a GitHub implementation of driven.Storage.
type Store struct {
	gh      *gh.Client
	limiter *rate.Limiter
}

// NewStore creates a GitHub store authenticated with the given token.
// An empty token yields an unauthenticated client limited to public
// repositories.
func NewStore(ctx context.Context, token string) *Store {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = DefaultTimeout

	return &Store{
		gh:      gh.NewClient(httpClient),
		limiter: rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}
}

// LoadFile returns the file content at path on the given branch.
func (s *Store) LoadFile(ctx context.Context, owner, repo, branch, path string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	file, _, _, err := s.gh.Repositories.GetContents(ctx, owner, repo, path,
		&gh.RepositoryContentGetOptions{Ref: branch})
	if err != nil {
		return "", wrapError(err, path)
	}
	if file == nil {
		return "", fmt.Errorf("%s: is a directory, %w", path, domain.ErrInvalidInput)
	}

	content, err := file.GetContent()
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}
	return content, nil
}

// SaveFile writes content at path as a single commit, creating the
// file or updating it in place.
func (s *Store) SaveFile(ctx context.Context, owner, repo, branch, path, content string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	opts := &gh.RepositoryContentFileOptions{
		Message: gh.Ptr(commitMessage(path)),
		Content: []byte(content),
		Branch:  gh.Ptr(branch),
	}

	// Updating an existing file requires its blob SHA.
	existing, _, _, err := s.gh.Repositories.GetContents(ctx, owner, repo, path,
		&gh.RepositoryContentGetOptions{Ref: branch})
	switch {
	case err == nil && existing != nil:
		opts.SHA = existing.SHA
		_, _, err = s.gh.Repositories.UpdateFile(ctx, owner, repo, path, opts)
	case err == nil:
		return fmt.Errorf("%s: is a directory, %w", path, domain.ErrInvalidInput)
	case isNotFound(err):
		_, _, err = s.gh.Repositories.CreateFile(ctx, owner, repo, path, opts)
	}
	if err != nil {
		return wrapError(err, path)
	}
	return nil
}

// ListFiles returns the paths of all blobs under pathPrefix on the
// branch, using one recursive tree call.
func (s *Store) ListFiles(ctx context.Context, owner, repo, branch, pathPrefix string) ([]string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	tree, _, err := s.gh.Git.GetTree(ctx, owner, repo, branch, true)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, wrapError(err, pathPrefix)
	}

	var paths []string
	for _, entry := range tree.Entries {
		if entry.GetType() != "blob" {
			continue
		}
		if path := entry.GetPath(); strings.HasPrefix(path, pathPrefix) {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// DeleteFile removes the file at path as a single commit.
func (s *Store) DeleteFile(ctx context.Context, owner, repo, branch, path string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	existing, _, _, err := s.gh.Repositories.GetContents(ctx, owner, repo, path,
		&gh.RepositoryContentGetOptions{Ref: branch})
	if err != nil {
		return wrapError(err, path)
	}
	if existing == nil {
		return fmt.Errorf("%s: is a directory, %w", path, domain.ErrInvalidInput)
	}

	_, _, err = s.gh.Repositories.DeleteFile(ctx, owner, repo, path,
		&gh.RepositoryContentFileOptions{
			Message: gh.Ptr("Delete " + path),
			SHA:     existing.SHA,
			Branch:  gh.Ptr(branch),
		})
	if err != nil {
		return wrapError(err, path)
	}
	return nil
}

// commitMessage builds the commit message for a file write.
func commitMessage(path string) string {
	return "Update " + path
}

// isNotFound reports whether err is a GitHub 404.
func isNotFound(err error) bool {
	var ghErr *gh.ErrorResponse
	return errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
}

// wrapError converts go-github errors to domain errors.
func wrapError(err error, path string) error {
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%s: %w", path, domain.ErrFileNotFound)
		case http.StatusUnauthorized:
			return fmt.Errorf("%s: %w", path, domain.ErrAuthInvalid)
		case http.StatusForbidden:
			return fmt.Errorf("%s: %w", path, domain.ErrRateLimited)
		}
	}
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("%s: %w", path, domain.ErrRateLimited)
	}
	return fmt.Errorf("%s: %w", path, err)
}
