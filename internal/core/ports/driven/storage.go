package driven

import "context"

// Storage is the staging ground: an addressable, path-keyed byte store
// scoped by (owner, repo, branch). Implementations may be in-memory,
// local-filesystem, SQLite or GitHub-API-backed.
//
// LoadFile fails with domain.ErrFileNotFound (possibly wrapped) when
// the path is absent. Timeouts and cancellation are the implementation's
// responsibility; the core owns neither.
type Storage interface {
	// LoadFile returns the file content at path as a UTF-8 string.
	LoadFile(ctx context.Context, owner, repo, branch, path string) (string, error)

	// SaveFile writes content at path, creating or overwriting it.
	SaveFile(ctx context.Context, owner, repo, branch, path, content string) error

	// ListFiles returns the paths of all files under pathPrefix.
	ListFiles(ctx context.Context, owner, repo, branch, pathPrefix string) ([]string, error)

	// DeleteFile removes the file at path.
	DeleteFile(ctx context.Context, owner, repo, branch, path string) error
}
