package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/ports/driven"
	"github.com/dakforge/dakforge/internal/logger"
)

// InputPrefix is the path root shared by all component files inside a
// DAK repository.
const InputPrefix = "input/"

// Resolver translates between a source descriptor and concrete content,
// independent of component kind. It owns the input/ prefixing convention
// and delegates all I/O to the Storage port.
type Resolver struct {
	storage driven.Storage
}

// NewResolver creates a resolver backed by the given storage.
func NewResolver(storage driven.Storage) *Resolver {
	return &Resolver{storage: storage}
}

// StoragePath converts a relative URL into the absolute storage path by
// prefixing it with input/. Prefixing is idempotent: a path already
// under input/ is returned unchanged, never doubled.
func (r *Resolver) StoragePath(relativeURL string) string {
	if relativeURL == "" {
		return ""
	}
	if relativeURL == "input" || strings.HasPrefix(relativeURL, InputPrefix) {
		return relativeURL
	}
	return InputPrefix + relativeURL
}

// Resolved is the outcome of resolving one source descriptor.
type Resolved[T domain.Payload] struct {
	// Kind records which variant was resolved.
	Kind domain.SourceKind

	// Payload is set for inline sources; no I/O occurred.
	Payload *T

	// Content is the raw file content for relative-path sources.
	Content string

	// Path is the storage path the content was loaded from.
	Path string

	// Canonical is the external reference for canonical sources, which
	// are never fetched by this layer.
	Canonical string
}

// Resolve produces concrete content for one source descriptor.
//
// Inline sources short-circuit without touching storage. Relative-path
// sources are loaded from storage at the input/-prefixed path; a
// missing file surfaces as the storage's domain.ErrFileNotFound, never
// swallowed. Canonical sources resolve to a reference marker only.
func Resolve[T domain.Payload](ctx context.Context, r *Resolver, repo domain.Repository, src domain.Source[T]) (Resolved[T], error) {
	switch src.Kind() {
	case domain.SourceInline:
		return Resolved[T]{Kind: domain.SourceInline, Payload: src.Instance}, nil

	case domain.SourceCanonical:
		return Resolved[T]{Kind: domain.SourceCanonical, Canonical: src.Canonical}, nil

	case domain.SourceFile:
		path := r.StoragePath(src.RelativeURL)
		logger.Debug("resolving %s from %s", path, repo)
		content, err := r.storage.LoadFile(ctx, repo.Owner, repo.Repo, repo.Branch, path)
		if err != nil {
			return Resolved[T]{}, fmt.Errorf("load %s: %w", path, err)
		}
		return Resolved[T]{Kind: domain.SourceFile, Content: content, Path: path}, nil

	default:
		return Resolved[T]{}, domain.ErrInvalidSource
	}
}
