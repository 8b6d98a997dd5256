package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/ports/driven"
	"github.com/dakforge/dakforge/internal/logger"
)

// SaveMode selects how a payload is persisted.
type SaveMode int

const (
	// SaveFile serializes the payload and writes it to storage.
	SaveFile SaveMode = iota

	// SaveInline embeds the payload in the collection's source list
	// without any I/O.
	SaveInline
)

// SaveOptions controls a Collection.Save call.
type SaveOptions struct {
	// Mode is the persistence mode.
	Mode SaveMode

	// Path optionally overrides the adapter's path convention for
	// file saves.
	Path string
}

// SourcesChangedFunc is invoked after a save mutates the source list,
// with a copy of the updated list. Callers use it to persist the owning
// DAK aggregate's metadata.
type SourcesChangedFunc[T domain.Payload] func(sources []domain.Source[T])

// Collection is the generic per-kind component object: it owns a
// mutable ordered list of source descriptors for one component type
// and exposes the uniform retrieve/save/validate contract, delegating
// format-specific work to its adapter.
//
// The source list is guarded by a mutex so concurrent saves serialize
// their appends; writes to the same storage path remain last-write-wins
// at the storage layer.
type Collection[T domain.Payload] struct {
	adapter  driven.ComponentAdapter[T]
	storage  driven.Storage
	resolver *Resolver

	mu               sync.Mutex
	repo             domain.Repository
	sources          []domain.Source[T]
	onSourcesChanged SourcesChangedFunc[T]
}

// CollectionOption configures a Collection at construction.
type CollectionOption[T domain.Payload] func(*Collection[T])

// WithSourcesChanged injects the sources-changed callback.
func WithSourcesChanged[T domain.Payload](fn SourcesChangedFunc[T]) CollectionOption[T] {
	return func(c *Collection[T]) {
		c.onSourcesChanged = fn
	}
}

// NewCollection creates a component collection bound to one
// (repository, resolver, storage) triple and one adapter.
func NewCollection[T domain.Payload](
	repo domain.Repository,
	resolver *Resolver,
	storage driven.Storage,
	adapter driven.ComponentAdapter[T],
	opts ...CollectionOption[T],
) *Collection[T] {
	c := &Collection[T]{
		repo:     repo,
		resolver: resolver,
		storage:  storage,
		adapter:  adapter,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Type returns the component kind this collection manages.
func (c *Collection[T]) Type() domain.ComponentType {
	return c.adapter.ComponentType()
}

// Repository returns the current storage scope.
func (c *Collection[T]) Repository() domain.Repository {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.repo
}

// UpdateRepository rebinds the collection to a different storage scope.
// The source list is unchanged.
func (c *Collection[T]) UpdateRepository(repo domain.Repository) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.repo = repo
}

// Sources returns a copy of the current source list in insertion order.
func (c *Collection[T]) Sources() []domain.Source[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copySourcesLocked()
}

// AddSource appends a source descriptor. No de-duplication is
// performed: duplicate relative URLs are a caller error.
func (c *Collection[T]) AddSource(src domain.Source[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources = append(c.sources, src)
}

// RetrieveAll resolves every source in list order and returns the
// parsed payloads. Inline sources short-circuit to their embedded
// payload; canonical sources are external references and are skipped.
// Storage failures propagate to the caller.
func (c *Collection[T]) RetrieveAll(ctx context.Context) ([]T, error) {
	repo, sources := c.snapshot()

	items := make([]T, 0, len(sources))
	for i, src := range sources {
		resolved, err := Resolve(ctx, c.resolver, repo, src)
		if err != nil {
			return nil, fmt.Errorf("%s source %d: %w", c.Type(), i, err)
		}
		switch resolved.Kind {
		case domain.SourceInline:
			items = append(items, *resolved.Payload)
		case domain.SourceFile:
			payload, err := c.adapter.Parse(resolved.Path, resolved.Content)
			if err != nil {
				return nil, fmt.Errorf("%s source %d: parse %s: %w", c.Type(), i, resolved.Path, err)
			}
			items = append(items, payload)
		case domain.SourceCanonical:
			logger.Debug("skipping canonical source %s", resolved.Canonical)
		}
	}
	return items, nil
}

// RetrieveByID returns the first payload whose id matches, or nil when
// no payload matches. Absence is not a failure.
func (c *Collection[T]) RetrieveByID(ctx context.Context, id string) (*T, error) {
	items, err := c.RetrieveAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ComponentID() == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// Save persists a payload. For SaveFile the adapter determines the
// path (unless opts.Path overrides it), serializes the payload and
// writes it through storage, then a new relative-path source is
// appended. For SaveInline an inline source is appended without I/O.
// Either way the sources-changed callback fires with the updated list.
func (c *Collection[T]) Save(ctx context.Context, payload T, opts SaveOptions) error {
	var src domain.Source[T]

	switch opts.Mode {
	case SaveFile:
		path := opts.Path
		if path == "" {
			path = c.adapter.FilePath(payload)
		}
		path = c.resolver.StoragePath(path)

		content, err := c.adapter.Serialize(payload)
		if err != nil {
			return fmt.Errorf("serialize %s: %w", c.Type(), err)
		}

		repo := c.Repository()
		if err := c.storage.SaveFile(ctx, repo.Owner, repo.Repo, repo.Branch, path, content); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		logger.Debug("saved %s component to %s", c.Type(), path)
		src = domain.FileSource[T](path)

	case SaveInline:
		src = domain.InlineSource(payload)

	default:
		return fmt.Errorf("%w: unknown save mode %d", domain.ErrInvalidInput, opts.Mode)
	}

	c.mu.Lock()
	c.sources = append(c.sources, src)
	updated := c.copySourcesLocked()
	callback := c.onSourcesChanged
	c.mu.Unlock()

	if callback != nil {
		callback(updated)
	}
	return nil
}

// Validate applies the adapter's component-specific rules. Structural
// problems are reported in the result, never raised as errors.
func (c *Collection[T]) Validate(payload T) domain.ValidationResult {
	return c.adapter.Validate(payload)
}

// Discover lists the component's directory in storage and appends one
// relative-path source per file matching the adapter's naming
// convention. Paths already present in the source list are not added
// again, so repeated discovery is stable.
func (c *Collection[T]) Discover(ctx context.Context) error {
	repo := c.Repository()
	paths, err := c.storage.ListFiles(ctx, repo.Owner, repo.Repo, repo.Branch, c.adapter.Directory())
	if err != nil {
		return fmt.Errorf("list %s: %w", c.adapter.Directory(), err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	known := make(map[string]bool, len(c.sources))
	for _, src := range c.sources {
		if src.RelativeURL != "" {
			known[c.resolver.StoragePath(src.RelativeURL)] = true
		}
	}
	for _, path := range paths {
		if !c.adapter.Owns(path) || known[path] {
			continue
		}
		c.sources = append(c.sources, domain.FileSource[T](path))
	}
	return nil
}

// ValidateAll resolves and validates every source, producing one
// combined report. Unlike RetrieveAll, a bad file does not stop the
// batch: undecodable content and missing files become error issues and
// validation continues with the next source.
func (c *Collection[T]) ValidateAll(ctx context.Context) domain.ValidationResult {
	repo, sources := c.snapshot()
	result := domain.NewValidationResult()
	component := c.Type().String()

	for i, src := range sources {
		resolved, err := Resolve(ctx, c.resolver, repo, src)
		if err != nil {
			code := domain.CodeInvalidSource
			if src.Kind() != domain.SourceInvalid {
				code = "FILE_NOT_FOUND"
			}
			result.AddError(code, fmt.Sprintf("source %d: %v", i, err), component)
			continue
		}

		switch resolved.Kind {
		case domain.SourceInline:
			result.Merge(c.adapter.Validate(*resolved.Payload))
		case domain.SourceFile:
			payload, err := c.adapter.Parse(resolved.Path, resolved.Content)
			if err != nil {
				result.AddError(domain.CodeInvalidJSON, fmt.Sprintf("%s: %v", resolved.Path, err), component)
				continue
			}
			result.Merge(c.adapter.Validate(payload))
		case domain.SourceCanonical:
			// External references are read-only and validated by their
			// publishing DAK.
		}
	}
	return result
}

func (c *Collection[T]) snapshot() (domain.Repository, []domain.Source[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.repo, c.copySourcesLocked()
}

func (c *Collection[T]) copySourcesLocked() []domain.Source[T] {
	out := make([]domain.Source[T], len(c.sources))
	copy(out, c.sources)
	return out
}
