package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dakforge/dakforge/internal/adapters/driven/storage/memory"
	"github.com/dakforge/dakforge/internal/core/domain"
)

var testRepo = domain.Repository{Owner: "who", Repo: "anc-dak", Branch: "main"}

// countingStorage wraps the in-memory store and records LoadFile calls.
type countingStorage struct {
	*memory.Store
	loads []string
}

func (c *countingStorage) LoadFile(ctx context.Context, owner, repo, branch, path string) (string, error) {
	c.loads = append(c.loads, path)
	return c.Store.LoadFile(ctx, owner, repo, branch, path)
}

func TestResolver_StoragePath_PrefixesInput(t *testing.T) {
	r := NewResolver(memory.NewStore())

	assert.Equal(t, "input/foo.md", r.StoragePath("foo.md"))
	assert.Equal(t, "input/process/a.bpmn", r.StoragePath("process/a.bpmn"))
}

func TestResolver_StoragePath_Idempotent(t *testing.T) {
	r := NewResolver(memory.NewStore())

	assert.Equal(t, "input/foo.md", r.StoragePath("input/foo.md"))
	assert.Equal(t, "input/foo.md", r.StoragePath(r.StoragePath("foo.md")))
}

func TestResolver_StoragePath_Empty(t *testing.T) {
	r := NewResolver(memory.NewStore())

	assert.Equal(t, "", r.StoragePath(""))
}

func TestResolve_File_LoadsPrefixedPathOnce(t *testing.T) {
	storage := &countingStorage{Store: memory.NewStore()}
	ctx := context.Background()
	require.NoError(t, storage.SaveFile(ctx, "who", "anc-dak", "main", "input/foo.md", "# Foo"))
	r := NewResolver(storage)

	// Both spellings resolve to the same storage path.
	for _, relative := range []string{"foo.md", "input/foo.md"} {
		resolved, err := Resolve(ctx, r, testRepo, domain.FileSource[domain.UserScenario](relative))
		require.NoError(t, err)
		assert.Equal(t, domain.SourceFile, resolved.Kind)
		assert.Equal(t, "# Foo", resolved.Content)
		assert.Equal(t, "input/foo.md", resolved.Path)
	}
	assert.Equal(t, []string{"input/foo.md", "input/foo.md"}, storage.loads)
}

func TestResolve_Inline_NeverTouchesStorage(t *testing.T) {
	storage := &countingStorage{Store: memory.NewStore()}
	r := NewResolver(storage)
	payload := domain.Persona{ID: "Nurse", Title: "Nurse"}

	resolved, err := Resolve(context.Background(), r, testRepo, domain.InlineSource(payload))

	require.NoError(t, err)
	assert.Equal(t, domain.SourceInline, resolved.Kind)
	require.NotNil(t, resolved.Payload)
	assert.Equal(t, payload, *resolved.Payload)
	assert.Empty(t, storage.loads)
}

func TestResolve_Canonical_IsNoOp(t *testing.T) {
	storage := &countingStorage{Store: memory.NewStore()}
	r := NewResolver(storage)
	url := "https://smart.who.int/anc/ActorDefinition/Midwife"

	resolved, err := Resolve(context.Background(), r, testRepo, domain.CanonicalSource[domain.Persona](url))

	require.NoError(t, err)
	assert.Equal(t, domain.SourceCanonical, resolved.Kind)
	assert.Equal(t, url, resolved.Canonical)
	assert.Empty(t, storage.loads)
}

func TestResolve_MissingFile_PropagatesNotFound(t *testing.T) {
	r := NewResolver(memory.NewStore())

	_, err := Resolve(context.Background(), r, testRepo, domain.FileSource[domain.Persona]("fsh/actors/Ghost.fsh"))

	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestResolve_InvalidDescriptor(t *testing.T) {
	r := NewResolver(memory.NewStore())

	_, err := Resolve(context.Background(), r, testRepo, domain.Source[domain.Persona]{})

	assert.ErrorIs(t, err, domain.ErrInvalidSource)
}
