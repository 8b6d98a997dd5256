package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dakforge/dakforge/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.SaveFile(ctx, "who", "anc-dak", "main", "input/dak.json", `{"id":"anc"}`)
	require.NoError(t, err)

	content, err := store.LoadFile(ctx, "who", "anc-dak", "main", "input/dak.json")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"anc"}`, content)
}

func TestStore_Load_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.LoadFile(context.Background(), "who", "anc-dak", "main", "input/missing.md")

	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestStore_Save_Overwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveFile(ctx, "who", "anc-dak", "main", "input/a.md", "first"))
	require.NoError(t, store.SaveFile(ctx, "who", "anc-dak", "main", "input/a.md", "second"))

	content, err := store.LoadFile(ctx, "who", "anc-dak", "main", "input/a.md")
	require.NoError(t, err)
	assert.Equal(t, "second", content)
}

func TestStore_ListFiles(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveFile(ctx, "who", "anc-dak", "main", "input/tests/t1.json", "{}"))
	require.NoError(t, store.SaveFile(ctx, "who", "anc-dak", "main", "input/tests/t2.json", "{}"))
	require.NoError(t, store.SaveFile(ctx, "who", "anc-dak", "draft", "input/tests/t3.json", "{}"))

	paths, err := store.ListFiles(ctx, "who", "anc-dak", "main", "input/tests")
	require.NoError(t, err)
	assert.Equal(t, []string{"input/tests/t1.json", "input/tests/t2.json"}, paths)
}

func TestStore_DeleteFile(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveFile(ctx, "who", "anc-dak", "main", "input/a.md", "a"))
	require.NoError(t, store.DeleteFile(ctx, "who", "anc-dak", "main", "input/a.md"))

	_, err := store.LoadFile(ctx, "who", "anc-dak", "main", "input/a.md")
	assert.ErrorIs(t, err, domain.ErrFileNotFound)

	err = store.DeleteFile(ctx, "who", "anc-dak", "main", "input/a.md")
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.SaveFile(context.Background(), "who", "anc-dak", "main", "input/a.md", "a"))
	require.NoError(t, store.Close())

	// Reopening replays the migration check without error or data loss.
	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	content, err := store.LoadFile(context.Background(), "who", "anc-dak", "main", "input/a.md")
	require.NoError(t, err)
	assert.Equal(t, "a", content)
}
