package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dakforge/dakforge/internal/core/domain"
)

func TestStore_SaveAndLoad(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	err := store.SaveFile(ctx, "who", "anc-dak", "main", "input/dak.json", "{}")
	require.NoError(t, err)

	content, err := store.LoadFile(ctx, "who", "anc-dak", "main", "input/dak.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", content)
}

func TestStore_Load_NotFound(t *testing.T) {
	store := NewStore()

	_, err := store.LoadFile(context.Background(), "who", "anc-dak", "main", "input/missing.md")

	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestStore_ScopedByBranch(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.SaveFile(ctx, "who", "anc-dak", "main", "input/a.md", "main content"))
	require.NoError(t, store.SaveFile(ctx, "who", "anc-dak", "draft", "input/a.md", "draft content"))

	content, err := store.LoadFile(ctx, "who", "anc-dak", "draft", "input/a.md")
	require.NoError(t, err)
	assert.Equal(t, "draft content", content)
}

func TestStore_ListFiles(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.SaveFile(ctx, "who", "anc-dak", "main", "input/process/a.bpmn", "a"))
	require.NoError(t, store.SaveFile(ctx, "who", "anc-dak", "main", "input/process/b.bpmn", "b"))
	require.NoError(t, store.SaveFile(ctx, "who", "anc-dak", "main", "input/tests/c.json", "c"))

	paths, err := store.ListFiles(ctx, "who", "anc-dak", "main", "input/process")
	require.NoError(t, err)
	assert.Equal(t, []string{"input/process/a.bpmn", "input/process/b.bpmn"}, paths)
}

func TestStore_DeleteFile(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.SaveFile(ctx, "who", "anc-dak", "main", "input/a.md", "a"))
	require.NoError(t, store.DeleteFile(ctx, "who", "anc-dak", "main", "input/a.md"))

	_, err := store.LoadFile(ctx, "who", "anc-dak", "main", "input/a.md")
	assert.ErrorIs(t, err, domain.ErrFileNotFound)

	err = store.DeleteFile(ctx, "who", "anc-dak", "main", "input/a.md")
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestStore_LastWriteWins(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.SaveFile(ctx, "who", "anc-dak", "main", "input/a.md", "first"))
	require.NoError(t, store.SaveFile(ctx, "who", "anc-dak", "main", "input/a.md", "second"))

	content, err := store.LoadFile(ctx, "who", "anc-dak", "main", "input/a.md")
	require.NoError(t, err)
	assert.Equal(t, "second", content)
	assert.Equal(t, 1, store.Len())
}
