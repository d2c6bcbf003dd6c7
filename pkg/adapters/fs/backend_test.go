package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notepad/pkg/core"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend(Config{Path: t.TempDir()})
	require.NoError(t, b.Initialize(context.Background()))
	return b
}

func TestBackend_SetGet(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	_, err := b.Get(ctx, "succinct-notes-pink-dark")
	assert.ErrorIs(t, err, core.ErrNotFound)

	require.NoError(t, b.Set(ctx, "succinct-notes-pink-dark", []byte(`[]`)))
	got, err := b.Get(ctx, "succinct-notes-pink-dark")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	_, err = os.Stat(filepath.Join(b.Path, "succinct-notes-pink-dark.json"))
	assert.NoError(t, err)
}

func TestBackend_ExternalWriteBypassesCache(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	require.NoError(t, b.Set(ctx, "k", []byte(`[]`)))
	_, err := b.Get(ctx, "k")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(b.Path, "k.json"), []byte(`[{"id":1}]`), 0o644))
	got, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(got))
}

func TestBackend_DeleteAndKeys(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	require.NoError(t, b.Set(ctx, "b", []byte(`[]`)))
	require.NoError(t, b.Set(ctx, "a", []byte(`[]`)))
	require.NoError(t, os.WriteFile(filepath.Join(b.Path, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(b.Path, TempFilePrefix+"123"), []byte("x"), 0o644))

	keys, err := b.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, b.Delete(ctx, "a"))
	require.NoError(t, b.Delete(ctx, "a"), "deleting a missing slot is not an error")

	keys, err = b.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, keys)
}

func TestBackend_InvalidKeys(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	assert.ErrorIs(t, b.Set(ctx, "", []byte(`[]`)), core.ErrEmptySlot)
	for _, key := range []string{"..", "a/b", `a\b`, TempFilePrefix + "x"} {
		assert.Error(t, b.Set(ctx, key, []byte(`[]`)), key)
	}
}

func TestBackend_ReadOnly(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "k.json"), []byte(`[]`), 0o644))

	b := NewBackend(Config{Path: dir, ReadOnly: true})
	require.NoError(t, b.Initialize(ctx))

	got, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	assert.ErrorIs(t, b.Set(ctx, "k", []byte(`[{}]`)), core.ErrReadOnly)
	assert.ErrorIs(t, b.Delete(ctx, "k"), core.ErrReadOnly)
}

func TestBackend_MustExist(t *testing.T) {
	b := NewBackend(Config{Path: filepath.Join(t.TempDir(), "missing"), MustExist: true})
	assert.Error(t, b.Initialize(context.Background()))
}

func TestBackend_WithStore(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)
	store := core.NewStore(b, nil)

	slot := core.NewSlotKey(core.DefaultNamespace, "Pink", "dark")
	list := core.NoteList{{ID: 7, Title: "Daily", Content: "stand-up"}}
	require.NoError(t, store.Replace(ctx, slot, list))

	got := store.Load(ctx, slot)
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].ID)

	state := b.State().(BackendState)
	assert.Equal(t, b.Path, state.Path)
	assert.Equal(t, 1, state.CacheSize)
}
