package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notepad/pkg/core"
)

func TestBackend_CRUD(t *testing.T) {
	ctx := context.Background()
	b, err := New(":memory:")
	require.NoError(t, err)
	defer b.Close()

	_, err = b.Get(ctx, "k")
	assert.ErrorIs(t, err, core.ErrNotFound)

	require.NoError(t, b.Set(ctx, "k", []byte(`[]`)))
	require.NoError(t, b.Set(ctx, "k", []byte(`[{"id":1}]`)))
	require.NoError(t, b.Set(ctx, "a", []byte(`[]`)))

	got, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(got))

	keys, err := b.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "k"}, keys)

	require.NoError(t, b.Delete(ctx, "k"))
	_, err = b.Get(ctx, "k")
	assert.ErrorIs(t, err, core.ErrNotFound)

	assert.Equal(t, 1, b.State().(BackendState).SlotsStored)
	assert.ErrorIs(t, b.Set(ctx, "", nil), core.ErrEmptySlot)
}

func TestBackend_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notepad.db")
	slot := core.NewSlotKey(core.DefaultNamespace, "Blue", "light")
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	b, err := New(path)
	require.NoError(t, err)
	store := core.NewStore(b, nil)
	require.NoError(t, store.Replace(ctx, slot, core.NoteList{{ID: 1, Title: "A", Content: "B", CreatedAt: created}}))
	require.NoError(t, b.Close())

	b, err = New(path)
	require.NoError(t, err)
	defer b.Close()

	got := core.NewStore(b, nil).Load(ctx, slot)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Title)
	assert.True(t, created.Equal(got[0].CreatedAt))
}

func TestBackend_ReadOnly(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notepad.db")

	b, err := New(path)
	require.NoError(t, err)
	require.NoError(t, b.Set(ctx, "k", []byte(`[]`)))
	require.NoError(t, b.Close())

	ro, err := NewReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	got, err := ro.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
	assert.True(t, ro.ReadOnly())
	assert.ErrorIs(t, ro.Set(ctx, "k", []byte(`[{}]`)), core.ErrReadOnly)
	assert.ErrorIs(t, ro.Delete(ctx, "k"), core.ErrReadOnly)

	got, err = ro.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestBackend_ReadOnlyMissingFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notepad.db")

	ro, err := NewReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	_, err = ro.Get(ctx, "k")
	assert.ErrorIs(t, err, core.ErrNotFound)
	keys, err := ro.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.NoFileExists(t, path)
}

func TestBackend_StateCountFailure(t *testing.T) {
	b, err := New(":memory:")
	require.NoError(t, err)
	require.NoError(t, b.Close())

	assert.Equal(t, -1, b.State().(BackendState).SlotsStored)
}
