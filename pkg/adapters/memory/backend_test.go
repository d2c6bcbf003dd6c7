package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/notepad/pkg/adapters/memory"
	"github.com/aretw0/notepad/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend(t *testing.T) {
	ctx := context.Background()
	b := memory.New()

	_, err := b.Get(ctx, "missing")
	assert.ErrorIs(t, err, core.ErrNotFound)

	require.NoError(t, b.Set(ctx, "b", []byte("2")))
	require.NoError(t, b.Set(ctx, "a", []byte("1")))

	got, err := b.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", string(got))

	keys, err := b.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, b.Delete(ctx, "a"))
	require.NoError(t, b.Delete(ctx, "a"))
	keys, _ = b.Keys(ctx)
	assert.Equal(t, []string{"b"}, keys)
}

func TestBackend_FailWrites(t *testing.T) {
	ctx := context.Background()
	b := memory.New()
	b.FailWrites = errors.New("quota exceeded")

	assert.EqualError(t, b.Set(ctx, "k", []byte("v")), "quota exceeded")
	_, err := b.Get(ctx, "k")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestBackend_ReadOnly(t *testing.T) {
	ctx := context.Background()
	b := memory.New()
	require.NoError(t, b.Set(ctx, "k", []byte("v")))
	b.ReadOnly = true

	assert.ErrorIs(t, b.Set(ctx, "k", []byte("w")), core.ErrReadOnly)
	assert.ErrorIs(t, b.Delete(ctx, "k"), core.ErrReadOnly)

	got, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
	assert.Equal(t, "memory", b.ComponentType())
	assert.Equal(t, true, b.State().(map[string]any)["read_only"])
}
