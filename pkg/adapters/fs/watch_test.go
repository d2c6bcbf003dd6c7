package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notepad/pkg/core"
)

func waitEvent(t *testing.T, events <-chan core.Event) core.Event {
	t.Helper()
	select {
	case e, ok := <-events:
		require.True(t, ok, "channel closed early")
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return core.Event{}
}

func TestWatch_ReportsMatchingSlots(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	b := newTestBackend(t)

	events, err := b.Watch(ctx, "succinct-notes-*")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(b.Path, "other.json"), []byte(`[]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(b.Path, "succinct-notes-pink-dark.json"), []byte(`[]`), 0o644))

	e := waitEvent(t, events)
	assert.Equal(t, "succinct-notes-pink-dark", e.Key)
	assert.Contains(t, []core.EventType{core.EventCreate, core.EventModify}, e.Type)

	require.NoError(t, os.Remove(filepath.Join(b.Path, "succinct-notes-pink-dark.json")))
	e = waitEvent(t, events)
	assert.Equal(t, core.EventDelete, e.Type)

	assert.True(t, b.State().(BackendState).WatcherActive)
	assert.NotNil(t, b.State().(BackendState).LastEvent)
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := newTestBackend(t)

	events, err := b.Watch(ctx, "")
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
	assert.Eventually(t, func() bool {
		return !b.State().(BackendState).WatcherActive
	}, time.Second, 10*time.Millisecond)
}

func TestWatch_InvalidPattern(t *testing.T) {
	b := newTestBackend(t)
	_, err := b.Watch(context.Background(), "[")
	assert.Error(t, err)
}
