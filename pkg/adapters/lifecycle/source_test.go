package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notepad/pkg/core"
)

func TestSource_ForwardsFilteredEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan core.Event, 3)
	in <- core.Event{Type: core.EventModify, Key: "succinct-notes-pink-dark"}
	in <- core.Event{Type: core.EventModify, Key: "other"}
	in <- core.Event{Type: core.EventDelete, Key: "succinct-notes-pink-dark"}
	close(in)

	src := NewSource(in, func(e core.Event) bool { return e.Key != "other" })
	require.NoError(t, src.Start(ctx))

	var got []core.Event
	timeout := time.After(2 * time.Second)
	for done := false; !done; {
		select {
		case e, ok := <-src.Events():
			if !ok {
				done = true
				continue
			}
			got = append(got, e.(core.Event))
		case <-timeout:
			t.Fatal("timed out")
		}
	}

	require.Len(t, got, 2)
	assert.Equal(t, core.EventModify, got[0].Type)
	assert.Equal(t, core.EventDelete, got[1].Type)
}

func TestSource_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := NewSource(make(chan core.Event), nil)
	require.NoError(t, src.Start(ctx))
	cancel()

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("events not closed after cancel")
	}
}
