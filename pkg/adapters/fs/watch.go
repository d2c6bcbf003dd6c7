package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/notepad/pkg/core"
)

const debounceWindow = 50 * time.Millisecond

// Watch reports changes to slot files whose key matches pattern
// (doublestar syntax, "" matches everything). The channel is closed when
// ctx is done.
func (b *Backend) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid slot pattern %q", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(b.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", b.Path, err)
	}

	known := make(map[string]bool)
	if keys, err := b.Keys(ctx); err == nil {
		for _, k := range keys {
			known[k] = true
		}
	}

	events := make(chan core.Event, 16)
	w := &slotWatcher{
		backend: b,
		pattern: pattern,
		watcher: watcher,
		events:  events,
		known:   known,
		pending: make(map[string]*time.Timer),
		done:    make(chan struct{}),
	}

	b.setWatcherActive(true)
	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		b.config.Logger.Error("watcher panic", "error", err)
		if b.config.ErrorHandler != nil {
			b.config.ErrorHandler(err)
		}
	}))

	return events, nil
}

type slotWatcher struct {
	backend *Backend
	pattern string
	watcher *fsnotify.Watcher
	events  chan core.Event
	known   map[string]bool

	mu      sync.Mutex
	pending map[string]*time.Timer
	wg      sync.WaitGroup
	closed  bool
	done    chan struct{}
}

func (w *slotWatcher) run(ctx context.Context) error {
	defer func() {
		w.drain()
		close(w.events)
		w.backend.setWatcherActive(false)
	}()
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.handle(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.backend.config.Logger.Error("fsnotify error", "error", err)
			if w.backend.config.ErrorHandler != nil {
				w.backend.config.ErrorHandler(err)
			}
		}
	}
}

func (w *slotWatcher) handle(ctx context.Context, event fsnotify.Event) {
	key, ok := keyFromName(filepath.Base(event.Name))
	if !ok {
		return
	}
	if match, _ := doublestar.Match(w.pattern, key); !match {
		return
	}

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		eType = core.EventDelete
		delete(w.known, key)
		w.backend.cache.drop(key)
	case event.Has(fsnotify.Create):
		eType = core.EventCreate
		if w.known[key] {
			eType = core.EventModify
		}
		w.known[key] = true
	case event.Has(fsnotify.Write):
		eType = core.EventModify
		w.known[key] = true
	default:
		return
	}

	w.backend.config.Logger.Debug("slot event", "key", key, "type", eType)
	w.debounce(ctx, core.Event{Type: eType, Key: key, Timestamp: time.Now().Unix()})
}

// debounce coalesces bursts for the same key; the last event wins.
func (w *slotWatcher) debounce(ctx context.Context, e core.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	if t, ok := w.pending[e.Key]; ok && t.Stop() {
		w.wg.Done()
	}
	w.wg.Add(1)
	w.pending[e.Key] = time.AfterFunc(debounceWindow, func() {
		defer w.wg.Done()
		w.mu.Lock()
		delete(w.pending, e.Key)
		w.mu.Unlock()

		w.backend.recordEvent()
		select {
		case w.events <- e:
		case <-ctx.Done():
		case <-w.done:
		}
	})
}

// drain stops accepting events and waits for in-flight timers.
func (w *slotWatcher) drain() {
	w.mu.Lock()
	w.closed = true
	close(w.done)
	for key, t := range w.pending {
		if t.Stop() {
			w.wg.Done()
		}
		delete(w.pending, key)
	}
	w.mu.Unlock()
	w.wg.Wait()
}
