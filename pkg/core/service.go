package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Service holds the note list of the active slot and keeps it in sync
// with the Store.
type Service struct {
	mu     sync.RWMutex
	store  *Store
	ids    *IDSource
	logger *slog.Logger

	slot  SlotKey
	notes NoteList
}

// NewService creates a new Service.
func NewService(store *Store, ids *IDSource, logger *slog.Logger) *Service {
	if ids == nil {
		ids = NewIDSource(nil)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{store: store, ids: ids, logger: logger, notes: NoteList{}}
}

// Open makes slot the active slot and loads its list.
func (s *Service) Open(ctx context.Context, slot SlotKey) NoteList {
	list := s.store.Load(ctx, slot)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.slot = slot
	s.notes = list
	s.ids.Observe(list.MaxID())
	return s.snapshot()
}

// Reload re-reads the active slot, discarding the in-memory list.
func (s *Service) Reload(ctx context.Context) (NoteList, error) {
	s.mu.RLock()
	slot := s.slot
	s.mu.RUnlock()
	if slot == "" {
		return nil, ErrNoSlot
	}
	return s.Open(ctx, slot), nil
}

// Slot returns the active slot key.
func (s *Service) Slot() SlotKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slot
}

// IDs returns the id source shared with the editor.
func (s *Service) IDs() *IDSource {
	return s.ids
}

// Notes returns a copy of the active list.
func (s *Service) Notes() NoteList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Note returns the note with the given id from the active list.
func (s *Service) Note(id int64) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notes.Find(id)
}

// SaveNote upserts n into the active list and persists the result.
// The in-memory list is updated even when persisting fails; the returned
// error reports the failed write.
func (s *Service) SaveNote(ctx context.Context, n Note) error {
	if n.Title == "" || n.Content == "" {
		return errors.New("note title and content cannot be empty")
	}
	return s.mutate(ctx, func(list NoteList) NoteList {
		return Upsert(list, n)
	})
}

// DeleteNote removes the note with the given id and persists the result.
// Deleting an unknown id still rewrites the slot and is not an error.
func (s *Service) DeleteNote(ctx context.Context, id int64) error {
	return s.mutate(ctx, func(list NoteList) NoteList {
		return Remove(list, id)
	})
}

func (s *Service) mutate(ctx context.Context, fn func(NoteList) NoteList) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slot == "" {
		return ErrNoSlot
	}

	updated := fn(s.notes)
	s.notes = updated
	s.ids.Observe(updated.MaxID())

	if err := s.store.Replace(ctx, s.slot, updated); err != nil {
		s.logger.Warn("keeping unsaved notes in memory", "slot", s.slot, "error", err)
		return err
	}
	return nil
}

// Watch observes external changes of slots if the backend supports it.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.store.Backend().(Watchable)
	if !ok {
		return nil, fmt.Errorf("backend does not support watching")
	}
	return w.Watch(ctx, pattern)
}

// Slots lists the slot keys known to the backend.
func (s *Service) Slots(ctx context.Context) ([]string, error) {
	return s.store.Backend().Keys(ctx)
}

func (s *Service) snapshot() NoteList {
	out := make(NoteList, len(s.notes))
	copy(out, s.notes)
	return out
}
