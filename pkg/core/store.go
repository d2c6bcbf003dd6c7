package core

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// Store mirrors note lists to slots of a Backend.
// Load and Replace are the only operations that touch the backend.
type Store struct {
	backend Backend
	logger  *slog.Logger
}

// NewStore creates a Store on top of backend.
// A nil logger discards log output.
func NewStore(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{backend: backend, logger: logger}
}

// Backend returns the underlying backend.
func (s *Store) Backend() Backend {
	return s.backend
}

// Load reads the note list stored in slot.
// A missing, unreadable or malformed slot yields an empty list; the cause
// is logged and never returned.
func (s *Store) Load(ctx context.Context, slot SlotKey) NoteList {
	if slot == "" {
		s.logger.Error("load skipped", "error", ErrEmptySlot)
		return NoteList{}
	}

	data, err := s.backend.Get(ctx, string(slot))
	if errors.Is(err, ErrNotFound) {
		return NoteList{}
	}
	if err != nil {
		s.logger.Error("failed to read slot", "slot", slot, "error", err)
		return NoteList{}
	}

	list, dropped, err := decode(data)
	if err != nil {
		s.logger.Error("failed to parse slot", "slot", slot, "error", err)
		return NoteList{}
	}
	if dropped > 0 {
		s.logger.Warn("skipped invalid notes", "slot", slot, "dropped", dropped)
	}

	s.logger.Debug("slot loaded", "slot", slot, "notes", len(list))
	return list
}

// Replace writes list to slot, replacing any prior value.
func (s *Store) Replace(ctx context.Context, slot SlotKey, list NoteList) error {
	if slot == "" {
		return ErrEmptySlot
	}

	data, err := Encode(list)
	if err != nil {
		s.logger.Error("failed to encode notes", "slot", slot, "error", err)
		return err
	}

	if err := s.backend.Set(ctx, string(slot), data); err != nil {
		s.logger.Error("failed to save slot", "slot", slot, "error", err)
		return fmt.Errorf("failed to save slot %s: %w", slot, err)
	}

	s.logger.Debug("slot saved", "slot", slot, "notes", len(list))
	return nil
}

// Encode serializes a note list as a JSON array. A nil list encodes as [].
func Encode(list NoteList) ([]byte, error) {
	if list == nil {
		list = NoteList{}
	}
	return json.Marshal(list)
}

// Decode parses a JSON array of notes. Blank input decodes to an empty list.
// Records without a title or content, and repeats of an id already seen,
// are skipped.
func Decode(data []byte) (NoteList, error) {
	list, _, err := decode(data)
	return list, err
}

func decode(data []byte) (NoteList, int, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return NoteList{}, 0, nil
	}
	var raw NoteList
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("invalid note list: %w", err)
	}

	list := make(NoteList, 0, len(raw))
	seen := make(map[int64]bool, len(raw))
	for _, n := range raw {
		if n.Title == "" || n.Content == "" || seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		list = append(list, n)
	}
	return list, len(raw) - len(list), nil
}
