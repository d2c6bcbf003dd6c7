// Package editor holds the transient draft of the note being written.
//
// An Editor does not persist anything: Submit turns the draft into a
// core.Note which the caller hands to core.Service.SaveNote, then Reset
// clears the draft.
package editor

import (
	"sync"
	"time"

	"github.com/aretw0/notepad/pkg/core"
)

// Draft is the text currently typed into the form.
type Draft struct {
	Title   string
	Content string
}

// IDSource issues fresh note ids.
type IDSource interface {
	Next() int64
}

// Editor tracks a draft and an optional edit target.
type Editor struct {
	mu     sync.Mutex
	draft  Draft
	target *core.Note
	ids    IDSource
	now    func() time.Time
}

// New creates an Editor. A nil clock means time.Now.
func New(ids IDSource, now func() time.Time) *Editor {
	if now == nil {
		now = time.Now
	}
	return &Editor{ids: ids, now: now}
}

// SetTitle updates the draft title.
func (e *Editor) SetTitle(title string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Title = title
}

// SetContent updates the draft content.
func (e *Editor) SetContent(content string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Content = content
}

// Draft returns the current draft.
func (e *Editor) Draft() Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// StartEdit seeds the draft from n and makes n the edit target.
func (e *Editor) StartEdit(n core.Note) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.target = &n
	e.draft = Draft{Title: n.Title, Content: n.Content}
}

// Editing returns the edit target, if any.
func (e *Editor) Editing() (core.Note, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.target == nil {
		return core.Note{}, false
	}
	return *e.target, true
}

// Submit builds a note from the draft.
// It returns false, and leaves all state untouched, when the title or the
// content is empty. Editing keeps the target's id and creation time and
// stamps UpdatedAt; otherwise a new note with a fresh id is produced.
func (e *Editor) Submit() (core.Note, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.draft.Title == "" || e.draft.Content == "" {
		return core.Note{}, false
	}

	now := e.now().UTC().Truncate(time.Millisecond)

	if e.target != nil {
		updated := now
		if updated.Before(e.target.CreatedAt) {
			updated = e.target.CreatedAt
		}
		return core.Note{
			ID:        e.target.ID,
			Title:     e.draft.Title,
			Content:   e.draft.Content,
			CreatedAt: e.target.CreatedAt,
			UpdatedAt: &updated,
		}, true
	}

	return core.Note{
		ID:        e.ids.Next(),
		Title:     e.draft.Title,
		Content:   e.draft.Content,
		CreatedAt: now,
	}, true
}

// Reset clears the draft and the edit target.
func (e *Editor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = Draft{}
	e.target = nil
}
