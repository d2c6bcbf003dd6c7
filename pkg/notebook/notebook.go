// Package notebook is the widget: it ties the note list of one team and
// theme to the form editor and the export pipeline, and turns user
// intents (submit, edit, delete, share, download) into calls on them.
package notebook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/notepad/pkg/core"
	"github.com/aretw0/notepad/pkg/editor"
	"github.com/aretw0/notepad/pkg/export"
)

// Form headings.
const (
	HeadingEdit = "Edit Task"
	HeadingAdd  = "Add New Task"
)

// Config configures a Notebook.
type Config struct {
	Namespace string
	Teams     []core.Team
	Capture   export.CaptureOptions // Team is set by Open
	Export    export.Options
	Now       func() time.Time
	Logger    *slog.Logger
}

// Notebook is one open note list together with its form.
type Notebook struct {
	service *core.Service
	editor  *editor.Editor
	config  Config
	logger  *slog.Logger

	mu       sync.RWMutex
	team     core.Team
	theme    string
	exporter *export.Exporter
}

// New creates a Notebook on top of service. Nothing can be saved before
// Open selects a list.
func New(service *core.Service, config Config) *Notebook {
	if config.Namespace == "" {
		config.Namespace = core.DefaultNamespace
	}
	if config.Teams == nil {
		config.Teams = core.DefaultTeams
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	nb := &Notebook{
		service: service,
		editor:  editor.New(service.IDs(), config.Now),
		config:  config,
		logger:  config.Logger,
	}
	nb.attach(core.Team{}, "")
	return nb
}

// Open switches to the list of team and theme and clears the form.
// Teams outside the catalog are accepted and drawn without an accent.
func (nb *Notebook) Open(ctx context.Context, team, theme string) core.NoteList {
	t, ok := core.LookupTeam(nb.config.Teams, team)
	if !ok {
		t = core.Team{Name: team}
	}

	slot := core.NewSlotKey(nb.config.Namespace, t.Name, theme)
	list := nb.service.Open(ctx, slot)
	nb.attach(t, theme)

	nb.editor.Reset()
	nb.logger.Debug("notebook opened", "slot", slot, "notes", len(list))
	return list
}

// attach rebuilds the export pipeline for team; the card accent follows
// the team color.
func (nb *Notebook) attach(t core.Team, theme string) {
	capture := nb.config.Capture
	capture.Team = t
	if capture.Logger == nil {
		capture.Logger = nb.logger
	}
	exportOpts := nb.config.Export
	if exportOpts.Logger == nil {
		exportOpts.Logger = nb.logger
	}
	capturer := export.NewCapturer(nb.service.Note, capture)

	nb.mu.Lock()
	defer nb.mu.Unlock()
	nb.team = t
	nb.theme = theme
	nb.exporter = export.NewExporter(capturer, exportOpts)
}

// Team returns the team of the open list.
func (nb *Notebook) Team() core.Team {
	nb.mu.RLock()
	defer nb.mu.RUnlock()
	return nb.team
}

// Theme returns the theme of the open list.
func (nb *Notebook) Theme() string {
	nb.mu.RLock()
	defer nb.mu.RUnlock()
	return nb.theme
}

// Notes returns the open list, newest first.
func (nb *Notebook) Notes() core.NoteList {
	return nb.service.Notes()
}

// Editor exposes the form.
func (nb *Notebook) Editor() *editor.Editor {
	return nb.editor
}

// Heading is the title of the form.
func (nb *Notebook) Heading() string {
	if _, ok := nb.editor.Editing(); ok {
		return HeadingEdit
	}
	return HeadingAdd
}

// Submit saves the form. An incomplete form is ignored and reported with
// ok=false. Once the note is in the list the form is cleared, even if
// writing the slot failed; that failure is returned.
func (nb *Notebook) Submit(ctx context.Context) (n core.Note, ok bool, err error) {
	n, ok = nb.editor.Submit()
	if !ok {
		return core.Note{}, false, nil
	}

	err = nb.service.SaveNote(ctx, n)
	if errors.Is(err, core.ErrNoSlot) {
		return n, true, err
	}
	nb.editor.Reset()
	if err != nil {
		return n, true, fmt.Errorf("failed to save note %d: %w", n.ID, err)
	}
	return n, true, nil
}

// Edit loads note id into the form.
func (nb *Notebook) Edit(id int64) error {
	n, ok := nb.service.Note(id)
	if !ok {
		return fmt.Errorf("note %d: %w", id, core.ErrNotFound)
	}
	nb.editor.StartEdit(n)
	return nil
}

// CancelEdit clears the form.
func (nb *Notebook) CancelEdit() {
	nb.editor.Reset()
}

// Delete removes note id. A form editing that note is cleared so a later
// submit does not bring it back.
func (nb *Notebook) Delete(ctx context.Context, id int64) error {
	if target, ok := nb.editor.Editing(); ok && target.ID == id {
		nb.editor.Reset()
	}
	return nb.service.DeleteNote(ctx, id)
}

// Share runs the share pipeline for note id.
func (nb *Notebook) Share(ctx context.Context, id int64) export.Outcome {
	return nb.currentExporter().Share(ctx, id)
}

// Download saves the card of note id and returns its file name.
func (nb *Notebook) Download(ctx context.Context, id int64) (string, error) {
	return nb.currentExporter().Download(ctx, id)
}

// Sync reloads the list when e concerns the open slot.
// An edit whose note vanished from the reloaded list is cancelled.
// It reports whether the list was reloaded.
func (nb *Notebook) Sync(ctx context.Context, e core.Event) bool {
	if core.SlotKey(e.Key) != nb.service.Slot() {
		return false
	}
	if _, err := nb.service.Reload(ctx); err != nil {
		nb.logger.Warn("failed to reload notes", "slot", e.Key, "error", err)
		return false
	}
	if target, ok := nb.editor.Editing(); ok {
		if _, found := nb.service.Note(target.ID); !found {
			nb.logger.Debug("edited note removed externally", "id", target.ID)
			nb.editor.Reset()
		}
	}
	return true
}

func (nb *Notebook) currentExporter() *export.Exporter {
	nb.mu.RLock()
	defer nb.mu.RUnlock()
	return nb.exporter
}
