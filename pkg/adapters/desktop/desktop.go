// Package desktop connects the export pipeline to the local machine: the
// system clipboard as a share target, the default browser for links and a
// terminal writer for alerts.
package desktop

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"

	"github.com/aretw0/notepad/pkg/export"
)

// Clipboard shares captions by copying them to the system clipboard.
// It cannot carry files, so image payloads are refused.
type Clipboard struct {
	write func(string) error
}

// NewClipboard returns a clipboard sharer, or nil when the host has no
// clipboard utility.
func NewClipboard() *Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return &Clipboard{write: clipboard.WriteAll}
}

func (c *Clipboard) CanShare(p export.Payload) bool {
	return len(p.Files) == 0 && p.Text != ""
}

func (c *Clipboard) Share(ctx context.Context, p export.Payload) error {
	if !c.CanShare(p) {
		return export.ErrUnsupportedPayload
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.write(p.Text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// Browser opens links in the default browser.
type Browser struct {
	open func(string) error
}

// NewBrowser returns an opener backed by the system browser.
// Output of the launched process is discarded.
func NewBrowser() *Browser {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &Browser{open: browser.OpenURL}
}

func (b *Browser) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.open(url)
}

// Notifier prints alerts to a writer, one per line, and logs them.
type Notifier struct {
	mu     sync.Mutex
	w      io.Writer
	logger *slog.Logger
}

// NewNotifier returns a notifier writing to w.
func NewNotifier(w io.Writer, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Notifier{w: w, logger: logger}
}

func (n *Notifier) Notify(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.logger.Info("alert", "message", msg)
	fmt.Fprintln(n.w, "! "+strings.TrimSpace(msg))
}

var (
	_ export.Sharer     = (*Clipboard)(nil)
	_ export.LinkOpener = (*Browser)(nil)
	_ export.Notifier   = (*Notifier)(nil)
)
