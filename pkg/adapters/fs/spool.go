package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/notepad/pkg/export"
)

// CaptionFile is the name of the caption inside a spooled share.
const CaptionFile = "caption.txt"

// Spool is a share target for hosts without a native share sheet: every
// share becomes a directory "share-<nanos>" holding the caption and the
// attached files, to be picked up by another tool.
type Spool struct {
	Dir string
	now func() time.Time
}

// NewSpool returns a spool writing into dir.
func NewSpool(dir string) *Spool {
	return &Spool{Dir: dir, now: time.Now}
}

// CanShare accepts any payload carrying a caption or files.
func (s *Spool) CanShare(p export.Payload) bool {
	return p.Text != "" || len(p.Files) > 0
}

// Share writes the payload into a fresh spool entry.
func (s *Spool) Share(ctx context.Context, p export.Payload) error {
	if !s.CanShare(p) {
		return export.ErrUnsupportedPayload
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	entry := filepath.Join(s.Dir, "share-"+strconv.FormatInt(s.now().UnixNano(), 10))
	if err := os.MkdirAll(entry, 0o755); err != nil {
		return fmt.Errorf("failed to create spool entry: %w", err)
	}

	caption := p.Text
	if p.Title != "" {
		caption = p.Title + "\n\n" + caption
	}
	if err := writeFileAtomic(filepath.Join(entry, CaptionFile), []byte(strings.TrimSpace(caption)+"\n"), 0o644); err != nil {
		return err
	}

	for _, f := range p.Files {
		name := filepath.Base(f.Name)
		if name == "." || name == ".." || name == CaptionFile {
			return fmt.Errorf("invalid attachment name %q", f.Name)
		}
		if err := writeFileAtomic(filepath.Join(entry, name), f.Data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

var _ export.Sharer = (*Spool)(nil)
