package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/notepad/pkg/export"
)

// Downloads saves exported files into a directory.
type Downloads struct {
	Dir string
}

// NewDownloads returns a sink writing into dir.
func NewDownloads(dir string) *Downloads {
	return &Downloads{Dir: dir}
}

// Save writes data to Dir/name. Directory parts of name are ignored.
func (d *Downloads) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	base := filepath.Base(name)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return fmt.Errorf("invalid file name %q", name)
	}
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create download directory: %w", err)
	}
	return writeFileAtomic(filepath.Join(d.Dir, base), data, 0o644)
}

var _ export.FileSink = (*Downloads)(nil)
