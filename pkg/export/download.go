package export

import (
	"context"
	"fmt"
)

// Download captures note id and saves it as "<title>.png" through the
// configured FileSink. It returns the file name on success.
// A failed capture is reported to the user and no file is written.
func (e *Exporter) Download(ctx context.Context, id int64) (string, error) {
	if e.files == nil {
		return "", ErrNoFileSink
	}

	snap := e.capturer.Capture(ctx, id)
	if snap == nil {
		e.notify(MsgDownloadFailed)
		return "", ErrCaptureFailed
	}

	name := FileName(snap.Note.Title)
	if err := e.files.Save(ctx, name, snap.PNG); err != nil {
		e.notify(MsgSaveFailed)
		return "", fmt.Errorf("failed to save %s: %w", name, err)
	}

	e.logger.Info("downloaded note", "note", id, "file", name)
	return name, nil
}
