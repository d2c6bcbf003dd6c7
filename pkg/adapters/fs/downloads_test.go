package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notepad/pkg/export"
)

func TestDownloads_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "downloads")
	d := NewDownloads(dir)

	require.NoError(t, d.Save(context.Background(), "../Daily.png", []byte("png")))

	got, err := os.ReadFile(filepath.Join(dir, "Daily.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(got))
}

func TestDownloads_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, NewDownloads(t.TempDir()).Save(ctx, "a.png", nil), context.Canceled)
}

func TestSpool_Share(t *testing.T) {
	dir := t.TempDir()
	s := NewSpool(dir)

	p := export.Payload{
		Title: export.ShareTitle,
		Text:  export.DefaultCaption,
		Files: []export.File{{Name: export.ShareFileName, MIME: "image/png", Data: []byte("png")}},
	}
	require.True(t, s.CanShare(p))
	require.NoError(t, s.Share(context.Background(), p))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := filepath.Join(dir, entries[0].Name())
	caption, err := os.ReadFile(filepath.Join(entry, CaptionFile))
	require.NoError(t, err)
	assert.Contains(t, string(caption), export.DefaultCaption)

	img, err := os.ReadFile(filepath.Join(entry, export.ShareFileName))
	require.NoError(t, err)
	assert.Equal(t, "png", string(img))
}

func TestSpool_RejectsEmptyPayload(t *testing.T) {
	s := NewSpool(t.TempDir())
	assert.False(t, s.CanShare(export.Payload{}))
	assert.ErrorIs(t, s.Share(context.Background(), export.Payload{}), export.ErrUnsupportedPayload)
}
