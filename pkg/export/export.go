// Package export turns a note into a PNG card and delivers it to a share
// target or a download sink.
//
// Sharing degrades through explicit tiers: image share, caption-only
// share, then the social compose link. Every failure is reported through
// a Notifier and never returned as an error.
package export

import (
	"context"
	"errors"
	"net/url"
	"strings"
)

const (
	// DefaultCaption is the text shared with every note.
	DefaultCaption = "Gprove, check out my Succinct to do list for today create yours at https://succinctnotepad.vercel.app"

	// DefaultComposeBase is the social compose page opened by the link fallback.
	DefaultComposeBase = "https://x.com/compose/post"

	// ShareTitle and ShareFileName label the image share payload.
	ShareTitle    = "Succinct Notepad Task"
	ShareFileName = "task.png"

	// PNGExtension is appended to downloaded file names.
	PNGExtension = ".png"
)

// User-facing alerts.
const (
	MsgCaptureFailedShare = "Failed to capture screenshot. Sharing text only."
	MsgImageShareFailed   = "Failed to share via X app. Sharing text only."
	MsgTextShareFailed    = "Failed to share text. Opening X post page."
	MsgComposeFailed      = "Failed to open X post page. Please check your network or try again."
	MsgDownloadFailed     = "Failed to download screenshot."
	MsgSaveFailed         = "Failed to save screenshot."
)

var (
	// ErrCaptureFailed reports that no snapshot could be produced.
	ErrCaptureFailed = errors.New("capture failed")
	// ErrUnsupportedPayload is returned when a Sharer refuses a payload.
	ErrUnsupportedPayload = errors.New("share target cannot handle payload")
	// ErrNoFileSink is returned by Download when no sink is configured.
	ErrNoFileSink = errors.New("no download sink configured")
)

// File is an attachment of a share payload.
type File struct {
	Name string
	MIME string
	Data []byte
}

// Payload is what a Sharer receives.
type Payload struct {
	Title string
	Text  string
	Files []File
}

// Sharer is a native share surface.
type Sharer interface {
	// CanShare reports whether p can be shared at all (e.g. with files).
	CanShare(p Payload) bool
	Share(ctx context.Context, p Payload) error
}

// LinkOpener opens a URL for the user (browser tab, default handler).
type LinkOpener interface {
	Open(ctx context.Context, url string) error
}

// Notifier shows an alert to the user.
type Notifier interface {
	Notify(msg string)
}

// FileSink stores a downloaded file under name.
type FileSink interface {
	Save(ctx context.Context, name string, data []byte) error
}

// ComposeURL builds the pre-filled compose link for caption.
// The caption is escaped the way encodeURIComponent does for spaces.
func ComposeURL(base, caption string) string {
	if base == "" {
		base = DefaultComposeBase
	}
	return base + "?text=" + strings.ReplaceAll(url.QueryEscape(caption), "+", "%20")
}

// FileName returns the download name for a note title.
func FileName(title string) string {
	name := strings.NewReplacer("/", "-", "\\", "-").Replace(strings.TrimSpace(title))
	if name == "" || name == "." || name == ".." {
		name = "note"
	}
	return name + PNGExtension
}
