package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/notepad/pkg/core"
)

// DefaultSettle is the pause between making a card renderable and
// rasterizing it.
const DefaultSettle = 100 * time.Millisecond

// Lookup resolves a note id to the note currently shown.
type Lookup func(id int64) (core.Note, bool)

// Snapshot is a captured card.
type Snapshot struct {
	Note  core.Note
	Image image.Image
	PNG   []byte
}

// CaptureOptions configures a Capturer.
type CaptureOptions struct {
	Team       core.Team
	Brand      string
	Background string // #rrggbb, defaults to DefaultBackground
	Settle     time.Duration
	Location   *time.Location
	Logger     *slog.Logger
}

// Capturer rasterizes note cards.
type Capturer struct {
	lookup     Lookup
	team       core.Team
	brand      string
	background color.RGBA
	settle     time.Duration
	loc        *time.Location
	logger     *slog.Logger

	// rasterize is swapped in tests.
	rasterize func(Card, int) (*image.RGBA, error)

	mu         sync.Mutex
	renderable map[int64]int
}

// NewCapturer creates a Capturer resolving notes through lookup.
func NewCapturer(lookup Lookup, opts CaptureOptions) *Capturer {
	bg, err := ParseHexColor(opts.Background)
	if err != nil {
		bg, _ = ParseHexColor(DefaultBackground)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Capturer{
		lookup:     lookup,
		team:       opts.Team,
		brand:      opts.Brand,
		background: bg,
		settle:     opts.Settle,
		loc:        opts.Location,
		logger:     opts.Logger,
		rasterize:  Rasterize,
		renderable: make(map[int64]int),
	}
}

// Capture renders the card of note id as a PNG.
// It returns nil when the note is unknown, the raster is empty or
// encoding fails; the cause is logged.
func (c *Capturer) Capture(ctx context.Context, id int64) *Snapshot {
	snap, err := c.capture(ctx, id)
	if err != nil {
		c.logger.Error("error capturing screenshot", "note", id, "error", err)
		return nil
	}
	return snap
}

// Renderable reports whether the card of note id is currently exposed for
// capture.
func (c *Capturer) Renderable(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderable[id] > 0
}

func (c *Capturer) capture(ctx context.Context, id int64) (*Snapshot, error) {
	n, ok := c.lookup(id)
	if !ok {
		return nil, fmt.Errorf("note %d is not rendered", id)
	}

	c.expose(id)
	defer c.conceal(id)

	if c.settle > 0 {
		t := time.NewTimer(c.settle)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	card := NewCard(n, c.team, c.brand, c.background, c.loc)
	img, err := c.rasterize(card, CaptureScale)
	if err != nil {
		return nil, err
	}
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("empty image for note %d", id)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return &Snapshot{Note: n, Image: img, PNG: buf.Bytes()}, nil
}

func (c *Capturer) expose(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderable[id]++
}

func (c *Capturer) conceal(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.renderable[id] <= 1 {
		delete(c.renderable, id)
		return
	}
	c.renderable[id]--
}
