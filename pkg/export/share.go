package export

import (
	"context"
	"fmt"
	"log/slog"
)

// Stage is a state of the share pipeline.
type Stage string

const (
	StageIdle                Stage = "idle"
	StageCapturing           Stage = "capturing"
	StageCaptureFailed       Stage = "capture-failed"
	StageCaptureOK           Stage = "capture-ok"
	StageSharingImage        Stage = "sharing-image"
	StageShareOK             Stage = "share-ok"
	StageShareFailed         Stage = "share-failed"
	StageTextOnlyShare       Stage = "text-only-share"
	StageComposeLinkFallback Stage = "compose-link-fallback"
	StageDone                Stage = "done"
)

// Tier is what finally reached the user.
type Tier int

const (
	TierNone Tier = iota
	TierImage
	TierText
	TierComposeLink
)

func (t Tier) String() string {
	switch t {
	case TierImage:
		return "image"
	case TierText:
		return "text"
	case TierComposeLink:
		return "compose-link"
	default:
		return "none"
	}
}

// Step is one transition of the pipeline. Err is set on the stage that
// failed.
type Step struct {
	Stage Stage
	Err   error
}

// Outcome is the trace of one Share call.
type Outcome struct {
	NoteID    int64
	Steps     []Step
	Delivered Tier
}

// Stages returns the visited stages in order.
func (o Outcome) Stages() []Stage {
	out := make([]Stage, len(o.Steps))
	for i, s := range o.Steps {
		out[i] = s.Stage
	}
	return out
}

func (o *Outcome) add(s Step) {
	o.Steps = append(o.Steps, s)
}

// Options configures an Exporter.
type Options struct {
	// Sharer is the native share surface; nil selects the compose-link sink.
	Sharer      Sharer
	Opener      LinkOpener
	Notifier    Notifier
	Files       FileSink
	Caption     string
	ComposeBase string
	Logger      *slog.Logger
}

// Exporter shares and downloads captured notes.
type Exporter struct {
	capturer    *Capturer
	sharer      Sharer
	opener      LinkOpener
	notifier    Notifier
	files       FileSink
	caption     string
	composeBase string
	logger      *slog.Logger
}

// NewExporter creates an Exporter on top of capturer.
func NewExporter(capturer *Capturer, opts Options) *Exporter {
	if opts.Caption == "" {
		opts.Caption = DefaultCaption
	}
	if opts.ComposeBase == "" {
		opts.ComposeBase = DefaultComposeBase
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Exporter{
		capturer:    capturer,
		sharer:      opts.Sharer,
		opener:      opts.Opener,
		notifier:    opts.Notifier,
		files:       opts.Files,
		caption:     opts.Caption,
		composeBase: opts.ComposeBase,
		logger:      opts.Logger,
	}
}

// CanShareNatively reports whether a native share surface is configured.
func (e *Exporter) CanShareNatively() bool {
	return e.sharer != nil
}

// Share runs the share pipeline for note id.
// Without a native Sharer the card is not captured and the compose link is
// opened directly. Share never fails; the Outcome tells what happened.
func (e *Exporter) Share(ctx context.Context, id int64) Outcome {
	out := Outcome{NoteID: id}
	out.add(Step{Stage: StageIdle})

	if e.sharer == nil {
		e.composeTier(ctx, &out)
		return e.finish(out)
	}

	out.add(Step{Stage: StageCapturing})
	snap := e.capturer.Capture(ctx, id)
	if snap == nil {
		out.add(Step{Stage: StageCaptureFailed, Err: ErrCaptureFailed})
		e.notify(MsgCaptureFailedShare)
		e.textTier(ctx, &out)
		return e.finish(out)
	}
	out.add(Step{Stage: StageCaptureOK})

	out.add(Step{Stage: StageSharingImage})
	result := e.ShareImage(ctx, snap)
	out.add(result)
	if result.Err == nil {
		out.Delivered = TierImage
		return e.finish(out)
	}

	e.notify(MsgImageShareFailed)
	e.textTier(ctx, &out)
	return e.finish(out)
}

// ShareImage shares the caption together with the captured card.
// It yields StageShareOK or StageShareFailed.
func (e *Exporter) ShareImage(ctx context.Context, snap *Snapshot) Step {
	if e.sharer == nil {
		return Step{Stage: StageShareFailed, Err: ErrUnsupportedPayload}
	}
	p := Payload{
		Title: ShareTitle,
		Text:  e.caption,
		Files: []File{{Name: ShareFileName, MIME: "image/png", Data: snap.PNG}},
	}
	if !e.sharer.CanShare(p) {
		return Step{Stage: StageShareFailed, Err: ErrUnsupportedPayload}
	}
	if err := e.sharer.Share(ctx, p); err != nil {
		e.logger.Error("error sharing image", "note", snap.Note.ID, "error", err)
		return Step{Stage: StageShareFailed, Err: err}
	}
	e.logger.Info("shared note image", "note", snap.Note.ID)
	return Step{Stage: StageShareOK}
}

// ShareText shares the caption alone.
func (e *Exporter) ShareText(ctx context.Context) Step {
	if e.sharer == nil {
		return Step{Stage: StageTextOnlyShare, Err: ErrUnsupportedPayload}
	}
	p := Payload{Title: ShareTitle, Text: e.caption}
	if !e.sharer.CanShare(p) {
		return Step{Stage: StageTextOnlyShare, Err: ErrUnsupportedPayload}
	}
	if err := e.sharer.Share(ctx, p); err != nil {
		e.logger.Error("error sharing caption", "error", err)
		return Step{Stage: StageTextOnlyShare, Err: err}
	}
	return Step{Stage: StageTextOnlyShare}
}

// OpenCompose opens the pre-filled compose page.
func (e *Exporter) OpenCompose(ctx context.Context) Step {
	link := ComposeURL(e.composeBase, e.caption)
	if e.opener == nil {
		return Step{Stage: StageComposeLinkFallback, Err: fmt.Errorf("no link opener configured")}
	}
	e.logger.Info("opening compose URL", "url", link)
	if err := e.opener.Open(ctx, link); err != nil {
		e.logger.Error("error opening compose URL", "url", link, "error", err)
		return Step{Stage: StageComposeLinkFallback, Err: err}
	}
	return Step{Stage: StageComposeLinkFallback}
}

// ComposeLink returns the compose URL used by the link fallback.
func (e *Exporter) ComposeLink() string {
	return ComposeURL(e.composeBase, e.caption)
}

func (e *Exporter) textTier(ctx context.Context, out *Outcome) {
	result := e.ShareText(ctx)
	out.add(result)
	if result.Err == nil {
		out.Delivered = TierText
		return
	}
	e.notify(MsgTextShareFailed)
	e.composeTier(ctx, out)
}

func (e *Exporter) composeTier(ctx context.Context, out *Outcome) {
	result := e.OpenCompose(ctx)
	out.add(result)
	if result.Err != nil {
		e.notify(MsgComposeFailed)
		return
	}
	out.Delivered = TierComposeLink
}

func (e *Exporter) finish(out Outcome) Outcome {
	out.add(Step{Stage: StageDone})
	e.logger.Debug("share finished", "note", out.NoteID, "delivered", out.Delivered.String())
	return out
}

func (e *Exporter) notify(msg string) {
	e.logger.Warn(msg)
	if e.notifier != nil {
		e.notifier.Notify(msg)
	}
}
