// Package lifecycle exposes slot change events as a lifecycle.Source so
// they can be consumed next to other supervised event streams.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/notepad/pkg/core"
)

type slotSource struct {
	events <-chan core.Event
	filter func(core.Event) bool
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits slot events.
// A nil filter forwards every event.
func NewSource(events <-chan core.Event, filter func(core.Event) bool) lifecycle.Source {
	if filter == nil {
		filter = func(core.Event) bool { return true }
	}
	return &slotSource{
		events: events,
		filter: filter,
		out:    make(chan lifecycle.Event),
	}
}

func (s *slotSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards events until ctx is done or the slot channel closes,
// then closes Events.
func (s *slotSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				if !s.filter(e) {
					continue
				}
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
