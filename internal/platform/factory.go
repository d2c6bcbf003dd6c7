package platform

import (
	"github.com/aretw0/notepad/pkg/core"
)

// New wires a note service on top of the configured backend.
//
//	svc, err := notepad.New("./notes", notepad.WithAdapter("sqlite"))
//
// The uri argument is adapter-specific (a data directory for fs and sqlite).
func New(uri string, opts ...Option) (*core.Service, error) {
	o := buildOptions(opts)

	backend, err := initBackend(uri, o)
	if err != nil {
		return nil, err
	}

	store := core.NewStore(backend, o.logger)
	return core.NewService(store, core.NewIDSource(nil), o.logger), nil
}

// Namespace returns the slot namespace selected by opts.
func Namespace(opts ...Option) string {
	return buildOptions(opts).namespace
}
