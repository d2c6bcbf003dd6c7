package platform

import (
	"log/slog"

	"github.com/aretw0/notepad/pkg/core"
)

// options holds the internal configuration for the notepad service.
type options struct {
	backend   core.Backend
	logger    *slog.Logger
	adapter   string
	namespace string
	config    map[string]interface{}
}

// Option defines a functional option for configuring notepad.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		backend:   nil,
		logger:    nil,
		adapter:   AdapterFS,
		namespace: core.DefaultNamespace,
		config:    make(map[string]interface{}),
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithBackend allows injecting a custom storage backend (e.g. memory, mock).
// If provided, the adapter selection is skipped.
func WithBackend(b core.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithAdapter allows specifying the storage adapter to use by name
// ("fs", "sqlite" or "memory"). Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithNamespace sets the prefix of slot keys. Defaults to "succinct-notes".
func WithNamespace(ns string) Option {
	return func(o *options) {
		if ns != "" {
			o.namespace = ns
		}
	}
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.config["temp_dir"] = force
	}
}

// WithMustExist ensures the data directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithWatcherErrorHandler registers a callback for errors occurring in the
// Watch loop (e.g. permission denied) which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}

// WithReadOnly enables read-only mode.
// In this mode:
// 1. Writes return core.ErrReadOnly (the in-memory list still changes).
// 2. The data directory is not created.
// 3. Dev Safety Lock (go run temp dir) is BYPASSED (uses real path).
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.config["read_only"] = enabled
	}
}

// WithDevSafety controls the "Sandbox" safety mechanism when running via `go run`.
// By default (true), notepad forces a temporary directory to prevent accidental data loss.
// Setting this to false allows operating on the real data directory even during `go run`.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.config["dev_safety"] = enabled
	}
}
