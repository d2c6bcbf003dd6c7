package notepad

import (
	"context"
	"log/slog"

	"github.com/aretw0/notepad/internal/platform"
	"github.com/aretw0/notepad/pkg/core"
	"github.com/aretw0/notepad/pkg/notebook"
)

// --- Configuration ---

// Option defines a functional option for configuring notepad.
type Option = platform.Option

// Config is the project configuration read from notepad.yaml, .env and
// NOTEPAD_* variables.
type Config = platform.Config

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithMustExist ensures the data directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithBackend allows injecting a custom storage backend.
func WithBackend(b core.Backend) Option {
	return platform.WithBackend(b)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithNamespace sets the prefix of slot keys.
func WithNamespace(ns string) Option {
	return platform.WithNamespace(ns)
}

// WithReadOnly enables read-only mode.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithDevSafety controls the temp-dir sandbox used under `go run` and `go test`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithWatcherErrorHandler registers a callback for watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a new note service.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init opens a storage backend explicitly.
func Init(path string, opts ...Option) (core.Backend, error) {
	return platform.Init(path, opts...)
}

// Open creates a service and a notebook showing the list of team and theme.
func Open(ctx context.Context, path, team, theme string, cfg notebook.Config, opts ...Option) (*notebook.Notebook, error) {
	svc, err := New(path, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.Namespace == "" {
		cfg.Namespace = platform.Namespace(opts...)
	}
	nb := notebook.New(svc, cfg)
	nb.Open(ctx, team, theme)
	return nb, nil
}

// --- Safety & Utils ---

// LoadConfig reads the configuration of the project rooted at root.
func LoadConfig(root string) (Config, error) {
	return platform.LoadConfig(root)
}

// ResolveDataDir determines the actual data directory based on safety rules.
func ResolveDataDir(userPath string, forceTemp bool) string {
	return platform.ResolveDataDir(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// ErrNoRoot is wrapped by FindRoot when no project root encloses the start
// directory.
var ErrNoRoot = platform.ErrNoRoot

// FindRoot returns the nearest enclosing directory holding .notepad or
// notepad.yaml. It wraps ErrNoRoot when there is none.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
