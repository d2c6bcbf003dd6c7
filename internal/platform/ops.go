package platform

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/notepad/pkg/adapters/fs"
	"github.com/aretw0/notepad/pkg/adapters/memory"
	"github.com/aretw0/notepad/pkg/adapters/sqlite"
	"github.com/aretw0/notepad/pkg/core"
)

// Adapter names.
const (
	AdapterFS     = "fs"
	AdapterSQLite = "sqlite"
	AdapterMemory = "memory"
)

// SQLiteFile is the database file created inside the data directory.
const SQLiteFile = "notepad.db"

// Adapters lists the adapter names accepted by WithAdapter.
func Adapters() []string {
	return []string{AdapterFS, AdapterSQLite, AdapterMemory}
}

// Init opens the storage backend based on the provided configuration.
// The 'uri' argument is the data directory for the fs and sqlite adapters
// and is ignored by the memory adapter.
func Init(uri string, opts ...Option) (core.Backend, error) {
	o := buildOptions(opts)
	return initBackend(uri, o)
}

func initBackend(uri string, o *options) (core.Backend, error) {
	if o.backend != nil {
		return o.backend, nil
	}

	var backend core.Backend
	var err error

	switch o.adapter {
	case AdapterFS:
		backend, err = initFS(uri, o)
	case AdapterSQLite:
		backend, err = initSQLite(uri, o)
	case AdapterMemory:
		mem := memory.New()
		mem.ReadOnly, _ = o.config["read_only"].(bool)
		backend = mem
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
	if err != nil {
		return nil, err
	}

	if initializer, ok := backend.(core.Initializer); ok {
		if err := initializer.Initialize(context.Background()); err != nil {
			return nil, err
		}
	}
	return backend, nil
}

// resolvePath applies the dev sandbox to path.
func resolvePath(path string, o *options) string {
	tempDir, _ := o.config["temp_dir"].(bool)
	isReadOnly, _ := o.config["read_only"].(bool)
	devSafety := true
	if val, ok := o.config["dev_safety"].(bool); ok {
		devSafety = val
	}

	// Bypass Safety if:
	// 1. ReadOnly is active (inherently safe)
	// 2. User explicitly disabled DevSafety
	bypassSafety := isReadOnly || !devSafety
	useTemp := tempDir || (IsDevRun() && !bypassSafety)
	resolved := ResolveDataDir(path, useTemp)

	if o.logger != nil {
		switch {
		case useTemp:
			o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", path, "resolved_path", resolved)
		case IsDevRun() && isReadOnly:
			o.logger.Debug("running in READ-ONLY mode (bypassing dev sandbox)", "path", resolved)
		case IsDevRun():
			o.logger.Warn("running in UNSAFE mode (bypassing dev sandbox)", "path", resolved)
		}
	}
	return resolved
}

// initFS handles the initialization logic for the filesystem adapter.
func initFS(path string, o *options) (core.Backend, error) {
	mustExist, _ := o.config["must_exist"].(bool)
	isReadOnly, _ := o.config["read_only"].(bool)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	return fs.NewBackend(fs.Config{
		Path:         resolvePath(path, o),
		MustExist:    mustExist,
		ReadOnly:     isReadOnly,
		Logger:       o.logger,
		ErrorHandler: errorHandler,
	}), nil
}

// initSQLite opens notepad.db inside the data directory.
// In read-only mode nothing is created on disk.
func initSQLite(path string, o *options) (core.Backend, error) {
	dir := resolvePath(path, o)
	file := filepath.Join(dir, SQLiteFile)
	if isReadOnly, _ := o.config["read_only"].(bool); isReadOnly {
		return sqlite.NewReadOnly(file)
	}
	if mustExist, _ := o.config["must_exist"].(bool); !mustExist {
		if err := ensureDir(dir); err != nil {
			return nil, err
		}
	}
	return sqlite.New(file)
}
