// Package fs stores slots as JSON files in a data directory.
//
// Each slot key maps to "<dir>/<key>.json". Writes go through a temp file
// and a rename so a crash never leaves a half-written slot behind.
package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/notepad/pkg/core"
)

// SlotExtension is the file extension of slot files.
const SlotExtension = ".json"

// Config holds the configuration for the filesystem backend.
type Config struct {
	Path         string
	MustExist    bool
	ReadOnly     bool
	Logger       *slog.Logger
	ErrorHandler func(error) // called with watcher failures
}

// Backend implements core.Backend on top of a directory.
type Backend struct {
	Path   string
	config Config
	cache  *cache

	mu            sync.RWMutex
	watcherActive bool
	lastEvent     *time.Time
}

// NewBackend creates a new filesystem-backed slot store.
func NewBackend(config Config) *Backend {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Backend{
		Path:   config.Path,
		config: config,
		cache:  newCache(),
	}
}

// Initialize creates the data directory unless MustExist or ReadOnly is set,
// in which case it only checks that it exists.
func (b *Backend) Initialize(ctx context.Context) error {
	if b.config.MustExist || b.config.ReadOnly {
		info, err := os.Stat(b.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("data path does not exist: %s", b.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("data path is not a directory: %s", b.Path)
		}
		return nil
	}

	if err := os.MkdirAll(b.Path, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// Get reads the blob of a slot.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := b.slotPath(key)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat slot %s: %w", key, err)
	}

	if data, ok := b.cache.get(key, info.ModTime(), info.Size()); ok {
		return data, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
	}

	b.cache.put(key, info.ModTime(), info.Size(), data)
	return data, nil
}

// Set replaces the blob of a slot atomically.
func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	if b.config.ReadOnly {
		return core.ErrReadOnly
	}
	path, err := b.slotPath(key)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(path, value, 0o644); err != nil {
		b.cache.drop(key)
		return err
	}

	if info, err := os.Stat(path); err == nil {
		b.cache.put(key, info.ModTime(), info.Size(), value)
	} else {
		b.cache.drop(key)
	}
	b.config.Logger.Debug("slot written", "key", key, "bytes", len(value))
	return nil
}

// Delete removes the slot file.
func (b *Backend) Delete(ctx context.Context, key string) error {
	if b.config.ReadOnly {
		return core.ErrReadOnly
	}
	path, err := b.slotPath(key)
	if err != nil {
		return err
	}

	b.cache.drop(key)
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	return nil
}

// Keys lists the slots stored in the data directory.
func (b *Backend) Keys(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(b.Path)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}

	keys := []string{}
	for _, e := range entries {
		if key, ok := keyFromName(e.Name()); ok && !e.IsDir() {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (b *Backend) slotPath(key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	return filepath.Join(b.Path, key+SlotExtension), nil
}

func validateKey(key string) error {
	if key == "" {
		return core.ErrEmptySlot
	}
	if key == "." || key == ".." || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, TempFilePrefix) {
		return fmt.Errorf("invalid slot key %q", key)
	}
	return nil
}

// keyFromName maps a file name in the data directory back to a slot key.
func keyFromName(name string) (string, bool) {
	if strings.HasPrefix(name, TempFilePrefix) || filepath.Ext(name) != SlotExtension {
		return "", false
	}
	key := strings.TrimSuffix(name, SlotExtension)
	return key, key != ""
}

var _ core.Backend = (*Backend)(nil)
var _ core.Initializer = (*Backend)(nil)
var _ core.Watchable = (*Backend)(nil)
