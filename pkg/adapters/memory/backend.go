// Package memory provides an in-process core.Backend.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/introspection"
	"github.com/aretw0/notepad/pkg/core"
)

// Backend keeps slot blobs in a map.
type Backend struct {
	mu    sync.RWMutex
	slots map[string][]byte

	// ReadOnly makes Set and Delete return core.ErrReadOnly.
	ReadOnly bool
	// FailWrites makes every Set and Delete fail with the given error.
	FailWrites error
}

// New creates an empty Backend.
func New() *Backend {
	return &Backend{slots: make(map[string][]byte)}
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, ok := b.slots[key]
	if !ok {
		return nil, core.ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.writable(); err != nil {
		return err
	}
	data := make([]byte, len(value))
	copy(data, value)
	b.slots[key] = data
	return nil
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.writable(); err != nil {
		return err
	}
	delete(b.slots, key)
	return nil
}

func (b *Backend) writable() error {
	if b.ReadOnly {
		return core.ErrReadOnly
	}
	return b.FailWrites
}

func (b *Backend) Keys(ctx context.Context) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]string, 0, len(b.slots))
	for k := range b.slots {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// State implements introspection.Introspectable.
func (b *Backend) State() any {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return map[string]any{"slots": len(b.slots), "read_only": b.ReadOnly}
}

// ComponentType implements introspection.Component.
func (b *Backend) ComponentType() string {
	return "memory"
}

var _ core.Backend = (*Backend)(nil)
var _ introspection.Component = (*Backend)(nil)
var _ introspection.Introspectable = (*Backend)(nil)
