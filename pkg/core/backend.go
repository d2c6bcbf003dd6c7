package core

import "context"

// Backend is the key/value port behind a Store.
// A slot is a single opaque blob; the Store owns its encoding.
// Adhering to this interface keeps the core independent of the storage
// mechanism (memory, files, embedded SQL).
type Backend interface {
	// Get returns the blob stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the blob stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the blob. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists the stored slot keys in lexical order.
	Keys(ctx context.Context) ([]string, error)
}

// Initializer is implemented by backends that need setup before first use
// (create directories, run migrations).
type Initializer interface {
	Initialize(ctx context.Context) error
}

// Closer is implemented by backends holding OS resources.
type Closer interface {
	Close() error
}

// EventType represents the type of change on a slot.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change of a slot made outside of this process.
type Event struct {
	Type      EventType
	Key       string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e.Type) + " " + e.Key
}

// Watchable is implemented by backends able to report external changes.
type Watchable interface {
	// Watch emits events for slot keys matching pattern until ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
