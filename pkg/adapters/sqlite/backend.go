// Package sqlite stores slots in an embedded SQLite database, one row per
// slot.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/glebarez/go-sqlite"

	"github.com/aretw0/introspection"
	"github.com/aretw0/notepad/pkg/core"
)

// DriverName is the database/sql driver registered by glebarez/go-sqlite.
const DriverName = "sqlite"

// Backend implements core.Backend on a "slots" table.
type Backend struct {
	Path     string
	readOnly bool
	conn     *sql.DB
}

// New opens (or creates) the database at path and migrates it.
// Use ":memory:" for a throwaway database.
func New(path string) (*Backend, error) {
	conn, err := open(path, path)
	if err != nil {
		return nil, err
	}

	b := &Backend{Path: path, conn: conn}
	if err := b.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return b, nil
}

// NewReadOnly opens the database at path without creating or migrating it.
// Set and Delete return core.ErrReadOnly. A database that does not exist
// yet reads as empty.
func NewReadOnly(path string) (*Backend, error) {
	if _, err := os.Stat(path); path == ":memory:" || errors.Is(err, os.ErrNotExist) {
		b, err := New(":memory:")
		if err != nil {
			return nil, err
		}
		b.Path, b.readOnly = path, true
		return b, nil
	}

	conn, err := open(path, path+"?_pragma=query_only(1)")
	if err != nil {
		return nil, err
	}
	return &Backend{Path: path, readOnly: true, conn: conn}, nil
}

func open(path, dsn string) (*sql.DB, error) {
	conn, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if path == ":memory:" {
		// every pooled connection would get its own empty database
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return conn, nil
}

// ReadOnly reports whether writes are refused.
func (b *Backend) ReadOnly() bool {
	return b.readOnly
}

func (b *Backend) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS slots (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, q := range queries {
		if _, err := b.conn.Exec(q); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

// Close closes the database.
func (b *Backend) Close() error {
	return b.conn.Close()
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, core.ErrEmptySlot
	}
	var value []byte
	err := b.conn.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return value, nil
}

func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return core.ErrEmptySlot
	}
	if b.readOnly {
		return core.ErrReadOnly
	}
	if value == nil {
		value = []byte{}
	}
	_, err := b.conn.ExecContext(ctx, `
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	if key == "" {
		return core.ErrEmptySlot
	}
	if b.readOnly {
		return core.ErrReadOnly
	}
	if _, err := b.conn.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	return nil
}

func (b *Backend) Keys(ctx context.Context) ([]string, error) {
	rows, err := b.conn.QueryContext(ctx, `SELECT key FROM slots ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// BackendState exposes internal state for observability.
type BackendState struct {
	Path        string `json:"path"`
	ReadOnly    bool   `json:"read_only"`
	OpenConns   int    `json:"open_conns"`
	SlotsStored int    `json:"slots_stored"` // -1 when the count query fails
}

// State implements introspection.Introspectable.
func (b *Backend) State() any {
	s := BackendState{Path: b.Path, ReadOnly: b.readOnly, OpenConns: b.conn.Stats().OpenConnections}
	if err := b.conn.QueryRow(`SELECT COUNT(*) FROM slots`).Scan(&s.SlotsStored); err != nil {
		s.SlotsStored = -1
	}
	return s
}

// ComponentType implements introspection.Component.
func (b *Backend) ComponentType() string {
	return "sqlite"
}

var _ core.Backend = (*Backend)(nil)
var _ core.Closer = (*Backend)(nil)
var _ introspection.Component = (*Backend)(nil)
