package core

import "errors"

// Common errors.
var (
	ErrNotFound  = errors.New("slot not found")
	ErrReadOnly  = errors.New("backend is in read-only mode")
	ErrEmptySlot = errors.New("slot key is empty")
	ErrNoSlot    = errors.New("no slot is open")
)
