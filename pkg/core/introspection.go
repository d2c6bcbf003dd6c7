package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Slot        string `json:"slot"`
	Notes       int    `json:"notes"`
	LastID      int64  `json:"last_id"`
	BackendType string `json:"backend_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	backendType := "backend"
	if comp, ok := s.store.Backend().(introspection.Component); ok {
		backendType = comp.ComponentType()
	}

	return ServiceState{
		Slot:        string(s.slot),
		Notes:       len(s.notes),
		LastID:      s.notes.MaxID(),
		BackendType: backendType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
