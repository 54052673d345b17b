// Package control holds the process-wide control mode.
package control

import (
	"sync"

	"github.com/steward-io/steward/pkg/models"
)

// State is the mutable control mode shared by the tool gate, the injection
// scheduler, and the API surface.
type State struct {
	mu   sync.RWMutex
	mode models.ControlMode
}

// NewState starts in the given mode.
func NewState(initial models.ControlMode) *State {
	return &State{mode: initial}
}

// Current returns the active control mode.
func (s *State) Current() models.ControlMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Set switches the control mode and returns the previous mode and whether
// anything changed.
func (s *State) Set(mode models.ControlMode) (models.ControlMode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.mode
	s.mode = mode
	return prev, prev != mode
}
