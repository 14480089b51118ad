package store

import (
	"context"
	"sync"
)

// MemorySnapshotter keeps the aggregate snapshot in memory. Used in tests
// and in the default development mode.
type MemorySnapshotter struct {
	mu    sync.RWMutex
	state *State
}

// NewMemorySnapshotter creates an empty in-memory snapshotter
func NewMemorySnapshotter() *MemorySnapshotter {
	return &MemorySnapshotter{state: NewState()}
}

// Load returns a copy of the stored snapshot
func (m *MemorySnapshotter) Load(_ context.Context) (*State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Clone(), nil
}

// Save replaces the stored snapshot
func (m *MemorySnapshotter) Save(_ context.Context, state *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state.Clone()
	return nil
}
