package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/selim/placemate/internal/pkg/apperrors"
)

// Event describes one successfully applied mutation
type Event struct {
	Op string // Operation name, e.g. "slot.book"
}

// Snapshotter is the persistence collaborator. Load returns the latest
// aggregate snapshot (an empty state when none exists yet); Save replaces it.
type Snapshotter interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, state *State) error
}

// Store serializes every registry operation over the aggregate state.
// Mutations follow a read-latest, clone, apply, save, swap cycle: a failed
// save leaves the in-memory state untouched, so no mutation is ever
// partially applied. Subscribers are notified after each successful
// mutation.
type Store struct {
	mu    sync.Mutex
	snap  Snapshotter
	state *State
	subs  []func(Event)
}

// New creates a store backed by the given snapshotter
func New(snap Snapshotter) *Store {
	return &Store{
		snap:  snap,
		state: NewState(),
	}
}

// Subscribe registers a callback invoked after every successful mutation.
// Must be called during setup, before the store is in use.
func (s *Store) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Update runs one atomic mutation. The latest snapshot is loaded before fn
// runs and the result is saved before it becomes visible.
func (s *Store) Update(ctx context.Context, op string, fn func(*State) error) error {
	s.mu.Lock()

	latest, err := s.snap.Load(ctx)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: load before %s: %v", apperrors.ErrStorage, op, err)
	}

	work := latest.Clone()
	if err := fn(work); err != nil {
		s.mu.Unlock()
		return err
	}

	if err := s.snap.Save(ctx, work); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: save after %s: %v", apperrors.ErrStorage, op, err)
	}

	s.state = work
	subs := make([]func(Event), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub(Event{Op: op})
	}
	return nil
}

// View runs a read-only function over the latest state. fn must copy out
// anything it wants to keep; the state must not be mutated.
func (s *Store) View(ctx context.Context, fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	latest, err := s.snap.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: load: %v", apperrors.ErrStorage, err)
	}
	s.state = latest

	return fn(latest)
}
