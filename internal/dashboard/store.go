package dashboard

import "sync"

// Store guards dashboard state for concurrent use.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore creates new Store.
func NewStore(initial State) *Store {
	return &Store{state: initial}
}

// Begin issues the next attempt generation and marks the dashboard as loading.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen := s.state.Generation + 1
	s.state = Reduce(s.state, FetchStarted{Generation: gen})
	return gen
}

// Dispatch applies event.
func (s *Store) Dispatch(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, e)
}

// State returns a copy of current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Snapshot returns current displayed view.
func (s *Store) Snapshot() Snapshot {
	return Select(s.State())
}
