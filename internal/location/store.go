package location

import "sync"

// Store holds each user's currently selected location. It is an injected
// dependency, not ambient global state, and lives in memory only: a restart
// resets every selection.
type Store struct {
	mu      sync.RWMutex
	current map[int]string
}

func NewStore() *Store {
	return &Store{
		current: make(map[int]string),
	}
}

func (s *Store) Get(userID int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loc, ok := s.current[userID]
	return loc, ok
}

func (s *Store) Set(userID int, location string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current[userID] = location
}
