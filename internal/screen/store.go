// Package screen holds the state and behaviour of the search screen,
// independent of how it is drawn.
package screen

import (
	"slices"
	"sync"

	"songsearch/internal/domain"
)

// Snapshot is an immutable view of the store handed to subscribers
type Snapshot struct {
	Query  string
	Tracks []domain.Track
}

// Listener is notified after every state change
type Listener func(Snapshot)

// Store owns the current search text and the current result list
type Store struct {
	mu        sync.RWMutex
	query     string
	tracks    []domain.Track
	listeners map[uint64]Listener
	nextID    uint64
}

// NewStore creates a store with an empty query and no results
func NewStore() *Store {
	return &Store{
		tracks:    []domain.Track{},
		listeners: make(map[uint64]Listener),
	}
}

// Query returns the current search text
func (s *Store) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// SetQuery replaces the search text. Any string is accepted.
func (s *Store) SetQuery(q string) {
	s.mu.Lock()
	s.query = q
	snap, listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(listeners, snap)
}

// Tracks returns a copy of the current result list
func (s *Store) Tracks() []domain.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tracks)
}

// ReplaceTracks swaps the whole result list
func (s *Store) ReplaceTracks(tracks []domain.Track) {
	s.mu.Lock()
	if tracks == nil {
		s.tracks = []domain.Track{}
	} else {
		s.tracks = slices.Clone(tracks)
	}
	snap, listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(listeners, snap)
}

// Subscribe registers fn for change notifications.
// Returns an unsubscribe function.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// snapshotLocked must be called with s.mu held
func (s *Store) snapshotLocked() (Snapshot, []Listener) {
	snap := Snapshot{Query: s.query, Tracks: slices.Clone(s.tracks)}
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	return snap, listeners
}

// listeners run outside the lock so they may read the store
func notify(listeners []Listener, snap Snapshot) {
	for _, l := range listeners {
		l(snap)
	}
}
