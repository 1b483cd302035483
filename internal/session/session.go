// Package session persists the single opaque flag indicating an active
// session. The flag is durable across process restarts and cleared
// explicitly on logout; nothing else about the session is stored here.
package session

import (
	"context"
	"sync"
)

// Store persists the session flag.
type Store interface {
	// Active reports whether a session flag is set and returns the doctor
	// id it was activated with.
	Active(ctx context.Context) (string, bool, error)
	// Activate sets the session flag for the doctor.
	Activate(ctx context.Context, doctorID string) error
	// Clear removes the session flag.
	Clear(ctx context.Context) error
}

// MemoryStore is an in-process Store for tests and the demo binary.
type MemoryStore struct {
	mu       sync.Mutex
	doctorID string
	active   bool
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Active reports the in-memory flag.
func (s *MemoryStore) Active(ctx context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doctorID, s.active, nil
}

// Activate sets the in-memory flag.
func (s *MemoryStore) Activate(ctx context.Context, doctorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctorID = doctorID
	s.active = true
	return nil
}

// Clear removes the in-memory flag.
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctorID = ""
	s.active = false
	return nil
}
