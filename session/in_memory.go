package session

import (
	"fmt"
	"sort"
	"sync"

	"github.com/cwbhub/hivemind/core"
)

// InMemoryStore is a process-local SessionStore.
//
// Concurrency: the map is protected by RWMutex; mutation of an individual
// session goes through the session's own lock, not the store's.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*core.Session
}

var _ core.SessionStore = (*InMemoryStore)(nil)

// NewInMemoryStore creates an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*core.Session)}
}

// Create registers a new session under the given id. Creating an id that
// already exists is an error; session ids are single-use.
func (s *InMemoryStore) Create(id, request string) (*core.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[id]; exists {
		return nil, fmt.Errorf("session %q already exists", id)
	}
	sess := core.NewSession(id, request)
	s.sessions[id] = sess
	return sess, nil
}

// Get returns the live session for the id, or core.ErrSessionNotFound.
func (s *InMemoryStore) Get(id string) (*core.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, exists := s.sessions[id]
	if !exists {
		return nil, fmt.Errorf("session %q: %w", id, core.ErrSessionNotFound)
	}
	return sess, nil
}

// Delete removes the session. Deleting an unknown id is an error.
func (s *InMemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[id]; !exists {
		return fmt.Errorf("session %q: %w", id, core.ErrSessionNotFound)
	}
	delete(s.sessions, id)
	return nil
}

// List returns the stored session ids in lexical order.
func (s *InMemoryStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
