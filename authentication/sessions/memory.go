package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dan-yates1/umg-project/domain"
)

type memorySession struct {
	identity  domain.Identity
	expiresAt time.Time
}

// MemoryStore is an in-process Store for single-instance deployments and
// tests. Expired sessions are dropped lazily on read.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memorySession)}
}

func (s *MemoryStore) Create(_ context.Context, identity domain.Identity, ttl time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.sessions[id] = memorySession{identity: identity, expiresAt: time.Now().Add(ttl)}
	return id, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (domain.Identity, error) {
	s.mu.RLock()
	session, exists := s.sessions[id]
	s.mu.RUnlock()

	if !exists {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	if time.Now().After(session.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return session.identity, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
