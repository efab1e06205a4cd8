package store

import (
	"context"
	"strings"
	"sync"

	"phrasebingo/models"
)

// MemoryStore is a mutex-guarded map implementation of SessionStore, used
// in tests and single-process runs. State is lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*models.Session)}
}

func (s *MemoryStore) Get(ctx context.Context, roomCode string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[strings.ToUpper(roomCode)]
	if !ok {
		return nil, ErrNotFound
	}
	return session.Clone(), nil
}

func (s *MemoryStore) CreateIfAbsent(ctx context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToUpper(session.RoomCode)
	if _, ok := s.sessions[key]; ok {
		return ErrConflict
	}
	s.sessions[key] = session.Clone()
	return nil
}

func (s *MemoryStore) CompareAndSwap(ctx context.Context, expectedVersion int64, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToUpper(session.RoomCode)
	current, ok := s.sessions[key]
	if !ok {
		return ErrNotFound
	}
	if current.Version != expectedVersion {
		return ErrConflict
	}

	session.Version = expectedVersion + 1
	s.sessions[key] = session.Clone()
	return nil
}
