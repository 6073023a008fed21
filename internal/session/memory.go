package session

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-gtd/internal/utils"
	"github.com/MKhiriev/go-gtd/models"
)

// MemoryStore keeps sessions in a map. Expired sessions are invisible to Get
// and removed by Sweep.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	ttl      time.Duration
	ids      *utils.UUIDGenerator
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]models.Session),
		ttl:      ttl,
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, userID int64, login string) (models.Session, error) {
	now := s.now()
	sess := models.Session{
		ID:        s.ids.Generate(),
		UserID:    userID,
		Login:     login,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (models.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || sess.Expired(s.now()) {
		return models.Session{}, ErrSessionNotFound
	}
	return sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Touch(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	now := s.now()
	if !ok || sess.Expired(now) {
		return ErrSessionNotFound
	}
	sess.ExpiresAt = now.Add(s.ttl)
	s.sessions[id] = sess
	return nil
}

// Sweep drops expired sessions. It is the job of the janitor worker.
func (s *MemoryStore) Sweep(context.Context) error {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, id)
		}
	}
	return nil
}

// Len returns the number of stored sessions, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
