package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps records in process memory with the same semantics as
// the Postgres store. It backs tests and local development; it favors
// clarity over performance.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]User
	order []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]User)}
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *MemoryStore) Insert(_ context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.Email]; ok {
		return ErrDuplicateEmail
	}

	now := time.Now()
	u.ID = uuid.New()
	u.CreatedAt = now
	u.UpdatedAt = now

	s.users[u.Email] = *u
	s.order = append(s.order, u.Email)
	return nil
}

func (s *MemoryStore) SetRole(_ context.Context, email string, role Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[email]
	if !ok {
		return nil // absent email is a no-op
	}

	u.Role = role
	u.UpdatedAt = time.Now()
	s.users[email] = u
	return nil
}

func (s *MemoryStore) ListAll(_ context.Context) ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]User, 0, len(s.order))
	for _, email := range s.order {
		users = append(users, s.users[email])
	}
	return users, nil
}
