package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Beticesk/PROYECTO-FINAL/internal/models"
)

// MemoryStore implements UserStore on a mutex-guarded map keyed by email.
// It honors the same contract as PostgresStore and is meant for tests and
// database-free runs.
type MemoryStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]*models.User),
	}
}

func (s *MemoryStore) CreateUser(ctx context.Context, nu NewUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[nu.Email]; exists {
		return nil, ErrEmailTaken
	}

	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.NewString(),
		Username:     nu.Username,
		Email:        nu.Email,
		PasswordHash: nu.PasswordHash,
		Role:         nu.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users[nu.Email] = u

	cp := *u
	return &cp, nil
}

func (s *MemoryStore) FindActiveByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users[email]
	if !exists || !u.Active {
		return nil, ErrNotFound
	}

	cp := *u
	return &cp, nil
}

// Deactivate flips a stored account to inactive so tests can exercise the
// missing-vs-inactive conflation. Returns false if the email is unknown.
func (s *MemoryStore) Deactivate(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users[email]
	if !exists {
		return false
	}
	u.Active = false
	u.UpdatedAt = time.Now().UTC()
	return true
}
