package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory credential store with the same
// uniqueness semantics as the Postgres implementation. It exists for tests
// and local development without a database.
type MemoryRepository struct {
	mu      sync.Mutex
	byEmail map[string]*User
}

// NewMemoryRepository creates an empty in-memory credential store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byEmail: make(map[string]*User)}
}

func (r *MemoryRepository) Insert(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[u.Email]; ok {
		return ErrDuplicateEmail
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()

	stored := *u
	r.byEmail[u.Email] = &stored
	return nil
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	u := *stored
	return &u, nil
}
