package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/glowpoint/salon-backend-go/internal/domain/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]user.User)}
}

func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrEmailExists
		}
	}

	now := time.Now()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID] = *u

	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			result := u
			return &result, nil
		}
	}
	return nil, user.ErrUserNotFound
}
