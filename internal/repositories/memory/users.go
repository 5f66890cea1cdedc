package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
)

// UserRepository stores users in a Store.
type UserRepository struct {
	s *Store
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{s: s}
}

// Create inserts a user. The email must be unused.
func (r *UserRepository) Create(ctx context.Context, user models.UserDB) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.emails[user.Email]; ok {
		return models.ErrAlreadyExists
	}
	if _, ok := r.s.users[user.UserID]; ok {
		return models.ErrAlreadyExists
	}

	r.s.users[user.UserID] = user
	r.s.emails[user.Email] = user.UserID
	record(ctx, func() {
		delete(r.s.users, user.UserID)
		delete(r.s.emails, user.Email)
	})
	return nil
}

// GetByEmail returns the user with the given email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.emails[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	user := r.s.users[id]
	return &user, nil
}

// GetByID returns the user with the given id.
func (r *UserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[userID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &user, nil
}
