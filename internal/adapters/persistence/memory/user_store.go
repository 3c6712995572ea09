package memory

import (
	"context"
	"time"

	"vesselhub/internal/core/domain"
)

// UserStore is the user view over the shared store
type UserStore struct {
	s *Store
}

// Users returns the user repository backed by this store
func (s *Store) Users() *UserStore {
	return &UserStore{s: s}
}

// Create inserts a new user. Emails are unique, compared case-sensitive
// as stored.
func (r *UserStore) Create(ctx context.Context, user domain.User) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.findUserByEmailLocked(user.Email) != nil {
		return nil, domain.ErrEmailTaken
	}

	user.ID = r.s.allocateLocked()
	user.CreatedAt = time.Now()
	r.s.users[user.ID] = user

	stored := user
	return &stored, nil
}

// GetByID gets a user by ID
func (r *UserStore) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

// GetByEmail gets a user by email via linear scan
func (r *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user := r.s.findUserByEmailLocked(email)
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// ExistsByEmail checks if email is already registered
func (r *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.s.findUserByEmailLocked(email) != nil, nil
}

// findUserByEmailLocked scans users by email and returns a copy.
// Caller holds the lock.
func (s *Store) findUserByEmailLocked(email string) *domain.User {
	for id := range s.users {
		if s.users[id].Email == email {
			user := s.users[id]
			return &user
		}
	}
	return nil
}
