package memory

import (
	"context"

	"github.com/smartpark/sims-api/internal/domain"
	"github.com/smartpark/sims-api/internal/domain/entity"
	"github.com/smartpark/sims-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository in-memory UserRepository.
type UserRepository struct {
	store *Store
}

// NewUserRepository builds the repository over the store.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create stores a new user, enforcing username uniqueness like the DB does.
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	r.store.users[user.ID] = *user
	return nil
}

// GetByID returns a copy of the user, or nil when it does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if u, ok := r.store.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

// GetByUsername returns a copy of the user, or nil when it does not exist.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}
