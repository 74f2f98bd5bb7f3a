package memory

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/user"
	"github.com/Menatic/IT-Support/internal/shared/errors"
)

type UserRepository struct {
	store *Store
}

func cloneUser(u *user.User) *user.User {
	clone, err := user.ReconstructUser(
		u.ID(), u.Username(), u.PasswordHash(), u.Email(), u.Name(),
		u.Role(), u.Department(), u.CreatedAt(),
	)
	if err != nil {
		// Only reachable with a corrupted record already in the map.
		panic("memory: failed to clone user: " + err.Error())
	}
	return clone
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Username() == u.Username() {
			return errors.NewConflictError("Username already exists")
		}
		if existing.Email() == u.Email() {
			return errors.NewConflictError("Email already exists")
		}
	}

	r.store.nextUserID++
	if err := u.SetID(r.store.nextUserID); err != nil {
		return errors.NewInternalError("Failed to assign user ID", err.Error())
	}
	r.store.users[u.ID()] = cloneUser(u)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[userID]
	if !ok {
		return nil, errors.NewNotFoundError("User not found")
	}
	return cloneUser(u), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.Username() == username {
			return cloneUser(u), nil
		}
	}
	return nil, errors.NewNotFoundError("User not found")
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.Email() == email {
			return cloneUser(u), nil
		}
	}
	return nil, errors.NewNotFoundError("User not found")
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]*user.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		users = append(users, cloneUser(u))
	}
	sortByID(users, func(u *user.User) uint { return u.ID() })
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.users)), nil
}
