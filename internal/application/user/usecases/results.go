package usecases

import (
	"time"

	"github.com/Menatic/IT-Support/internal/domain/user"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
)

// UserResult never carries the password hash.
type UserResult struct {
	ID         uint
	Username   string
	Email      string
	Name       string
	Role       authorization.UserRole
	Department string
	CreatedAt  time.Time
}

func userResultFrom(u *user.User) *UserResult {
	return &UserResult{
		ID:         u.ID(),
		Username:   u.Username(),
		Email:      u.Email(),
		Name:       u.Name(),
		Role:       u.Role(),
		Department: u.Department(),
		CreatedAt:  u.CreatedAt(),
	}
}
