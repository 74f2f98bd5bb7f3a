// Package mappers converts between domain entities and persistence models.
package mappers

import (
	"github.com/Menatic/IT-Support/internal/domain/user"
	"github.com/Menatic/IT-Support/internal/infrastructure/persistence/models"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
)

type UserMapper struct{}

func NewUserMapper() UserMapper {
	return UserMapper{}
}

func (UserMapper) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		Email:        u.Email(),
		Name:         u.Name(),
		Role:         u.Role().String(),
		Department:   u.Department(),
		CreatedAt:    u.CreatedAt(),
	}
}

func (UserMapper) ToDomain(m *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		m.ID,
		m.Username,
		m.PasswordHash,
		m.Email,
		m.Name,
		authorization.UserRole(m.Role),
		m.Department,
		m.CreatedAt,
	)
}
