package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/user"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/logger"
)

type RegisterCommand struct {
	Username   string
	Password   string
	Email      string
	Name       string
	Department string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Execute creates a new employee account. Staff roles are never
// self-assigned through registration.
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*UserResult, error) {
	if len(cmd.Password) < 6 {
		return nil, errors.NewValidationError("password must be at least 6 characters long")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("Failed to process password")
	}

	newUser, err := user.NewUser(cmd.Username, hash, cmd.Email, cmd.Name, authorization.RoleEmployee, cmd.Department)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Warnw("failed to register user", "username", cmd.Username, "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "username", newUser.Username())
	return userResultFrom(newUser), nil
}
