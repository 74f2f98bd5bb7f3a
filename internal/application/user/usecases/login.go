package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/user"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*UserResult, error) {
	u, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Same answer whether the user or the password is wrong.
			return nil, errors.NewUnauthorizedError("Invalid username or password")
		}
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("Invalid username or password")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "username", u.Username())
	return userResultFrom(u), nil
}
