package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/user"
	"github.com/Menatic/IT-Support/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID uint
}

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*UserResult, error) {
	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	return userResultFrom(u), nil
}
