package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/user"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/logger"
)

type ListUsersQuery struct {
	Actor authorization.Actor
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) ([]*UserResult, error) {
	if decision := authorization.CanListUsers(query.Actor); !decision.Allowed {
		return nil, errors.NewForbiddenError(decision.Reason)
	}

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	results := make([]*UserResult, 0, len(users))
	for _, u := range users {
		results = append(results, userResultFrom(u))
	}
	return results, nil
}
