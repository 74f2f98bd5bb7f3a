package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/logs"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/logger"
	"github.com/Menatic/IT-Support/internal/shared/services/markdown"
)

type GetLogQuery struct {
	Actor authorization.Actor
	LogID uint
}

type GetLogUseCase struct {
	logRepo  logs.Repository
	renderer markdown.MarkdownService
	logger   logger.Interface
}

func NewGetLogUseCase(logRepo logs.Repository, renderer markdown.MarkdownService, logger logger.Interface) *GetLogUseCase {
	return &GetLogUseCase{
		logRepo:  logRepo,
		renderer: renderer,
		logger:   logger,
	}
}

func (uc *GetLogUseCase) Execute(ctx context.Context, query GetLogQuery) (*LogResult, error) {
	l, err := uc.logRepo.GetByID(ctx, query.LogID)
	if err != nil {
		return nil, err
	}

	if decision := authorization.CanViewLog(query.Actor, l.UserID()); !decision.Allowed {
		return nil, errors.NewForbiddenError(decision.Reason)
	}

	return logResultFrom(l, uc.renderer), nil
}
