package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/logs"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/logger"
	"github.com/Menatic/IT-Support/internal/shared/services/markdown"
)

type ListLogsQuery struct {
	Actor authorization.Actor
}

type ListLogsUseCase struct {
	logRepo  logs.Repository
	renderer markdown.MarkdownService
	logger   logger.Interface
}

func NewListLogsUseCase(logRepo logs.Repository, renderer markdown.MarkdownService, logger logger.Interface) *ListLogsUseCase {
	return &ListLogsUseCase{
		logRepo:  logRepo,
		renderer: renderer,
		logger:   logger,
	}
}

func (uc *ListLogsUseCase) Execute(ctx context.Context, query ListLogsQuery) ([]*LogResult, error) {
	var (
		list []*logs.Log
		err  error
	)

	if authorization.ScopesLogListToOwner(query.Actor) {
		list, err = uc.logRepo.ListByUser(ctx, query.Actor.UserID)
	} else {
		list, err = uc.logRepo.List(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list logs", "error", err)
		return nil, err
	}

	results := make([]*LogResult, 0, len(list))
	for _, l := range list {
		results = append(results, logResultFrom(l, uc.renderer))
	}
	return results, nil
}
