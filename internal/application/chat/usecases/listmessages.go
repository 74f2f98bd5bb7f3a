package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/chat"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/logger"
	"github.com/Menatic/IT-Support/internal/shared/services/markdown"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type ListMessagesQuery struct {
	Actor authorization.Actor
	Limit int
}

type ListMessagesUseCase struct {
	chatRepo chat.Repository
	renderer markdown.MarkdownService
	logger   logger.Interface
}

func NewListMessagesUseCase(chatRepo chat.Repository, renderer markdown.MarkdownService, logger logger.Interface) *ListMessagesUseCase {
	return &ListMessagesUseCase{
		chatRepo: chatRepo,
		renderer: renderer,
		logger:   logger,
	}
}

// Execute returns the caller's own history, oldest first. History is never
// visible across users, whatever the role.
func (uc *ListMessagesUseCase) Execute(ctx context.Context, query ListMessagesQuery) ([]*MessageResult, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	messages, err := uc.chatRepo.ListByUser(ctx, query.Actor.UserID, limit)
	if err != nil {
		uc.logger.Errorw("failed to list chat messages", "user_id", query.Actor.UserID, "error", err)
		return nil, err
	}

	return messageResultsFrom(messages, uc.renderer), nil
}
