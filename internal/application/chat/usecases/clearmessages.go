package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/chat"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/logger"
)

type ClearMessagesCommand struct {
	Actor authorization.Actor
}

type ClearMessagesUseCase struct {
	chatRepo chat.Repository
	logger   logger.Interface
}

func NewClearMessagesUseCase(chatRepo chat.Repository, logger logger.Interface) *ClearMessagesUseCase {
	return &ClearMessagesUseCase{
		chatRepo: chatRepo,
		logger:   logger,
	}
}

// Execute deletes the caller's own history and nothing else.
func (uc *ClearMessagesUseCase) Execute(ctx context.Context, cmd ClearMessagesCommand) error {
	if err := uc.chatRepo.ClearByUser(ctx, cmd.Actor.UserID); err != nil {
		uc.logger.Errorw("failed to clear chat history", "user_id", cmd.Actor.UserID, "error", err)
		return err
	}

	uc.logger.Infow("chat history cleared", "user_id", cmd.Actor.UserID)
	return nil
}
