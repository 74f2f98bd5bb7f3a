package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/chat"
	"github.com/Menatic/IT-Support/internal/infrastructure/ai"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/logger"
	"github.com/Menatic/IT-Support/internal/shared/services/markdown"
)

// fallbackReply stands in for the assistant whenever the AI provider is
// unreachable, so a user message is always answered.
const fallbackReply = "I'm sorry, I'm having trouble processing your request right now. Please try again later."

type SendMessageCommand struct {
	Actor   authorization.Actor
	Content string
}

// SendMessageResult carries both halves of one exchange.
type SendMessageResult struct {
	UserMessage *MessageResult
	BotMessage  *MessageResult
}

type SendMessageUseCase struct {
	chatRepo chat.Repository
	gateway  ai.Gateway
	renderer markdown.MarkdownService
	logger   logger.Interface
}

func NewSendMessageUseCase(
	chatRepo chat.Repository,
	gateway ai.Gateway,
	renderer markdown.MarkdownService,
	logger logger.Interface,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		chatRepo: chatRepo,
		gateway:  gateway,
		renderer: renderer,
		logger:   logger,
	}
}

// Execute stores the user's message, asks the assistant for a reply and
// stores that too. Every user message gets a bot reply; when the provider
// fails the reply is a canned apology rather than an error.
func (uc *SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) (*SendMessageResult, error) {
	userMsg, err := chat.NewMessage(cmd.Actor.UserID, false, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.chatRepo.Save(ctx, userMsg); err != nil {
		uc.logger.Errorw("failed to save chat message", "user_id", cmd.Actor.UserID, "error", err)
		return nil, err
	}

	reply, err := uc.gateway.ChatReply(ctx, cmd.Content)
	if err != nil {
		uc.logger.Warnw("assistant reply failed", "user_id", cmd.Actor.UserID, "error", err)
		reply = fallbackReply
	}

	botMsg, err := chat.NewMessage(cmd.Actor.UserID, true, reply)
	if err != nil {
		return nil, errors.NewInternalError("failed to build assistant reply")
	}

	if err := uc.chatRepo.Save(ctx, botMsg); err != nil {
		uc.logger.Errorw("failed to save assistant reply", "user_id", cmd.Actor.UserID, "error", err)
		return nil, err
	}

	return &SendMessageResult{
		UserMessage: messageResultFrom(userMsg, uc.renderer),
		BotMessage:  messageResultFrom(botMsg, uc.renderer),
	}, nil
}
