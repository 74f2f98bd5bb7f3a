package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Menatic/IT-Support/internal/domain/chat"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/logger"
	"github.com/Menatic/IT-Support/internal/shared/services/markdown"
)

func employeeActor(id uint) authorization.Actor {
	return authorization.Actor{UserID: id, Role: authorization.RoleEmployee}
}

func savingChatRepo(saved *[]*chat.Message) *mockChatRepository {
	return &mockChatRepository{
		SaveFunc: func(ctx context.Context, message *chat.Message) error {
			*saved = append(*saved, message)
			return message.SetID(uint(len(*saved)))
		},
	}
}

func TestSendMessage_RepliesWithAssistant(t *testing.T) {
	var saved []*chat.Message
	gateway := &mockGateway{
		ChatReplyFunc: func(ctx context.Context, userMessage string) (string, error) {
			return "Try restarting the **print spooler** service.", nil
		},
	}
	uc := NewSendMessageUseCase(savingChatRepo(&saved), gateway, markdown.NewMarkdownService(), logger.NewNop())

	result, err := uc.Execute(context.Background(), SendMessageCommand{
		Actor:   employeeActor(4),
		Content: "My printer is not working",
	})
	require.NoError(t, err)

	require.Len(t, saved, 2)
	assert.False(t, result.UserMessage.IsBot)
	assert.Equal(t, "My printer is not working", result.UserMessage.Content)
	assert.True(t, result.BotMessage.IsBot)
	assert.Equal(t, "Try restarting the **print spooler** service.", result.BotMessage.Content)
	require.NotNil(t, result.BotMessage.ContentHTML)
	assert.Contains(t, *result.BotMessage.ContentHTML, "<strong>print spooler</strong>")
	assert.Nil(t, result.UserMessage.ContentHTML)
}

func TestSendMessage_FallbackWhenAssistantFails(t *testing.T) {
	var saved []*chat.Message
	gateway := &mockGateway{
		ChatReplyFunc: func(ctx context.Context, userMessage string) (string, error) {
			return "", errors.NewUpstreamError("AI provider is not configured")
		},
	}
	uc := NewSendMessageUseCase(savingChatRepo(&saved), gateway, markdown.NewMarkdownService(), logger.NewNop())

	result, err := uc.Execute(context.Background(), SendMessageCommand{
		Actor:   employeeActor(4),
		Content: "Help",
	})
	require.NoError(t, err)

	require.Len(t, saved, 2)
	assert.True(t, result.BotMessage.IsBot)
	assert.Equal(t, fallbackReply, result.BotMessage.Content)
}

func TestSendMessage_EmptyContent(t *testing.T) {
	uc := NewSendMessageUseCase(&mockChatRepository{}, &mockGateway{}, markdown.NewMarkdownService(), logger.NewNop())

	_, err := uc.Execute(context.Background(), SendMessageCommand{Actor: employeeActor(4)})
	assert.True(t, errors.IsValidationError(err))
}

func TestListMessages_LimitHandling(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{"default when unset", 0, 50},
		{"explicit limit kept", 20, 20},
		{"capped at maximum", 1000, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLimit int
			repo := &mockChatRepository{
				ListByUserFunc: func(ctx context.Context, userID uint, limit int) ([]*chat.Message, error) {
					gotLimit = limit
					assert.Equal(t, uint(4), userID)
					return nil, nil
				},
			}
			uc := NewListMessagesUseCase(repo, markdown.NewMarkdownService(), logger.NewNop())

			_, err := uc.Execute(context.Background(), ListMessagesQuery{Actor: employeeActor(4), Limit: tt.requested})
			require.NoError(t, err)
			assert.Equal(t, tt.want, gotLimit)
		})
	}
}

func TestClearMessages_ScopedToCaller(t *testing.T) {
	var cleared uint
	repo := &mockChatRepository{
		ClearByUserFunc: func(ctx context.Context, userID uint) error {
			cleared = userID
			return nil
		},
	}
	uc := NewClearMessagesUseCase(repo, logger.NewNop())

	err := uc.Execute(context.Background(), ClearMessagesCommand{Actor: employeeActor(4)})
	require.NoError(t, err)
	assert.Equal(t, uint(4), cleared)
}
