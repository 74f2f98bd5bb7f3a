package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/chat"
)

type mockChatRepository struct {
	SaveFunc        func(ctx context.Context, message *chat.Message) error
	ListByUserFunc  func(ctx context.Context, userID uint, limit int) ([]*chat.Message, error)
	ClearByUserFunc func(ctx context.Context, userID uint) error
}

func (m *mockChatRepository) Save(ctx context.Context, message *chat.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, message)
	}
	return nil
}

func (m *mockChatRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*chat.Message, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockChatRepository) ClearByUser(ctx context.Context, userID uint) error {
	if m.ClearByUserFunc != nil {
		return m.ClearByUserFunc(ctx, userID)
	}
	return nil
}

type mockGateway struct {
	AnalyzeLogFunc func(ctx context.Context, logContent string) (string, error)
	ChatReplyFunc  func(ctx context.Context, userMessage string) (string, error)
	EnabledValue   bool
}

func (m *mockGateway) AnalyzeLog(ctx context.Context, logContent string) (string, error) {
	if m.AnalyzeLogFunc != nil {
		return m.AnalyzeLogFunc(ctx, logContent)
	}
	return "", nil
}

func (m *mockGateway) ChatReply(ctx context.Context, userMessage string) (string, error) {
	if m.ChatReplyFunc != nil {
		return m.ChatReplyFunc(ctx, userMessage)
	}
	return "", nil
}

func (m *mockGateway) Enabled() bool {
	return m.EnabledValue
}
