package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/logs"
)

type mockLogRepository struct {
	SaveFunc       func(ctx context.Context, l *logs.Log) error
	UpdateFunc     func(ctx context.Context, l *logs.Log) error
	GetByIDFunc    func(ctx context.Context, logID uint) (*logs.Log, error)
	ListFunc       func(ctx context.Context) ([]*logs.Log, error)
	ListByUserFunc func(ctx context.Context, userID uint) ([]*logs.Log, error)
}

func (m *mockLogRepository) Save(ctx context.Context, l *logs.Log) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, l)
	}
	return nil
}

func (m *mockLogRepository) Update(ctx context.Context, l *logs.Log) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, l)
	}
	return nil
}

func (m *mockLogRepository) GetByID(ctx context.Context, logID uint) (*logs.Log, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, logID)
	}
	return nil, nil
}

func (m *mockLogRepository) List(ctx context.Context) ([]*logs.Log, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockLogRepository) ListByUser(ctx context.Context, userID uint) ([]*logs.Log, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
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
