package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/metrics"
)

type mockMetricRepository struct {
	UpsertFunc        func(ctx context.Context, metric *metrics.SystemMetric) error
	GetBySystemIDFunc func(ctx context.Context, systemID string) (*metrics.SystemMetric, error)
	ListFunc          func(ctx context.Context) ([]*metrics.SystemMetric, error)
}

func (m *mockMetricRepository) Upsert(ctx context.Context, metric *metrics.SystemMetric) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, metric)
	}
	return nil
}

func (m *mockMetricRepository) GetBySystemID(ctx context.Context, systemID string) (*metrics.SystemMetric, error) {
	if m.GetBySystemIDFunc != nil {
		return m.GetBySystemIDFunc(ctx, systemID)
	}
	return nil, nil
}

func (m *mockMetricRepository) List(ctx context.Context) ([]*metrics.SystemMetric, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}
