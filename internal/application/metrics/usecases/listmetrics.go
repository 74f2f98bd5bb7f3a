package usecases

import (
	"context"
	"time"

	"github.com/Menatic/IT-Support/internal/domain/metrics"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/logger"
)

type MetricResult struct {
	ID          uint
	SystemID    string
	SystemName  string
	Status      string
	CPUUsage    int
	MemoryUsage int
	DiskUsage   int
	UpdatedAt   time.Time
}

func metricResultFrom(m *metrics.SystemMetric) *MetricResult {
	return &MetricResult{
		ID:          m.ID(),
		SystemID:    m.SystemID(),
		SystemName:  m.SystemName(),
		Status:      m.Status().String(),
		CPUUsage:    m.CPUUsage(),
		MemoryUsage: m.MemoryUsage(),
		DiskUsage:   m.DiskUsage(),
		UpdatedAt:   m.UpdatedAt(),
	}
}

type ListMetricsQuery struct {
	Actor authorization.Actor
}

type ListMetricsUseCase struct {
	metricRepo metrics.Repository
	logger     logger.Interface
}

func NewListMetricsUseCase(metricRepo metrics.Repository, logger logger.Interface) *ListMetricsUseCase {
	return &ListMetricsUseCase{
		metricRepo: metricRepo,
		logger:     logger,
	}
}

// Execute returns the latest snapshot of every monitored system. Any
// authenticated user may read the dashboard.
func (uc *ListMetricsUseCase) Execute(ctx context.Context, query ListMetricsQuery) ([]*MetricResult, error) {
	all, err := uc.metricRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list system metrics", "error", err)
		return nil, err
	}

	results := make([]*MetricResult, 0, len(all))
	for _, m := range all {
		results = append(results, metricResultFrom(m))
	}
	return results, nil
}
