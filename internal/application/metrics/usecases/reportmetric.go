package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/metrics"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/logger"
)

type ReportMetricCommand struct {
	Actor       authorization.Actor
	SystemID    string
	SystemName  string
	Status      string
	CPUUsage    int
	MemoryUsage int
	DiskUsage   int
}

type ReportMetricUseCase struct {
	metricRepo metrics.Repository
	logger     logger.Interface
}

func NewReportMetricUseCase(metricRepo metrics.Repository, logger logger.Interface) *ReportMetricUseCase {
	return &ReportMetricUseCase{
		metricRepo: metricRepo,
		logger:     logger,
	}
}

// Execute records a health snapshot for one system, replacing any previous
// snapshot with the same system ID. Staff only.
func (uc *ReportMetricUseCase) Execute(ctx context.Context, cmd ReportMetricCommand) (*MetricResult, error) {
	if decision := authorization.CanReportMetric(cmd.Actor); !decision.Allowed {
		return nil, errors.NewForbiddenError(decision.Reason)
	}

	status, err := metrics.NewSystemStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	metric, err := metrics.NewSystemMetric(cmd.SystemID, cmd.SystemName, status, cmd.CPUUsage, cmd.MemoryUsage, cmd.DiskUsage)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.metricRepo.Upsert(ctx, metric); err != nil {
		uc.logger.Errorw("failed to store system metric", "system_id", cmd.SystemID, "error", err)
		return nil, err
	}

	uc.logger.Infow("system metric reported", "system_id", cmd.SystemID, "status", status)
	return metricResultFrom(metric), nil
}
