package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Menatic/IT-Support/internal/domain/metrics"
	"github.com/Menatic/IT-Support/internal/infrastructure/persistence/mappers"
	"github.com/Menatic/IT-Support/internal/infrastructure/persistence/models"
	"github.com/Menatic/IT-Support/internal/shared/errors"
)

type MetricRepository struct {
	db     *gorm.DB
	mapper mappers.MetricMapper
}

func NewMetricRepository(db *gorm.DB) *MetricRepository {
	return &MetricRepository{
		db:     db,
		mapper: mappers.NewMetricMapper(),
	}
}

func (r *MetricRepository) Upsert(ctx context.Context, m *metrics.SystemMetric) error {
	model := r.mapper.ToModel(m)
	model.ID = 0

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "system_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"system_name", "status", "cpu_usage", "memory_usage", "disk_usage", "updated_at",
			}),
		}).
		Create(model).Error
	if err != nil {
		return errors.NewInternalError("Failed to upsert system metric", err.Error())
	}
	return nil
}

func (r *MetricRepository) GetBySystemID(ctx context.Context, systemID string) (*metrics.SystemMetric, error) {
	var model models.SystemMetricModel
	if err := r.db.WithContext(ctx).Where("system_id = ?", systemID).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("System metric not found")
		}
		return nil, errors.NewInternalError("Failed to find system metric", err.Error())
	}
	return r.mapper.ToDomain(&model)
}

func (r *MetricRepository) List(ctx context.Context) ([]*metrics.SystemMetric, error) {
	var metricModels []models.SystemMetricModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&metricModels).Error; err != nil {
		return nil, errors.NewInternalError("Failed to list system metrics", err.Error())
	}

	result := make([]*metrics.SystemMetric, 0, len(metricModels))
	for i := range metricModels {
		m, err := r.mapper.ToDomain(&metricModels[i])
		if err != nil {
			return nil, errors.NewInternalError("Failed to map system metric", err.Error())
		}
		result = append(result, m)
	}
	return result, nil
}
