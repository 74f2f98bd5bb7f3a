package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/Menatic/IT-Support/internal/domain/logs"
	"github.com/Menatic/IT-Support/internal/infrastructure/persistence/mappers"
	"github.com/Menatic/IT-Support/internal/infrastructure/persistence/models"
	"github.com/Menatic/IT-Support/internal/shared/errors"
)

type LogRepository struct {
	db     *gorm.DB
	mapper mappers.LogMapper
}

func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{
		db:     db,
		mapper: mappers.NewLogMapper(),
	}
}

func (r *LogRepository) Save(ctx context.Context, l *logs.Log) error {
	model := r.mapper.ToModel(l)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.NewInternalError("Failed to save log", err.Error())
	}
	return l.SetID(model.ID)
}

func (r *LogRepository) Update(ctx context.Context, l *logs.Log) error {
	model := r.mapper.ToModel(l)
	result := r.db.WithContext(ctx).
		Model(&models.LogModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Updates(model)
	if result.Error != nil {
		return errors.NewInternalError("Failed to update log", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Log not found")
	}
	return nil
}

func (r *LogRepository) GetByID(ctx context.Context, logID uint) (*logs.Log, error) {
	var model models.LogModel
	if err := r.db.WithContext(ctx).First(&model, logID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("Log not found")
		}
		return nil, errors.NewInternalError("Failed to find log", err.Error())
	}
	return r.mapper.ToDomain(&model)
}

func (r *LogRepository) List(ctx context.Context) ([]*logs.Log, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *LogRepository) ListByUser(ctx context.Context, userID uint) ([]*logs.Log, error) {
	return r.list(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *LogRepository) list(query *gorm.DB) ([]*logs.Log, error) {
	var logModels []models.LogModel
	if err := query.Order("created_at DESC, id DESC").Find(&logModels).Error; err != nil {
		return nil, errors.NewInternalError("Failed to list logs", err.Error())
	}

	result := make([]*logs.Log, 0, len(logModels))
	for i := range logModels {
		l, err := r.mapper.ToDomain(&logModels[i])
		if err != nil {
			return nil, errors.NewInternalError("Failed to map log", err.Error())
		}
		result = append(result, l)
	}
	return result, nil
}
