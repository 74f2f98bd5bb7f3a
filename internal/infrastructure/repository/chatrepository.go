package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Menatic/IT-Support/internal/domain/chat"
	"github.com/Menatic/IT-Support/internal/infrastructure/persistence/mappers"
	"github.com/Menatic/IT-Support/internal/infrastructure/persistence/models"
	"github.com/Menatic/IT-Support/internal/shared/errors"
)

type ChatRepository struct {
	db     *gorm.DB
	mapper mappers.ChatMapper
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{
		db:     db,
		mapper: mappers.NewChatMapper(),
	}
}

func (r *ChatRepository) Save(ctx context.Context, m *chat.Message) error {
	model := r.mapper.ToModel(m)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.NewInternalError("Failed to save chat message", err.Error())
	}
	return m.SetID(model.ID)
}

func (r *ChatRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*chat.Message, error) {
	// Fetch the most recent messages, then reverse into chronological order.
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var messageModels []models.ChatMessageModel
	if err := query.Find(&messageModels).Error; err != nil {
		return nil, errors.NewInternalError("Failed to list chat messages", err.Error())
	}

	result := make([]*chat.Message, len(messageModels))
	for i := range messageModels {
		m, err := r.mapper.ToDomain(&messageModels[i])
		if err != nil {
			return nil, errors.NewInternalError("Failed to map chat message", err.Error())
		}
		result[len(messageModels)-1-i] = m
	}
	return result, nil
}

func (r *ChatRepository) ClearByUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.ChatMessageModel{}).Error; err != nil {
		return errors.NewInternalError("Failed to clear chat messages", err.Error())
	}
	return nil
}
