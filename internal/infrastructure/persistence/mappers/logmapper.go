package mappers

import (
	"github.com/Menatic/IT-Support/internal/domain/logs"
	"github.com/Menatic/IT-Support/internal/infrastructure/persistence/models"
)

type LogMapper struct{}

func NewLogMapper() LogMapper {
	return LogMapper{}
}

func (LogMapper) ToModel(l *logs.Log) *models.LogModel {
	return &models.LogModel{
		ID:        l.ID(),
		Name:      l.Name(),
		Content:   l.Content(),
		UserID:    l.UserID(),
		SystemID:  l.SystemID(),
		Analysis:  l.Analysis(),
		CreatedAt: l.CreatedAt(),
	}
}

func (LogMapper) ToDomain(m *models.LogModel) (*logs.Log, error) {
	return logs.ReconstructLog(
		m.ID,
		m.Name,
		m.Content,
		m.UserID,
		m.SystemID,
		m.Analysis,
		m.CreatedAt,
	)
}
