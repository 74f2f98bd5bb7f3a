package mappers

import (
	"github.com/Menatic/IT-Support/internal/domain/chat"
	"github.com/Menatic/IT-Support/internal/infrastructure/persistence/models"
)

type ChatMapper struct{}

func NewChatMapper() ChatMapper {
	return ChatMapper{}
}

func (ChatMapper) ToModel(m *chat.Message) *models.ChatMessageModel {
	return &models.ChatMessageModel{
		ID:        m.ID(),
		UserID:    m.UserID(),
		IsBot:     m.IsBot(),
		Content:   m.Content(),
		CreatedAt: m.CreatedAt(),
	}
}

func (ChatMapper) ToDomain(m *models.ChatMessageModel) (*chat.Message, error) {
	return chat.ReconstructMessage(
		m.ID,
		m.UserID,
		m.IsBot,
		m.Content,
		m.CreatedAt,
	)
}
