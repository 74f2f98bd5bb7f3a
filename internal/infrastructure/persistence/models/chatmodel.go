package models

import "time"

type ChatMessageModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	IsBot     bool      `gorm:"not null;default:false"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
