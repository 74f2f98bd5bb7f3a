package models

import "time"

type LogModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Content   string    `gorm:"type:text;not null"`
	UserID    uint      `gorm:"not null;index"`
	SystemID  string    `gorm:"size:100;index"`
	Analysis  *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (LogModel) TableName() string {
	return "logs"
}
