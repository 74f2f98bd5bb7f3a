package models

import "time"

type UserModel struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;size:64;not null"`
	PasswordHash string    `gorm:"size:100;not null"`
	Email        string    `gorm:"uniqueIndex;size:255;not null"`
	Name         string    `gorm:"size:100;not null"`
	Role         string    `gorm:"size:20;not null;index"`
	Department   string    `gorm:"size:100"`
	CreatedAt    time.Time `gorm:"not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}
