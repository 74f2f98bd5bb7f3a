package models

import "time"

type TicketModel struct {
	ID          uint       `gorm:"primaryKey"`
	Title       string     `gorm:"size:200;not null"`
	Description string     `gorm:"type:text;not null"`
	Category    string     `gorm:"size:50;index"`
	Priority    string     `gorm:"size:20;not null;index"`
	Status      string     `gorm:"size:20;not null;index"`
	RequesterID uint       `gorm:"not null;index"`
	AssigneeID  *uint      `gorm:"index"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	UpdatedAt   time.Time  `gorm:"not null"`
	ResolvedAt  *time.Time
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID        uint      `gorm:"primaryKey"`
	TicketID  uint      `gorm:"not null;index"`
	UserID    uint      `gorm:"not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}
