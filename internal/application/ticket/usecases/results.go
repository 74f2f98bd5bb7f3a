package usecases

import (
	"time"

	"github.com/Menatic/IT-Support/internal/domain/ticket"
)

type TicketResult struct {
	ID          uint
	Title       string
	Description string
	Category    string
	Priority    string
	Status      string
	RequesterID uint
	AssigneeID  *uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ResolvedAt  *time.Time
}

func ticketResultFrom(t *ticket.Ticket) *TicketResult {
	return &TicketResult{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Category:    t.Category(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		RequesterID: t.RequesterID(),
		AssigneeID:  t.AssigneeID(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		ResolvedAt:  t.ResolvedAt(),
	}
}

type CommentResult struct {
	ID        uint
	TicketID  uint
	UserID    uint
	Content   string
	CreatedAt time.Time
}

func commentResultFrom(c *ticket.Comment) *CommentResult {
	return &CommentResult{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
	}
}
