package ticket

import (
	"context"

	vo "github.com/Menatic/IT-Support/internal/domain/ticket/valueobjects"
)

// Filter narrows ticket listings. All set fields must match (conjunctive).
type Filter struct {
	Status      *vo.TicketStatus
	RequesterID *uint
	AssigneeID  *uint
}

type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// List returns tickets matching the filter, newest first.
	List(ctx context.Context, filter Filter) ([]*Ticket, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	// GetByTicketID returns the ticket's comments, oldest first.
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}
