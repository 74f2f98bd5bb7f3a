package memory

import (
	"context"
	"sort"

	"github.com/Menatic/IT-Support/internal/domain/ticket"
	"github.com/Menatic/IT-Support/internal/shared/errors"
)

type TicketRepository struct {
	store *Store
}

func cloneTicket(t *ticket.Ticket) *ticket.Ticket {
	clone, err := ticket.ReconstructTicket(
		t.ID(), t.Title(), t.Description(), t.Category(),
		t.Priority(), t.Status(), t.RequesterID(), t.AssigneeID(),
		t.CreatedAt(), t.UpdatedAt(), t.ResolvedAt(),
	)
	if err != nil {
		panic("memory: failed to clone ticket: " + err.Error())
	}
	return clone
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextTicketID++
	if err := t.SetID(r.store.nextTicketID); err != nil {
		return errors.NewInternalError("Failed to assign ticket ID", err.Error())
	}
	r.store.tickets[t.ID()] = cloneTicket(t)
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tickets[t.ID()]; !ok {
		return errors.NewNotFoundError("Ticket not found")
	}
	r.store.tickets[t.ID()] = cloneTicket(t)
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.tickets[ticketID]
	if !ok {
		return nil, errors.NewNotFoundError("Ticket not found")
	}
	return cloneTicket(t), nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tickets := make([]*ticket.Ticket, 0, len(r.store.tickets))
	for _, t := range r.store.tickets {
		if filter.Status != nil && t.Status() != *filter.Status {
			continue
		}
		if filter.RequesterID != nil && t.RequesterID() != *filter.RequesterID {
			continue
		}
		if filter.AssigneeID != nil {
			if t.AssigneeID() == nil || *t.AssigneeID() != *filter.AssigneeID {
				continue
			}
		}
		tickets = append(tickets, cloneTicket(t))
	}

	// Newest first; ids break ties for stable order within one timestamp.
	sort.Slice(tickets, func(i, j int) bool {
		if tickets[i].CreatedAt().Equal(tickets[j].CreatedAt()) {
			return tickets[i].ID() > tickets[j].ID()
		}
		return tickets[i].CreatedAt().After(tickets[j].CreatedAt())
	})
	return tickets, nil
}

type CommentRepository struct {
	store *Store
}

func cloneComment(c *ticket.Comment) *ticket.Comment {
	clone, err := ticket.ReconstructComment(
		c.ID(), c.TicketID(), c.UserID(), c.Content(), c.CreatedAt(),
	)
	if err != nil {
		panic("memory: failed to clone comment: " + err.Error())
	}
	return clone
}

func (r *CommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tickets[c.TicketID()]; !ok {
		return errors.NewNotFoundError("Ticket not found")
	}

	r.store.nextCommentID++
	if err := c.SetID(r.store.nextCommentID); err != nil {
		return errors.NewInternalError("Failed to assign comment ID", err.Error())
	}
	r.store.comments[c.ID()] = cloneComment(c)
	return nil
}

func (r *CommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	comments := make([]*ticket.Comment, 0)
	for _, c := range r.store.comments {
		if c.TicketID() == ticketID {
			comments = append(comments, cloneComment(c))
		}
	}

	// Oldest first.
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt().Equal(comments[j].CreatedAt()) {
			return comments[i].ID() < comments[j].ID()
		}
		return comments[i].CreatedAt().Before(comments[j].CreatedAt())
	})
	return comments, nil
}
