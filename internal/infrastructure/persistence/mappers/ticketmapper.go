package mappers

import (
	"github.com/Menatic/IT-Support/internal/domain/ticket"
	vo "github.com/Menatic/IT-Support/internal/domain/ticket/valueobjects"
	"github.com/Menatic/IT-Support/internal/infrastructure/persistence/models"
)

type TicketMapper struct{}

func NewTicketMapper() TicketMapper {
	return TicketMapper{}
}

func (TicketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
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

func (TicketMapper) ToDomain(m *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		m.ID,
		m.Title,
		m.Description,
		m.Category,
		vo.Priority(m.Priority),
		vo.TicketStatus(m.Status),
		m.RequesterID,
		m.AssigneeID,
		m.CreatedAt,
		m.UpdatedAt,
		m.ResolvedAt,
	)
}

type CommentMapper struct{}

func NewCommentMapper() CommentMapper {
	return CommentMapper{}
}

func (CommentMapper) ToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
	}
}

func (CommentMapper) ToDomain(m *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		m.ID,
		m.TicketID,
		m.UserID,
		m.Content,
		m.CreatedAt,
	)
}
