package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/Menatic/IT-Support/internal/domain/ticket"
	"github.com/Menatic/IT-Support/internal/infrastructure/persistence/mappers"
	"github.com/Menatic/IT-Support/internal/infrastructure/persistence/models"
	"github.com/Menatic/IT-Support/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.NewInternalError("Failed to save ticket", err.Error())
	}
	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	// Select("*") forces a full-record write so cleared nullable columns
	// (assignee) are persisted too.
	result := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Updates(model)
	if result.Error != nil {
		return errors.NewInternalError("Failed to update ticket", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := r.db.WithContext(ctx).First(&model, ticketID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("Ticket not found")
		}
		return nil, errors.NewInternalError("Failed to find ticket", err.Error())
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	query := r.db.WithContext(ctx).Model(&models.TicketModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.RequesterID != nil {
		query = query.Where("requester_id = ?", *filter.RequesterID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}

	var ticketModels []models.TicketModel
	if err := query.Order("created_at DESC, id DESC").Find(&ticketModels).Error; err != nil {
		return nil, errors.NewInternalError("Failed to list tickets", err.Error())
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, errors.NewInternalError("Failed to map ticket", err.Error())
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.CommentMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewCommentMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", c.TicketID()).
		Count(&count).Error; err != nil {
		return errors.NewInternalError("Failed to check ticket existence", err.Error())
	}
	if count == 0 {
		return errors.NewNotFoundError("Ticket not found")
	}

	model := r.mapper.ToModel(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.NewInternalError("Failed to save comment", err.Error())
	}
	return c.SetID(model.ID)
}

func (r *CommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var commentModels []models.CommentModel
	if err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&commentModels).Error; err != nil {
		return nil, errors.NewInternalError("Failed to list comments", err.Error())
	}

	comments := make([]*ticket.Comment, 0, len(commentModels))
	for i := range commentModels {
		c, err := r.mapper.ToDomain(&commentModels[i])
		if err != nil {
			return nil, errors.NewInternalError("Failed to map comment", err.Error())
		}
		comments = append(comments, c)
	}
	return comments, nil
}
