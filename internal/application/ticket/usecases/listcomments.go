package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/ticket"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/logger"
)

type ListCommentsQuery struct {
	Actor    authorization.Actor
	TicketID uint
}

type ListCommentsUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]*CommentResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if decision := authorization.CanCommentOnTicket(query.Actor, t.RequesterID()); !decision.Allowed {
		return nil, errors.NewForbiddenError(decision.Reason)
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	results := make([]*CommentResult, 0, len(comments))
	for _, c := range comments {
		results = append(results, commentResultFrom(c))
	}
	return results, nil
}
