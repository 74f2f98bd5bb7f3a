package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/ticket"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/logger"
)

type AddCommentCommand struct {
	Actor    authorization.Actor
	TicketID uint
	Content  string
}

type AddCommentUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*CommentResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if decision := authorization.CanCommentOnTicket(cmd.Actor, t.RequesterID()); !decision.Allowed {
		return nil, errors.NewForbiddenError(decision.Reason)
	}

	comment, err := ticket.NewComment(t.ID(), cmd.Actor.UserID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	return commentResultFrom(comment), nil
}
