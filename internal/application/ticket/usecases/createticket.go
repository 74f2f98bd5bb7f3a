package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/ticket"
	vo "github.com/Menatic/IT-Support/internal/domain/ticket/valueobjects"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/logger"
)

type CreateTicketCommand struct {
	Actor       authorization.Actor
	Title       string
	Description string
	Category    string
	Priority    string
	Status      string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCreateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*TicketResult, error) {
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	status := vo.StatusOpen
	if cmd.Status != "" {
		status, err = vo.NewTicketStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		cmd.Category,
		priority,
		status,
		cmd.Actor.UserID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "requester_id", cmd.Actor.UserID)
	return ticketResultFrom(newTicket), nil
}
