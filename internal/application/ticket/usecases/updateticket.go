package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/ticket"
	vo "github.com/Menatic/IT-Support/internal/domain/ticket/valueobjects"
	"github.com/Menatic/IT-Support/internal/domain/user"
	"github.com/Menatic/IT-Support/internal/infrastructure/email"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/goroutine"
	"github.com/Menatic/IT-Support/internal/shared/logger"
)

type UpdateTicketCommand struct {
	Actor         authorization.Actor
	TicketID      uint
	Title         *string
	Description   *string
	Category      *string
	Priority      *string
	Status        *string
	AssigneeID    *uint
	ClearAssignee bool
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	notifier   email.TicketNotifier
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	notifier email.TicketNotifier,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	scope := authorization.TicketUpdateScopeFor(cmd.Actor, t.RequesterID())
	switch scope {
	case authorization.TicketUpdateNone:
		return nil, errors.NewForbiddenError("you don't have permission to modify this ticket")
	case authorization.TicketUpdateDescription:
		if cmd.Title != nil || cmd.Category != nil || cmd.Priority != nil ||
			cmd.Status != nil || cmd.AssigneeID != nil || cmd.ClearAssignee {
			return nil, errors.NewForbiddenError("you can only change the description of your own ticket")
		}
	}

	wasResolved := t.Status().IsResolved()

	if cmd.Description != nil {
		if err := t.UpdateDescription(*cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Title != nil {
		if err := t.UpdateTitle(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Category != nil {
		t.UpdateCategory(*cmd.Category)
	}
	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := t.ChangePriority(priority); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := t.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.ClearAssignee {
		t.Unassign()
	} else if cmd.AssigneeID != nil {
		if _, err := uc.userRepo.GetByID(ctx, *cmd.AssigneeID); err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewValidationError("assignee does not exist")
			}
			return nil, err
		}
		if err := t.AssignTo(*cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	if !wasResolved && t.Status().IsResolved() {
		uc.notifyResolved(ctx, t)
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "actor_id", cmd.Actor.UserID)
	return ticketResultFrom(t), nil
}

// notifyResolved emails the requester off the request path. Failures are
// logged and never affect the response.
func (uc *UpdateTicketUseCase) notifyResolved(ctx context.Context, t *ticket.Ticket) {
	requester, err := uc.userRepo.GetByID(ctx, t.RequesterID())
	if err != nil {
		uc.logger.Warnw("failed to load requester for resolution notice",
			"ticket_id", t.ID(), "requester_id", t.RequesterID(), "error", err)
		return
	}

	to := requester.Email()
	name := requester.Name()
	title := t.Title()
	ticketID := t.ID()

	goroutine.SafeGo(uc.logger, "ticket-resolved-email", func() {
		if err := uc.notifier.NotifyTicketResolved(to, name, title); err != nil {
			uc.logger.Warnw("failed to send resolution notice",
				"ticket_id", ticketID, "error", err)
		}
	})
}
