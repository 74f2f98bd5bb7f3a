package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/ticket"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/logger"
)

type GetTicketQuery struct {
	Actor    authorization.Actor
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	// The record exists; an invisible one is forbidden, not missing.
	if decision := authorization.CanViewTicket(query.Actor, t.RequesterID()); !decision.Allowed {
		return nil, errors.NewForbiddenError(decision.Reason)
	}

	return ticketResultFrom(t), nil
}
