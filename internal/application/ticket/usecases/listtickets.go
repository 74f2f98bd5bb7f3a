package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/ticket"
	vo "github.com/Menatic/IT-Support/internal/domain/ticket/valueobjects"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/logger"
)

type ListTicketsQuery struct {
	Actor       authorization.Actor
	Status      string
	RequesterID *uint
	AssigneeID  *uint
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*TicketResult, error) {
	filter := ticket.Filter{
		RequesterID: query.RequesterID,
		AssigneeID:  query.AssigneeID,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	// Employees only ever see their own tickets, whatever filter they ask for.
	if authorization.ScopesTicketListToOwner(query.Actor) {
		owner := query.Actor.UserID
		filter.RequesterID = &owner
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	results := make([]*TicketResult, 0, len(tickets))
	for _, t := range tickets {
		results = append(results, ticketResultFrom(t))
	}
	return results, nil
}
