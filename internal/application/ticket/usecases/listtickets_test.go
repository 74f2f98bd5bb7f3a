package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Menatic/IT-Support/internal/domain/ticket"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/logger"
)

func TestListTickets_EmployeeForcedToOwn(t *testing.T) {
	var gotFilter ticket.Filter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
			gotFilter = filter
			return nil, nil
		},
	}
	uc := NewListTicketsUseCase(repo, logger.NewNop())

	other := uint(99)
	_, err := uc.Execute(context.Background(), ListTicketsQuery{
		Actor:       employeeActor(5),
		RequesterID: &other,
	})
	require.NoError(t, err)
	require.NotNil(t, gotFilter.RequesterID)
	assert.Equal(t, uint(5), *gotFilter.RequesterID)
}

func TestListTickets_StaffKeepsFilters(t *testing.T) {
	var gotFilter ticket.Filter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
			gotFilter = filter
			return nil, nil
		},
	}
	uc := NewListTicketsUseCase(repo, logger.NewNop())

	requester := uint(5)
	assignee := uint(2)
	_, err := uc.Execute(context.Background(), ListTicketsQuery{
		Actor:       agentActor(2),
		Status:      "open",
		RequesterID: &requester,
		AssigneeID:  &assignee,
	})
	require.NoError(t, err)
	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, "open", gotFilter.Status.String())
	assert.Equal(t, uint(5), *gotFilter.RequesterID)
	assert.Equal(t, uint(2), *gotFilter.AssigneeID)
}

func TestListTickets_BadStatus(t *testing.T) {
	uc := NewListTicketsUseCase(&mockTicketRepository{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), ListTicketsQuery{
		Actor:  agentActor(2),
		Status: "archived",
	})
	assert.True(t, errors.IsValidationError(err))
}
