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

func TestAddComment_OwnerAndStaff(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return storedTicket(t, id, 5), nil
		},
	}
	commentRepo := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, c *ticket.Comment) error { return c.SetID(1) },
	}
	uc := NewAddCommentUseCase(ticketRepo, commentRepo, logger.NewNop())

	result, err := uc.Execute(context.Background(), AddCommentCommand{
		Actor: employeeActor(5), TicketID: 3, Content: "any update?",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), result.UserID)

	commentRepo.SaveFunc = func(ctx context.Context, c *ticket.Comment) error { return c.SetID(2) }
	_, err = uc.Execute(context.Background(), AddCommentCommand{
		Actor: agentActor(2), TicketID: 3, Content: "looking into it",
	})
	assert.NoError(t, err)
}

func TestAddComment_ForeignTicketForbidden(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return storedTicket(t, id, 5), nil
		},
	}
	uc := NewAddCommentUseCase(ticketRepo, &mockCommentRepository{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		Actor: employeeActor(9), TicketID: 3, Content: "snooping",
	})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestListComments_VisibilityFollowsTicket(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return storedTicket(t, id, 5), nil
		},
	}
	c1, err := ticket.NewComment(3, 5, "first")
	require.NoError(t, err)
	require.NoError(t, c1.SetID(1))
	commentRepo := &mockCommentRepository{
		GetByTicketIDFunc: func(ctx context.Context, id uint) ([]*ticket.Comment, error) {
			return []*ticket.Comment{c1}, nil
		},
	}
	uc := NewListCommentsUseCase(ticketRepo, commentRepo, logger.NewNop())

	results, err := uc.Execute(context.Background(), ListCommentsQuery{Actor: employeeActor(5), TicketID: 3})
	require.NoError(t, err)
	assert.Len(t, results, 1)

	_, err = uc.Execute(context.Background(), ListCommentsQuery{Actor: employeeActor(9), TicketID: 3})
	assert.True(t, errors.IsForbiddenError(err))
}
