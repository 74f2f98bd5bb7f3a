package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/ticket"
	"github.com/Menatic/IT-Support/internal/domain/user"
)

type mockTicketRepository struct {
	SaveFunc    func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc  func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc    func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

type mockCommentRepository struct {
	SaveFunc          func(ctx context.Context, c *ticket.Comment) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockUserRepository struct {
	SaveFunc          func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, userID uint) (*user.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	ListFunc          func(ctx context.Context) ([]*user.User, error)
	CountFunc         func(ctx context.Context) (int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockNotifier struct {
	NotifyTicketResolvedFunc func(to, requesterName, ticketTitle string) error
}

func (m *mockNotifier) NotifyTicketResolved(to, requesterName, ticketTitle string) error {
	if m.NotifyTicketResolvedFunc != nil {
		return m.NotifyTicketResolvedFunc(to, requesterName, ticketTitle)
	}
	return nil
}
