package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Menatic/IT-Support/internal/domain/chat"
	"github.com/Menatic/IT-Support/internal/domain/logs"
	"github.com/Menatic/IT-Support/internal/domain/metrics"
	"github.com/Menatic/IT-Support/internal/domain/ticket"
	vo "github.com/Menatic/IT-Support/internal/domain/ticket/valueobjects"
	"github.com/Menatic/IT-Support/internal/domain/user"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/errors"
)

func seedUser(t *testing.T, store *Store, username, email string) *user.User {
	t.Helper()
	u, err := user.NewUser(username, "hash", email, "Test User", authorization.RoleEmployee, "")
	require.NoError(t, err)
	require.NoError(t, store.Users().Save(context.Background(), u))
	return u
}

func seedTicket(t *testing.T, store *Store, title string, status vo.TicketStatus, requesterID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(title, "description", "general", vo.PriorityMedium, status, requesterID)
	require.NoError(t, err)
	require.NoError(t, store.Tickets().Save(context.Background(), tk))
	return tk
}

func TestUserRepository_UniqueConstraints(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	seedUser(t, store, "alice", "alice@example.com")

	dup, err := user.NewUser("alice", "hash", "other@example.com", "Dup", authorization.RoleEmployee, "")
	require.NoError(t, err)
	err = store.Users().Save(ctx, dup)
	assert.True(t, errors.IsConflictError(err))

	dupMail, err := user.NewUser("bob", "hash", "alice@example.com", "Dup", authorization.RoleEmployee, "")
	require.NoError(t, err)
	err = store.Users().Save(ctx, dupMail)
	assert.True(t, errors.IsConflictError(err))
}

func TestUserRepository_Lookups(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	created := seedUser(t, store, "alice", "alice@example.com")

	byID, err := store.Users().GetByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username())

	byName, err := store.Users().GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID(), byName.ID())

	_, err = store.Users().GetByUsername(ctx, "nobody")
	assert.True(t, errors.IsNotFoundError(err))

	count, err := store.Users().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTicketRepository_FilterAndOrder(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	seedTicket(t, store, "first open", vo.StatusOpen, 1)
	seedTicket(t, store, "resolved one", vo.StatusResolved, 1)
	seedTicket(t, store, "second open", vo.StatusOpen, 2)

	status := vo.StatusOpen
	open, err := store.Tickets().List(ctx, ticket.Filter{Status: &status})
	require.NoError(t, err)
	require.Len(t, open, 2)
	for _, tk := range open {
		assert.Equal(t, vo.StatusOpen, tk.Status())
	}
	// Newest first.
	assert.Equal(t, "second open", open[0].Title())
	assert.Equal(t, "first open", open[1].Title())

	requester := uint(1)
	mine, err := store.Tickets().List(ctx, ticket.Filter{Status: &status, RequesterID: &requester})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "first open", mine[0].Title())
}

func TestTicketRepository_UpdateReplacesRecord(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	tk := seedTicket(t, store, "flaky wifi", vo.StatusOpen, 1)
	require.NoError(t, tk.ChangeStatus(vo.StatusResolved))
	require.NoError(t, store.Tickets().Update(ctx, tk))

	stored, err := store.Tickets().GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusResolved, stored.Status())
	assert.NotNil(t, stored.ResolvedAt())
}

func TestTicketRepository_StoredRecordIsIsolated(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	tk := seedTicket(t, store, "original title", vo.StatusOpen, 1)
	require.NoError(t, tk.UpdateTitle("mutated after save"))

	stored, err := store.Tickets().GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, "original title", stored.Title())
}

func TestCommentRepository_RequiresTicket(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	c, err := ticket.NewComment(99, 1, "orphan")
	require.NoError(t, err)
	err = store.Comments().Save(ctx, c)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCommentRepository_ListAscending(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	tk := seedTicket(t, store, "ticket", vo.StatusOpen, 1)

	for _, content := range []string{"first", "second", "third"} {
		c, err := ticket.NewComment(tk.ID(), 1, content)
		require.NoError(t, err)
		require.NoError(t, store.Comments().Save(ctx, c))
	}

	comments, err := store.Comments().GetByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Content())
	assert.Equal(t, "third", comments[2].Content())
}

func TestMetricRepository_UpsertKeyedBySystemID(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	first, err := metrics.NewSystemMetric("db-server", "Database Server", metrics.StatusHealthy, 20, 30, 40)
	require.NoError(t, err)
	require.NoError(t, store.Metrics().Upsert(ctx, first))

	second, err := metrics.NewSystemMetric("db-server", "Database Server", metrics.StatusCritical, 95, 90, 80)
	require.NoError(t, err)
	require.NoError(t, store.Metrics().Upsert(ctx, second))

	all, err := store.Metrics().List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, first.ID(), all[0].ID())
	assert.Equal(t, metrics.StatusCritical, all[0].Status())
	assert.Equal(t, 95, all[0].CPUUsage())
}

func TestLogRepository_ScopedListing(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for _, spec := range []struct {
		name   string
		userID uint
	}{
		{"a.log", 1}, {"b.log", 2}, {"c.log", 1},
	} {
		l, err := logs.NewLog(spec.name, "content", spec.userID, "")
		require.NoError(t, err)
		require.NoError(t, store.Logs().Save(ctx, l))
	}

	all, err := store.Logs().List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	// Newest first.
	assert.Equal(t, "c.log", all[0].Name())

	mine, err := store.Logs().ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, l := range mine {
		assert.Equal(t, uint(1), l.UserID())
	}
}

func TestChatRepository_ClearIsScopedToUser(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for _, spec := range []struct {
		userID  uint
		content string
	}{
		{1, "hello"}, {1, "anyone there"}, {2, "unrelated"},
	} {
		m, err := chat.NewMessage(spec.userID, false, spec.content)
		require.NoError(t, err)
		require.NoError(t, store.ChatMessages().Save(ctx, m))
	}

	require.NoError(t, store.ChatMessages().ClearByUser(ctx, 1))

	cleared, err := store.ChatMessages().ListByUser(ctx, 1, 50)
	require.NoError(t, err)
	assert.Empty(t, cleared)

	kept, err := store.ChatMessages().ListByUser(ctx, 2, 50)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, "unrelated", kept[0].Content())
}

func TestChatRepository_LimitKeepsMostRecent(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		m, err := chat.NewMessage(1, false, string(rune('a'+i)))
		require.NoError(t, err)
		require.NoError(t, store.ChatMessages().Save(ctx, m))
	}

	limited, err := store.ChatMessages().ListByUser(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "d", limited[0].Content())
	assert.Equal(t, "e", limited[1].Content())
}
