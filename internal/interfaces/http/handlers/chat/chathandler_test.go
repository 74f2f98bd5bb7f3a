package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Menatic/IT-Support/internal/application/chat/usecases"
	"github.com/Menatic/IT-Support/internal/infrastructure/repository/memory"
	"github.com/Menatic/IT-Support/internal/interfaces/http/handlers/testutil"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/logger"
	"github.com/Menatic/IT-Support/internal/shared/services/markdown"
)

type stubGateway struct {
	reply string
	err   error
}

func (g *stubGateway) AnalyzeLog(ctx context.Context, logContent string) (string, error) {
	return "", errors.NewUpstreamError("not used")
}

func (g *stubGateway) ChatReply(ctx context.Context, userMessage string) (string, error) {
	return g.reply, g.err
}

func (g *stubGateway) Enabled() bool { return g.err == nil }

func newHandler(t *testing.T, gateway *stubGateway) (*ChatHandler, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	log := logger.NewNop()
	renderer := markdown.NewMarkdownService()

	return NewChatHandler(
		usecases.NewSendMessageUseCase(store.ChatMessages(), gateway, renderer, log),
		usecases.NewListMessagesUseCase(store.ChatMessages(), renderer, log),
		usecases.NewClearMessagesUseCase(store.ChatMessages(), log),
		log,
	), store
}

func TestSendMessage(t *testing.T) {
	handler, store := newHandler(t, &stubGateway{reply: "Have you tried turning it off and on again?"})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/chat/messages", map[string]any{
		"content": "My laptop is slow",
	})
	testutil.SetAuthContext(c, 4, authorization.RoleEmployee)

	handler.SendMessage(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var exchange ExchangeResponse
	require.NoError(t, json.Unmarshal(resp.Data, &exchange))
	assert.False(t, exchange.UserMessage.IsBot)
	assert.True(t, exchange.BotMessage.IsBot)
	assert.Equal(t, "Have you tried turning it off and on again?", exchange.BotMessage.Content)

	stored, err := store.ChatMessages().ListByUser(context.Background(), 4, 50)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestSendMessage_GatewayFailureStillPersistsPair(t *testing.T) {
	handler, store := newHandler(t, &stubGateway{err: errors.NewUpstreamError("provider down")})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/chat/messages", map[string]any{
		"content": "Help me reset my password",
	})
	testutil.SetAuthContext(c, 4, authorization.RoleEmployee)

	handler.SendMessage(c)

	require.Equal(t, http.StatusCreated, w.Code)

	stored, err := store.ChatMessages().ListByUser(context.Background(), 4, 50)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.True(t, stored[1].IsBot())
	assert.Contains(t, stored[1].Content(), "I'm having trouble processing your request")
}

func TestClearMessages_DoesNotTouchOtherUsers(t *testing.T) {
	handler, store := newHandler(t, &stubGateway{reply: "ok"})

	for _, userID := range []uint{4, 5} {
		c, _ := testutil.NewTestContext(http.MethodPost, "/api/chat/messages", map[string]any{
			"content": "hello",
		})
		testutil.SetAuthContext(c, userID, authorization.RoleEmployee)
		handler.SendMessage(c)
	}

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/chat/messages", nil)
	testutil.SetAuthContext(c, 4, authorization.RoleEmployee)
	handler.ClearMessages(c)

	require.Equal(t, http.StatusOK, w.Code)

	mine, err := store.ChatMessages().ListByUser(context.Background(), 4, 50)
	require.NoError(t, err)
	assert.Empty(t, mine)

	theirs, err := store.ChatMessages().ListByUser(context.Background(), 5, 50)
	require.NoError(t, err)
	assert.Len(t, theirs, 2)
}

func TestListMessages(t *testing.T) {
	handler, _ := newHandler(t, &stubGateway{reply: "ok"})

	c, _ := testutil.NewTestContext(http.MethodPost, "/api/chat/messages", map[string]any{
		"content": "first",
	})
	testutil.SetAuthContext(c, 4, authorization.RoleEmployee)
	handler.SendMessage(c)

	c2, w2 := testutil.NewTestContext(http.MethodGet, "/api/chat/messages", nil)
	testutil.SetAuthContext(c2, 4, authorization.RoleEmployee)
	handler.ListMessages(c2)

	require.Equal(t, http.StatusOK, w2.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w2, &resp))

	var messages []MessageResponse
	require.NoError(t, json.Unmarshal(resp.Data, &messages))
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Content)
	assert.True(t, messages[1].IsBot)
}
