package chat

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Menatic/IT-Support/internal/application/chat/usecases"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/logger"
	"github.com/Menatic/IT-Support/internal/shared/utils"
)

type SendMessageRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

type MessageResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	IsBot       bool      `json:"is_bot"`
	Content     string    `json:"content"`
	ContentHTML *string   `json:"content_html,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ExchangeResponse struct {
	UserMessage *MessageResponse `json:"user_message"`
	BotMessage  *MessageResponse `json:"bot_message"`
}

func messageResponseFrom(r *usecases.MessageResult) *MessageResponse {
	return &MessageResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		IsBot:       r.IsBot,
		Content:     r.Content,
		ContentHTML: r.ContentHTML,
		CreatedAt:   r.CreatedAt,
	}
}

type ChatHandler struct {
	sendMessageUC   *usecases.SendMessageUseCase
	listMessagesUC  *usecases.ListMessagesUseCase
	clearMessagesUC *usecases.ClearMessagesUseCase
	logger          logger.Interface
}

func NewChatHandler(
	sendMessageUC *usecases.SendMessageUseCase,
	listMessagesUC *usecases.ListMessagesUseCase,
	clearMessagesUC *usecases.ClearMessagesUseCase,
	logger logger.Interface,
) *ChatHandler {
	return &ChatHandler{
		sendMessageUC:   sendMessageUC,
		listMessagesUC:  listMessagesUC,
		clearMessagesUC: clearMessagesUC,
		logger:          logger,
	}
}

// SendMessage handles POST /api/chat/messages
func (h *ChatHandler) SendMessage(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingErrorToAppError(err))
		return
	}

	result, err := h.sendMessageUC.Execute(c.Request.Context(), usecases.SendMessageCommand{
		Actor:   actor,
		Content: req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, &ExchangeResponse{
		UserMessage: messageResponseFrom(result.UserMessage),
		BotMessage:  messageResponseFrom(result.BotMessage),
	})
}

// ListMessages handles GET /api/chat/messages
func (h *ChatHandler) ListMessages(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	limit := utils.ParseLimitQuery(c, 50, 200)

	results, err := h.listMessagesUC.Execute(c.Request.Context(), usecases.ListMessagesQuery{
		Actor: actor,
		Limit: limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]*MessageResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, messageResponseFrom(r))
	}
	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// ClearMessages handles DELETE /api/chat/messages
func (h *ChatHandler) ClearMessages(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.clearMessagesUC.Execute(c.Request.Context(), usecases.ClearMessagesCommand{Actor: actor}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Chat history cleared", nil)
}
