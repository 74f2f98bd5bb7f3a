package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Menatic/IT-Support/internal/application/ticket/usecases"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/logger"
	"github.com/Menatic/IT-Support/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC *usecases.CreateTicketUseCase
	getTicketUC    *usecases.GetTicketUseCase
	listTicketsUC  *usecases.ListTicketsUseCase
	updateTicketUC *usecases.UpdateTicketUseCase
	addCommentUC   *usecases.AddCommentUseCase
	listCommentsUC *usecases.ListCommentsUseCase
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC *usecases.CreateTicketUseCase,
	getTicketUC *usecases.GetTicketUseCase,
	listTicketsUC *usecases.ListTicketsUseCase,
	updateTicketUC *usecases.UpdateTicketUseCase,
	addCommentUC *usecases.AddCommentUseCase,
	listCommentsUC *usecases.ListCommentsUseCase,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		updateTicketUC: updateTicketUC,
		addCommentUC:   addCommentUC,
		listCommentsUC: listCommentsUC,
		logger:         logger,
	}
}

// CreateTicket handles POST /api/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingErrorToAppError(err))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, ticketResponseFrom(result), "Ticket created successfully")
}

// GetTicket handles GET /api/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Actor:    actor,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ticketResponseFrom(result))
}

// ListTickets handles GET /api/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	results, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ticketResponsesFrom(results))
}

// UpdateTicket handles PATCH /api/tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingErrorToAppError(err))
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(actor, ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", ticketResponseFrom(result))
}

// AddComment handles POST /api/tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingErrorToAppError(err))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Actor:    actor,
		TicketID: ticketID,
		Content:  req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, commentResponseFrom(result), "Comment added successfully")
}

// ListComments handles GET /api/tickets/:id/comments
func (h *TicketHandler) ListComments(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	results, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		Actor:    actor,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]*CommentResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, commentResponseFrom(r))
	}
	utils.SuccessResponse(c, http.StatusOK, "", responses)
}
