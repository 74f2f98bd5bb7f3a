package ticket

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Menatic/IT-Support/internal/application/ticket/usecases"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/errors"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	Category    string `json:"category" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
	Status      string `json:"status"`
}

func (r *CreateTicketRequest) ToCommand(actor authorization.Actor) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Actor:       actor,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Priority:    r.Priority,
		Status:      r.Status,
	}
}

type UpdateTicketRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Category      *string `json:"category"`
	Priority      *string `json:"priority"`
	Status        *string `json:"status"`
	AssigneeID    *uint   `json:"assignee_id"`
	ClearAssignee bool    `json:"clear_assignee"`
}

func (r *UpdateTicketRequest) ToCommand(actor authorization.Actor, ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		Actor:         actor,
		TicketID:      ticketID,
		Title:         r.Title,
		Description:   r.Description,
		Category:      r.Category,
		Priority:      r.Priority,
		Status:        r.Status,
		AssigneeID:    r.AssigneeID,
		ClearAssignee: r.ClearAssignee,
	}
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

type ListTicketsRequest struct {
	Status      string
	RequesterID *uint
	AssigneeID  *uint
}

func (r *ListTicketsRequest) ToQuery(actor authorization.Actor) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Actor:       actor,
		Status:      r.Status,
		RequesterID: r.RequesterID,
		AssigneeID:  r.AssigneeID,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	req := &ListTicketsRequest{
		Status: c.Query("status"),
	}

	if requesterIDStr := c.Query("requester_id"); requesterIDStr != "" {
		requesterID, err := strconv.ParseUint(requesterIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid requester_id")
		}
		id := uint(requesterID)
		req.RequesterID = &id
	}

	if assigneeIDStr := c.Query("assignee_id"); assigneeIDStr != "" {
		assigneeID, err := strconv.ParseUint(assigneeIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid assignee_id")
		}
		id := uint(assigneeID)
		req.AssigneeID = &id
	}

	return req, nil
}

type TicketResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	RequesterID uint       `json:"requester_id"`
	AssigneeID  *uint      `json:"assignee_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

func ticketResponseFrom(r *usecases.TicketResult) *TicketResponse {
	return &TicketResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Priority:    r.Priority,
		Status:      r.Status,
		RequesterID: r.RequesterID,
		AssigneeID:  r.AssigneeID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		ResolvedAt:  r.ResolvedAt,
	}
}

func ticketResponsesFrom(results []*usecases.TicketResult) []*TicketResponse {
	responses := make([]*TicketResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, ticketResponseFrom(r))
	}
	return responses
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	UserID    uint      `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func commentResponseFrom(r *usecases.CommentResult) *CommentResponse {
	return &CommentResponse{
		ID:        r.ID,
		TicketID:  r.TicketID,
		UserID:    r.UserID,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}
