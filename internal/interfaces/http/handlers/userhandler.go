package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Menatic/IT-Support/internal/application/user/usecases"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/logger"
	"github.com/Menatic/IT-Support/internal/shared/utils"
)

// UserResponse is the wire shape of a user. Password hashes never appear
// here.
type UserResponse struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Department string    `json:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func userResponseFrom(u *usecases.UserResult) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role.String(),
		Department: u.Department,
		CreatedAt:  u.CreatedAt,
	}
}

type UserHandler struct {
	listUsersUseCase *usecases.ListUsersUseCase
	logger           logger.Interface
}

func NewUserHandler(listUsersUC *usecases.ListUsersUseCase, logger logger.Interface) *UserHandler {
	return &UserHandler{
		listUsersUseCase: listUsersUC,
		logger:           logger,
	}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	results, err := h.listUsersUseCase.Execute(c.Request.Context(), usecases.ListUsersQuery{Actor: actor})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]*UserResponse, 0, len(results))
	for _, u := range results {
		responses = append(responses, userResponseFrom(u))
	}
	utils.SuccessResponse(c, http.StatusOK, "", responses)
}
