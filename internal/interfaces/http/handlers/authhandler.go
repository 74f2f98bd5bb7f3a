package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Menatic/IT-Support/internal/application/user/usecases"
	"github.com/Menatic/IT-Support/internal/infrastructure/auth"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/config"
	"github.com/Menatic/IT-Support/internal/shared/logger"
	"github.com/Menatic/IT-Support/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase   *usecases.RegisterUseCase
	loginUseCase      *usecases.LoginUseCase
	getProfileUseCase *usecases.GetProfileUseCase
	jwtService        *auth.JWTService
	cookieConfig      config.CookieConfig
	logger            logger.Interface
}

func NewAuthHandler(
	registerUC *usecases.RegisterUseCase,
	loginUC *usecases.LoginUseCase,
	getProfileUC *usecases.GetProfileUseCase,
	jwtService *auth.JWTService,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:   registerUC,
		loginUseCase:      loginUC,
		getProfileUseCase: getProfileUC,
		jwtService:        jwtService,
		cookieConfig:      cookieConfig,
		logger:            logger,
	}
}

type RegisterRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=50"`
	Password   string `json:"password" binding:"required,min=6"`
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Department string `json:"department"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingErrorToAppError(err))
		return
	}

	cmd := usecases.RegisterCommand{
		Username:   req.Username,
		Password:   req.Password,
		Email:      req.Email,
		Name:       req.Name,
		Department: req.Department,
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("registration failed", "username", req.Username, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.issueTokens(c, result)
	utils.CreatedResponse(c, userResponseFrom(result), "registration successful")
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingErrorToAppError(err))
		return
	}

	cmd := usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("login failed", "username", req.Username, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.issueTokens(c, result)
	utils.SuccessResponse(c, http.StatusOK, "login successful", userResponseFrom(result))
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "logout successful", nil)
}

// GetCurrentUser handles GET /api/auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.getProfileUseCase.Execute(c.Request.Context(), usecases.GetProfileQuery{UserID: actor.UserID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", userResponseFrom(result))
}

func (h *AuthHandler) issueTokens(c *gin.Context, u *usecases.UserResult) {
	pair, err := h.jwtService.Generate(u.ID, uuid.NewString(), u.Role)
	if err != nil {
		h.logger.Errorw("failed to generate tokens", "user_id", u.ID, "error", err)
		return
	}

	accessMaxAge := h.jwtService.AccessExpMinutes() * 60
	refreshMaxAge := h.jwtService.RefreshExpDays() * 24 * 60 * 60
	utils.SetAuthCookies(c, h.cookieConfig, pair.AccessToken, pair.RefreshToken, accessMaxAge, refreshMaxAge)
}
