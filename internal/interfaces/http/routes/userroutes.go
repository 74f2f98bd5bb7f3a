package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Menatic/IT-Support/internal/interfaces/http/handlers"
	"github.com/Menatic/IT-Support/internal/interfaces/http/middleware"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
)

// UserRouteConfig holds dependencies for user management routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures user management routes.
func SetupUserRoutes(api *gin.RouterGroup, cfg *UserRouteConfig) {
	users := api.Group("/users", cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("", authorization.RequireAdmin(), cfg.UserHandler.ListUsers)
	}
}
