package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Menatic/IT-Support/internal/interfaces/http/handlers/chat"
	"github.com/Menatic/IT-Support/internal/interfaces/http/middleware"
)

// ChatRouteConfig holds dependencies for assistant chat routes.
type ChatRouteConfig struct {
	ChatHandler    *chat.ChatHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      *middleware.RateLimitMiddleware // nil when Redis is not configured
}

// SetupChatRoutes configures assistant chat routes.
func SetupChatRoutes(api *gin.RouterGroup, cfg *ChatRouteConfig) {
	group := api.Group("/chat", cfg.AuthMiddleware.RequireAuth())
	{
		group.GET("/messages", cfg.ChatHandler.ListMessages)
		group.DELETE("/messages", cfg.ChatHandler.ClearMessages)

		send := []gin.HandlerFunc{}
		if cfg.RateLimit != nil {
			send = append(send, cfg.RateLimit.Limit("chat"))
		}
		send = append(send, cfg.ChatHandler.SendMessage)
		group.POST("/messages", send...)
	}
}
