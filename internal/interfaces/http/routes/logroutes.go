package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Menatic/IT-Support/internal/interfaces/http/handlers/logs"
	"github.com/Menatic/IT-Support/internal/interfaces/http/middleware"
)

// LogRouteConfig holds dependencies for log routes.
type LogRouteConfig struct {
	LogHandler     *logs.LogHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      *middleware.RateLimitMiddleware // nil when Redis is not configured
}

// SetupLogRoutes configures log upload and retrieval routes.
func SetupLogRoutes(api *gin.RouterGroup, cfg *LogRouteConfig) {
	group := api.Group("/logs", cfg.AuthMiddleware.RequireAuth())
	{
		group.GET("", cfg.LogHandler.ListLogs)
		group.GET("/:id", cfg.LogHandler.GetLog)

		upload := []gin.HandlerFunc{}
		if cfg.RateLimit != nil {
			upload = append(upload, cfg.RateLimit.Limit("logs"))
		}
		upload = append(upload, cfg.LogHandler.UploadLog)
		group.POST("", upload...)
	}
}
