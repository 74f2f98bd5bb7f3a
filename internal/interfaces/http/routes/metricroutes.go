package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Menatic/IT-Support/internal/interfaces/http/handlers/metrics"
	"github.com/Menatic/IT-Support/internal/interfaces/http/middleware"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
)

// MetricRouteConfig holds dependencies for system metric routes.
type MetricRouteConfig struct {
	MetricHandler  *metrics.MetricHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupMetricRoutes configures system health dashboard routes.
func SetupMetricRoutes(api *gin.RouterGroup, cfg *MetricRouteConfig) {
	group := api.Group("/system-metrics", cfg.AuthMiddleware.RequireAuth())
	{
		group.GET("", cfg.MetricHandler.ListMetrics)
		group.PUT("", authorization.RequireStaff(), cfg.MetricHandler.ReportMetric)
	}
}
