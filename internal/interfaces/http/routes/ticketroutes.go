package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Menatic/IT-Support/internal/interfaces/http/handlers/ticket"
	"github.com/Menatic/IT-Support/internal/interfaces/http/middleware"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *ticket.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures ticket and comment routes.
func SetupTicketRoutes(api *gin.RouterGroup, cfg *TicketRouteConfig) {
	tickets := api.Group("/tickets", cfg.AuthMiddleware.RequireAuth())
	{
		tickets.GET("", cfg.TicketHandler.ListTickets)
		tickets.POST("", cfg.TicketHandler.CreateTicket)
		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
		tickets.PATCH("/:id", cfg.TicketHandler.UpdateTicket)
		tickets.GET("/:id/comments", cfg.TicketHandler.ListComments)
		tickets.POST("/:id/comments", cfg.TicketHandler.AddComment)
	}
}
