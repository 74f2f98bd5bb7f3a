// Package http wires handlers, middleware and routes into a gin engine.
package http

import (
	"github.com/gin-gonic/gin"

	chatuc "github.com/Menatic/IT-Support/internal/application/chat/usecases"
	loguc "github.com/Menatic/IT-Support/internal/application/logs/usecases"
	metricuc "github.com/Menatic/IT-Support/internal/application/metrics/usecases"
	ticketuc "github.com/Menatic/IT-Support/internal/application/ticket/usecases"
	useruc "github.com/Menatic/IT-Support/internal/application/user/usecases"
	"github.com/Menatic/IT-Support/internal/domain/chat"
	"github.com/Menatic/IT-Support/internal/domain/logs"
	"github.com/Menatic/IT-Support/internal/domain/metrics"
	"github.com/Menatic/IT-Support/internal/domain/ticket"
	"github.com/Menatic/IT-Support/internal/domain/user"
	"github.com/Menatic/IT-Support/internal/infrastructure/ai"
	"github.com/Menatic/IT-Support/internal/infrastructure/auth"
	"github.com/Menatic/IT-Support/internal/infrastructure/config"
	"github.com/Menatic/IT-Support/internal/infrastructure/email"
	"github.com/Menatic/IT-Support/internal/infrastructure/ratelimit"
	"github.com/Menatic/IT-Support/internal/interfaces/http/handlers"
	chathandlers "github.com/Menatic/IT-Support/internal/interfaces/http/handlers/chat"
	loghandlers "github.com/Menatic/IT-Support/internal/interfaces/http/handlers/logs"
	metrichandlers "github.com/Menatic/IT-Support/internal/interfaces/http/handlers/metrics"
	tickethandlers "github.com/Menatic/IT-Support/internal/interfaces/http/handlers/ticket"
	"github.com/Menatic/IT-Support/internal/interfaces/http/middleware"
	"github.com/Menatic/IT-Support/internal/interfaces/http/routes"
	"github.com/Menatic/IT-Support/internal/shared/logger"
	"github.com/Menatic/IT-Support/internal/shared/services/markdown"
)

// Repositories groups the persistence interfaces the router depends on.
// Both the memory store and the GORM layer satisfy it.
type Repositories struct {
	Users        user.Repository
	Tickets      ticket.Repository
	Comments     ticket.CommentRepository
	Logs         logs.Repository
	Metrics      metrics.Repository
	ChatMessages chat.Repository
}

// Dependencies carries everything NewRouter needs to assemble the service.
type Dependencies struct {
	Config      *config.Config
	Logger      logger.Interface
	Repos       Repositories
	Gateway     ai.Gateway
	Notifier    email.TicketNotifier
	RateLimiter ratelimit.RateLimiter // nil disables request throttling
}

type Router struct {
	engine *gin.Engine
}

// NewRouter builds the gin engine with all middleware, use cases, handlers
// and routes wired together.
func NewRouter(deps *Dependencies) *Router {
	cfg := deps.Config
	log := deps.Logger

	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.Metrics())

	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	renderer := markdown.NewMarkdownService()

	authMW := middleware.NewAuthMiddleware(jwtService, log)

	var rateLimitMW *middleware.RateLimitMiddleware
	if deps.RateLimiter != nil {
		rateLimitMW = middleware.NewRateLimitMiddleware(deps.RateLimiter, log)
	}

	registerUC := useruc.NewRegisterUseCase(deps.Repos.Users, hasher, log)
	loginUC := useruc.NewLoginUseCase(deps.Repos.Users, hasher, log)
	getProfileUC := useruc.NewGetProfileUseCase(deps.Repos.Users, log)
	listUsersUC := useruc.NewListUsersUseCase(deps.Repos.Users, log)

	createTicketUC := ticketuc.NewCreateTicketUseCase(deps.Repos.Tickets, log)
	getTicketUC := ticketuc.NewGetTicketUseCase(deps.Repos.Tickets, log)
	listTicketsUC := ticketuc.NewListTicketsUseCase(deps.Repos.Tickets, log)
	updateTicketUC := ticketuc.NewUpdateTicketUseCase(deps.Repos.Tickets, deps.Repos.Users, deps.Notifier, log)
	addCommentUC := ticketuc.NewAddCommentUseCase(deps.Repos.Tickets, deps.Repos.Comments, log)
	listCommentsUC := ticketuc.NewListCommentsUseCase(deps.Repos.Tickets, deps.Repos.Comments, log)

	uploadLogUC := loguc.NewUploadLogUseCase(deps.Repos.Logs, deps.Gateway, renderer, log)
	getLogUC := loguc.NewGetLogUseCase(deps.Repos.Logs, renderer, log)
	listLogsUC := loguc.NewListLogsUseCase(deps.Repos.Logs, renderer, log)

	sendMessageUC := chatuc.NewSendMessageUseCase(deps.Repos.ChatMessages, deps.Gateway, renderer, log)
	listMessagesUC := chatuc.NewListMessagesUseCase(deps.Repos.ChatMessages, renderer, log)
	clearMessagesUC := chatuc.NewClearMessagesUseCase(deps.Repos.ChatMessages, log)

	reportMetricUC := metricuc.NewReportMetricUseCase(deps.Repos.Metrics, log)
	listMetricsUC := metricuc.NewListMetricsUseCase(deps.Repos.Metrics, log)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, getProfileUC, jwtService, cfg.Auth.Cookie, log)
	userHandler := handlers.NewUserHandler(listUsersUC, log)
	ticketHandler := tickethandlers.NewTicketHandler(createTicketUC, getTicketUC, listTicketsUC, updateTicketUC, addCommentUC, listCommentsUC, log)
	logHandler := loghandlers.NewLogHandler(uploadLogUC, getLogUC, listLogsUC, log)
	chatHandler := chathandlers.NewChatHandler(sendMessageUC, listMessagesUC, clearMessagesUC, log)
	metricHandler := metrichandlers.NewMetricHandler(reportMetricUC, listMetricsUC, log)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))

	api := engine.Group("/api")
	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMW,
	})
	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMW,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMW,
	})
	routes.SetupLogRoutes(api, &routes.LogRouteConfig{
		LogHandler:     logHandler,
		AuthMiddleware: authMW,
		RateLimit:      rateLimitMW,
	})
	routes.SetupChatRoutes(api, &routes.ChatRouteConfig{
		ChatHandler:    chatHandler,
		AuthMiddleware: authMW,
		RateLimit:      rateLimitMW,
	})
	routes.SetupMetricRoutes(api, &routes.MetricRouteConfig{
		MetricHandler:  metricHandler,
		AuthMiddleware: authMW,
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine for http.Server wiring.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
