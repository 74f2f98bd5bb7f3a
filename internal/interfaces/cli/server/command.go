// Package server implements the `itsupport server` command.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Menatic/IT-Support/internal/domain/metrics"
	"github.com/Menatic/IT-Support/internal/domain/user"
	"github.com/Menatic/IT-Support/internal/infrastructure/ai"
	"github.com/Menatic/IT-Support/internal/infrastructure/auth"
	"github.com/Menatic/IT-Support/internal/infrastructure/config"
	"github.com/Menatic/IT-Support/internal/infrastructure/database"
	"github.com/Menatic/IT-Support/internal/infrastructure/email"
	"github.com/Menatic/IT-Support/internal/infrastructure/ratelimit"
	"github.com/Menatic/IT-Support/internal/infrastructure/repository"
	"github.com/Menatic/IT-Support/internal/infrastructure/repository/memory"
	httpRouter "github.com/Menatic/IT-Support/internal/interfaces/http"
	"github.com/Menatic/IT-Support/internal/interfaces/http/middleware"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the IT-Support HTTP server with the configured storage backend.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server", "environment", env, "driver", cfg.Database.Driver)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	repos, err := buildRepositories(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	gateway := ai.NewClient(cfg.AI, log)
	if !gateway.Enabled() {
		log.Warnw("AI API key not configured, analysis and chat replies are degraded")
	}

	var notifier email.TicketNotifier = email.NewNoopNotifier()
	if cfg.Email.Enabled {
		notifier = email.NewSMTPNotifier(cfg.Email)
	}

	var limiter ratelimit.RateLimiter
	if cfg.Redis.Enabled {
		redisClient := ratelimit.NewRedisClient(cfg.Redis)
		limiter = ratelimit.NewRedisRateLimiter(redisClient, cfg.RateLimit.RequestsPerMinute)
		log.Infow("rate limiting enabled", "requests_per_minute", cfg.RateLimit.RequestsPerMinute)
	}

	if err := seed(cfg, repos, log); err != nil {
		return fmt.Errorf("failed to seed initial data: %w", err)
	}

	middleware.RegisterMetrics()

	router := httpRouter.NewRouter(&httpRouter.Dependencies{
		Config:      cfg,
		Logger:      log,
		Repos:       repos,
		Gateway:     gateway,
		Notifier:    notifier,
		RateLimiter: limiter,
	})

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func buildRepositories(cfg *config.Config) (httpRouter.Repositories, error) {
	if cfg.Database.Driver == "memory" || cfg.Database.Driver == "" {
		store := memory.NewStore()
		return httpRouter.Repositories{
			Users:        store.Users(),
			Tickets:      store.Tickets(),
			Comments:     store.Comments(),
			Logs:         store.Logs(),
			Metrics:      store.Metrics(),
			ChatMessages: store.ChatMessages(),
		}, nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return httpRouter.Repositories{}, err
	}

	return httpRouter.Repositories{
		Users:        repository.NewUserRepository(db),
		Tickets:      repository.NewTicketRepository(db),
		Comments:     repository.NewCommentRepository(db),
		Logs:         repository.NewLogRepository(db),
		Metrics:      repository.NewMetricRepository(db),
		ChatMessages: repository.NewChatRepository(db),
	}, nil
}

// seed creates the bootstrap admin and sample system metrics when the user
// collection is empty.
func seed(cfg *config.Config, repos httpRouter.Repositories, log logger.Interface) error {
	ctx := context.Background()

	count, err := repos.Users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	hash, err := hasher.Hash(cfg.Auth.BootstrapPassword)
	if err != nil {
		return err
	}

	admin, err := user.NewUser("admin", hash, "admin@example.com", "Administrator", authorization.RoleAdmin, "IT")
	if err != nil {
		return err
	}
	if err := repos.Users.Save(ctx, admin); err != nil {
		return err
	}
	log.Infow("bootstrap admin created", "username", "admin")

	samples := []struct {
		systemID   string
		systemName string
		status     metrics.SystemStatus
		cpu        int
		mem        int
		disk       int
	}{
		{"main-server", "Main Server", metrics.StatusHealthy, 32, 45, 60},
		{"db-server", "Database Server", metrics.StatusHealthy, 45, 60, 70},
		{"web-server", "Web Server", metrics.StatusWarning, 75, 82, 55},
	}

	for _, s := range samples {
		metric, err := metrics.NewSystemMetric(s.systemID, s.systemName, s.status, s.cpu, s.mem, s.disk)
		if err != nil {
			return err
		}
		if err := repos.Metrics.Upsert(ctx, metric); err != nil {
			return err
		}
	}
	log.Infow("sample system metrics created", "count", len(samples))

	return nil
}

func mapEnvToGinMode(env string) string {
	switch env {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
