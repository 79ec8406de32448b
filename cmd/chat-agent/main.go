package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nrizzio/chat-agent/internal/agent"
	httpapi "github.com/nrizzio/chat-agent/internal/api/http"
	"github.com/nrizzio/chat-agent/internal/cli"
	"github.com/nrizzio/chat-agent/internal/config"
	"github.com/nrizzio/chat-agent/internal/history"
	"github.com/nrizzio/chat-agent/internal/observability"
	"github.com/nrizzio/chat-agent/internal/responses"
	"github.com/nrizzio/chat-agent/internal/weather/providers"
)

func main() {
	mode := flag.String("mode", "serve", "run mode: serve (HTTP API) or cli (interactive terminal)")
	flag.Parse()

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	pool := responses.Load(cfg.ResponsePoolPath, logger)

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.WeatherTimeout,
	}
	provider := providers.NewWttrProvider(httpClient, cfg.WeatherBaseURL)

	hist := history.NewMemoryStore(cfg.HistoryMaxEntries, cfg.HistoryMaxAge)

	ag := agent.New(cfg.AgentName, cfg.AgentVersion, pool, provider, hist, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "cli":
		if err := cli.Run(ctx, ag, os.Stdout); err != nil && err != context.Canceled {
			log.Fatalf("cli error: %v", err)
		}
	case "serve":
		serve(ctx, cfg, ag, logger)
	default:
		log.Fatalf("unknown mode %q (want serve or cli)", *mode)
	}
}

func serve(ctx context.Context, cfg *config.AppConfig, ag *agent.Agent, logger *slog.Logger) {
	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "chat-agent",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,DELETE",
	}))

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "chat-agent",
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API routes.
	httpapi.RegisterRoutes(app, ag, cfg.MaxMessageLength)

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("fiber server stopped", "error", err)
		}
	}()

	// Wait for termination signal
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("error during shutdown", "error", err)
	}
}
