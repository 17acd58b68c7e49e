// @title         llmcompare API
// @version       1.0
// @description   Sends one prompt to Claude and GPT-4 concurrently and returns both replies.
// @BasePath      /api
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "github.com/artem13815/llmcompare/docs"

	// internal imports
	api "github.com/artem13815/llmcompare/api/http"
	"github.com/artem13815/llmcompare/api/http/handlers"
	"github.com/artem13815/llmcompare/pkg/config"
	"github.com/artem13815/llmcompare/pkg/generate"
	"github.com/artem13815/llmcompare/pkg/health"
	healthpg "github.com/artem13815/llmcompare/pkg/health/checkers"
	"github.com/artem13815/llmcompare/pkg/llm/claude"
	"github.com/artem13815/llmcompare/pkg/llm/openai"
	"github.com/artem13815/llmcompare/pkg/logger"
	pgrepo "github.com/artem13815/llmcompare/pkg/repository/postgres"
	"github.com/artem13815/llmcompare/pkg/storage/postgres"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	log := logger.New(cfg.LogDebug)
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The audit database is optional: without DATABASE_URL nothing is recorded.
	var (
		repo        generate.Repository
		checkers    []health.Checker
		generations *handlers.GenerationsHandler
	)
	if cfg.DatabaseURL != "" {
		if err := postgres.Migrate(ctx, cfg.DatabaseURL); err != nil {
			log.Fatal("postgres migrate", zap.Error(err))
		}
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal("postgres connect", zap.Error(err))
		}
		defer pool.Close()

		genRepo := pgrepo.NewGenerationRepository(pool)
		repo = genRepo
		generations = handlers.NewGenerationsHandler(genRepo)
		checkers = append(checkers, healthpg.NewPostgresChecker(pool))
		log.Info("audit log enabled")
	}

	// One transport shared by both providers; the per-request bound comes from the aggregator.
	hc := &http.Client{Timeout: cfg.UpstreamTimeout}
	claudeClient := claude.New(cfg.ClaudeURL, cfg.ClaudeAPIKey, hc, log.Named("claude"))
	openaiClient := openai.New(cfg.OpenAIAPIKey, cfg.OpenAIURL, cfg.OpenAIModel, hc, log.Named("openai"))

	svc := generate.NewService(claudeClient, openaiClient, repo, cfg.UpstreamTimeout, log.Named("generate"))

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api.Register(app, log,
		handlers.NewHealthHandler(health.NewService(checkers...)),
		handlers.NewGenerateHandler(svc, log),
		generations,
	)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error("shutdown", zap.Error(err))
		}
	}()

	log.Info("HTTP server listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
