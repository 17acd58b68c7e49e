package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"github.com/artem13815/llmcompare/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
// generations may be nil when auditing is disabled.
func Register(app *fiber.App, logger *zap.Logger, health *handlers.HealthHandler, generate *handlers.GenerateHandler, generations *handlers.GenerationsHandler) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger(logger))

	api := app.Group("/api")

	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	api.Post("/generate-response", generate.Generate)

	if generations != nil {
		api.Get("/generations", generations.List)
		api.Get("/generations/:id", generations.Get)
	}
}

// RequestLogger logs one line per handled request.
func RequestLogger(logger *zap.Logger) fiber.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
		)
		return err
	}
}
