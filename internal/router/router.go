package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/tenthin/youtube-analyzer/internal/handler"
	"github.com/tenthin/youtube-analyzer/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Analyze *handler.AnalyzeHandler
	History *handler.HistoryHandler
	Stats   *handler.StatsHandler
	Health  *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health checks and metrics (before API group, not rate limited)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	analyzeLimit := middleware.NewAnalyzeRateLimiter().Handler()
	historyLimit := middleware.NewHistoryRateLimiter().Handler()
	statsLimit := middleware.NewStatsRateLimiter().Handler()

	// API routes
	api := app.Group("/api")

	// Analysis
	api.Post("/analyze", h.Analyze.Analyze, analyzeLimit)

	// History
	api.Get("/history", h.History.List, historyLimit)
	api.Delete("/history/entry", h.History.RemoveEntry, historyLimit)
	api.Delete("/history", h.History.Clear, historyLimit)

	// Stats
	api.Get("/stats", h.Stats.GetStats, statsLimit)
}
