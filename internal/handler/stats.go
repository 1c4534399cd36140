package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/tenthin/youtube-analyzer/internal/middleware"
	"github.com/tenthin/youtube-analyzer/internal/repository"
)

type StatsHandler struct {
	repo *repository.AnalysisRepo // nil when the database is not configured
}

func NewStatsHandler(repo *repository.AnalysisRepo) *StatsHandler {
	return &StatsHandler{repo: repo}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	if h.repo == nil {
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "STATS_UNAVAILABLE", "Statistics require a configured database")
	}

	stats, err := h.repo.GetStats(c.Context())
	if err != nil {
		middleware.Logger.Error().Err(err).Msg("stats query failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch statistics")
	}

	return c.JSON(stats)
}
