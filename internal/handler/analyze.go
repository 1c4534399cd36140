package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/tenthin/youtube-analyzer/internal/middleware"
	"github.com/tenthin/youtube-analyzer/internal/model"
	"github.com/tenthin/youtube-analyzer/internal/service"
)

type AnalyzeHandler struct {
	svc *service.AnalyzeService
}

func NewAnalyzeHandler(svc *service.AnalyzeService) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc}
}

// Analyze handles POST /api/analyze
func (h *AnalyzeHandler) Analyze(c fiber.Ctx) error {
	var req model.AnalyzeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	rawURL, errMsg := middleware.ValidateAnalyzeURL(req.URL)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	result, cached, err := h.svc.Analyze(c.Context(), rawURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "UNSUPPORTED_URL", "Please provide a valid YouTube video or channel URL")
		case errors.Is(err, service.ErrNotFound):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Video or channel not found")
		default:
			middleware.Logger.Error().Err(err).Msg("analysis failed")
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "UPSTREAM_ERROR", "Failed to analyze URL")
		}
	}

	if cached {
		Metrics.CacheHits.Inc()
	} else {
		Metrics.CacheMisses.Inc()
	}
	outcome := "fresh"
	if cached {
		outcome = "cached"
	}
	Metrics.AnalysesTotal.WithLabelValues(string(result.Type), outcome).Inc()

	return c.JSON(result)
}
