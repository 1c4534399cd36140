package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/tenthin/youtube-analyzer/internal/middleware"
	"github.com/tenthin/youtube-analyzer/internal/service"
)

type HistoryHandler struct {
	svc *service.AnalyzeService
}

func NewHistoryHandler(svc *service.AnalyzeService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// List handles GET /api/history
func (h *HistoryHandler) List(c fiber.Ctx) error {
	entries, err := h.svc.History(c.Context())
	if err != nil {
		middleware.Logger.Error().Err(err).Msg("history list failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load history")
	}
	return c.JSON(entries)
}

// RemoveEntry handles DELETE /api/history/entry?url=X
func (h *HistoryHandler) RemoveEntry(c fiber.Ctx) error {
	rawURL := fiber.Query[string](c, "url")
	rawURL, errMsg := middleware.ValidateAnalyzeURL(rawURL)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if err := h.svc.RemoveFromHistory(c.Context(), rawURL); err != nil {
		middleware.Logger.Error().Err(err).Msg("history remove failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove history entry")
	}
	return c.JSON(fiber.Map{"success": true})
}

// Clear handles DELETE /api/history
func (h *HistoryHandler) Clear(c fiber.Ctx) error {
	if err := h.svc.ClearHistory(c.Context()); err != nil {
		middleware.Logger.Error().Err(err).Msg("history clear failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to clear history")
	}
	return c.JSON(fiber.Map{"success": true})
}
