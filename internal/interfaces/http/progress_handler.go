package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/safebite/safebite-api/internal/application/analytics"
)

// ProgressHandler serves the activity chart endpoint.
type ProgressHandler struct {
	uc *analytics.ProgressUseCase
}

func NewProgressHandler(uc *analytics.ProgressUseCase) *ProgressHandler {
	return &ProgressHandler{uc: uc}
}

func (h *ProgressHandler) Week(c *fiber.Ctx) error {
	out, err := h.uc.WeekSeries(c.Context(), GetScope(c), c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
