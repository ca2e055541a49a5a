package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/safebite/safebite-api/internal/application/dto"
	"github.com/safebite/safebite-api/internal/application/usecase"
)

// TemperatureHandler serves the temperature log endpoints.
type TemperatureHandler struct {
	uc *usecase.TemperatureUseCase
}

func NewTemperatureHandler(uc *usecase.TemperatureUseCase) *TemperatureHandler {
	return &TemperatureHandler{uc: uc}
}

func (h *TemperatureHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordTemperatureRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.LocationID == "" || in.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id and type are required"})
	}
	out, err := h.uc.Record(c.Context(), GetScope(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListDay returns the current service day's readings for a location.
func (h *TemperatureHandler) ListDay(c *fiber.Ctx) error {
	out, err := h.uc.ListDay(c.Context(), GetScope(c), c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *TemperatureHandler) AddCorrectiveAction(c *fiber.Ctx) error {
	var in dto.CorrectiveActionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.AddCorrectiveAction(c.Context(), GetScope(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
