package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/safebite/safebite-api/internal/application/dto"
	"github.com/safebite/safebite-api/internal/application/usecase"
)

// ChecklistHandler serves the checklist template and completion endpoints.
type ChecklistHandler struct {
	uc *usecase.ChecklistUseCase
}

func NewChecklistHandler(uc *usecase.ChecklistUseCase) *ChecklistHandler {
	return &ChecklistHandler{uc: uc}
}

func (h *ChecklistHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateChecklistRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.LocationID == "" || in.Title == "" || in.Frequency == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id, title and frequency are required"})
	}
	out, err := h.uc.Create(c.Context(), GetScope(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ChecklistHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ChecklistHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateChecklistRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.Context(), GetScope(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ChecklistHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetScope(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Board returns the day's checklists for a location with the caller's tick
// state and per-frequency progress.
func (h *ChecklistHandler) Board(c *fiber.Ctx) error {
	out, err := h.uc.Board(c.Context(), GetScope(c), GetUserID(c), c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ChecklistHandler) ToggleSubtask(c *fiber.Ctx) error {
	var in dto.ToggleSubtaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := h.uc.ToggleSubtask(c.Context(), GetScope(c), GetUserID(c), c.Params("id"), c.Params("subtaskID"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Calendar returns the month's day-by-day completion statuses for a location.
// Defaults to the current month when year/month are omitted.
func (h *ChecklistHandler) Calendar(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month must be between 1 and 12"})
	}
	out, err := h.uc.Calendar(c.Context(), GetScope(c), c.Query("location_id"), year, time.Month(month))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
