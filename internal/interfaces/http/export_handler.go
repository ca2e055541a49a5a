package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/safebite/safebite-api/internal/application/dto"
	"github.com/safebite/safebite-api/internal/application/export"
)

// ExportHandler serves record downloads.
type ExportHandler struct {
	uc *export.UseCase
}

func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

func (h *ExportHandler) Generate(c *fiber.Ctx) error {
	var in dto.ExportRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid query parameters"})
	}
	file, err := h.uc.Generate(c.Context(), GetScope(c), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Filename+`"`)
	return c.Send(file.Data)
}
