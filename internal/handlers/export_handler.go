package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catalystlab/catalyst-backend/internal/services"
)

type ExportHandler struct {
	exportService *services.ExportService
}

func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

func (h *ExportHandler) ExportProcess(c *fiber.Ctx) error {
	userID, processID, err := processParams(c)
	if err != nil {
		return respondProcessError(c, err)
	}

	export, err := h.exportService.Export(userID, processID)
	if err != nil {
		return respondProcessError(c, err)
	}
	return c.JSON(export)
}
