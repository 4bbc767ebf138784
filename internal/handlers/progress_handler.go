package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/catalystlab/catalyst-backend/internal/dto"
	"github.com/catalystlab/catalyst-backend/internal/middleware"
	"github.com/catalystlab/catalyst-backend/internal/services"
)

type ProgressHandler struct {
	progressService *services.ProgressService
}

func NewProgressHandler(progressService *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

func (h *ProgressHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Unauthorized")
	}

	records, err := h.progressService.List(userID)
	if err != nil {
		return internalError(c, "Failed to load progress")
	}
	return c.JSON(fiber.Map{"progress": records})
}

func (h *ProgressHandler) ListByDay(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Unauthorized")
	}
	dayID, err := parseUintParam(c, "dayId")
	if err != nil {
		return badRequest(c, "Invalid day id")
	}

	records, err := h.progressService.ListByDay(userID, dayID)
	if err != nil {
		return internalError(c, "Failed to load progress")
	}
	return c.JSON(fiber.Map{"progress": records})
}

func (h *ProgressHandler) UpdateStep(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Unauthorized")
	}
	stepID, err := parseUintParam(c, "stepId")
	if err != nil {
		return badRequest(c, "Invalid step id")
	}

	var req dto.ProgressUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.DayID == 0 {
		return badRequest(c, "day_id is required")
	}

	record, err := h.progressService.UpdateStep(userID, stepID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return badRequest(c, err.Error())
		}
		return internalError(c, "Failed to update progress")
	}
	return c.JSON(fiber.Map{"progress": record})
}
