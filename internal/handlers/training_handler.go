package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/catalystlab/catalyst-backend/internal/services"
)

type TrainingHandler struct {
	trainingService *services.TrainingService
}

func NewTrainingHandler(trainingService *services.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService}
}

func (h *TrainingHandler) ListDays(c *fiber.Ctx) error {
	days, err := h.trainingService.ListDays()
	if err != nil {
		return internalError(c, "Failed to load training days")
	}
	return c.JSON(fiber.Map{"days": days})
}

func (h *TrainingHandler) GetDay(c *fiber.Ctx) error {
	dayID, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid day id")
	}

	day, steps, err := h.trainingService.GetDay(dayID)
	if err != nil {
		if errors.Is(err, services.ErrDayNotFound) {
			return notFound(c, "Training day not found")
		}
		return internalError(c, "Failed to load training day")
	}

	return c.JSON(fiber.Map{"day": day, "steps": steps})
}

func (h *TrainingHandler) GetStep(c *fiber.Ctx) error {
	stepID, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid step id")
	}

	step, err := h.trainingService.GetStep(stepID)
	if err != nil {
		if errors.Is(err, services.ErrStepNotFound) {
			return notFound(c, "Training step not found")
		}
		return internalError(c, "Failed to load training step")
	}

	return c.JSON(fiber.Map{"step": step})
}

func (h *TrainingHandler) ListTools(c *fiber.Ctx) error {
	tools, err := h.trainingService.ListTools()
	if err != nil {
		return internalError(c, "Failed to load tools")
	}
	return c.JSON(fiber.Map{"tools": tools})
}

func (h *TrainingHandler) GetTool(c *fiber.Ctx) error {
	name := c.Params("name")
	tool, err := h.trainingService.GetTool(name)
	if err != nil {
		if errors.Is(err, services.ErrToolNotFound) {
			return notFound(c, "Tool not found")
		}
		return internalError(c, "Failed to load tool")
	}
	return c.JSON(fiber.Map{"tool": tool})
}

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
