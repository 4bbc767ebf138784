package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/catalystlab/catalyst-backend/internal/services"
)

type FormHandler struct {
	formService *services.FormService
}

func NewFormHandler(formService *services.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

// StepForm renders a step's form against the user's own training responses.
// The day arrives as a row id, the step as a curriculum number.
func (h *FormHandler) StepForm(c *fiber.Ctx) error {
	sc, err := userScope(c)
	if err != nil {
		return unauthorized(c, "Unauthorized")
	}

	dayID, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid day id")
	}
	stepNumber, err := strconv.Atoi(c.Params("num"))
	if err != nil {
		return badRequest(c, "Invalid step number")
	}

	form, err := h.formService.FormByDayID(sc, dayID, stepNumber)
	if err != nil {
		if errors.Is(err, services.ErrDayNotFound) || errors.Is(err, services.ErrStepNotFound) {
			return notFound(c, "Unknown day or step")
		}
		return internalError(c, "Failed to build form")
	}
	return c.JSON(form)
}
