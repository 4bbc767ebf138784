package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/catalystlab/catalyst-backend/internal/dto"
	"github.com/catalystlab/catalyst-backend/internal/middleware"
	"github.com/catalystlab/catalyst-backend/internal/resolve"
	"github.com/catalystlab/catalyst-backend/internal/services"
)

type ResponseHandler struct {
	responseService *services.ResponseService
}

func NewResponseHandler(responseService *services.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseService: responseService}
}

func (h *ResponseHandler) Upsert(c *fiber.Ctx) error {
	sc, err := userScope(c)
	if err != nil {
		return unauthorized(c, "Unauthorized")
	}

	var req dto.ResponseUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	saved, err := h.responseService.Upsert(sc, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidResponse) || errors.Is(err, services.ErrUnknownStep) {
			return badRequest(c, err.Error())
		}
		return internalError(c, "Failed to save response")
	}

	return c.JSON(fiber.Map{"saved": saved, "response": req})
}

func (h *ResponseHandler) UpsertBatch(c *fiber.Ctx) error {
	sc, err := userScope(c)
	if err != nil {
		return unauthorized(c, "Unauthorized")
	}

	var req dto.BatchResponsesRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if len(req.Responses) == 0 {
		return badRequest(c, "responses must not be empty")
	}

	results := h.responseService.UpsertMany(sc, req.Responses)
	return c.JSON(fiber.Map{"results": results, "count": len(results)})
}

func (h *ResponseHandler) List(c *fiber.Ctx) error {
	sc, err := userScope(c)
	if err != nil {
		return unauthorized(c, "Unauthorized")
	}

	records, err := h.responseService.GetAll(sc)
	if err != nil {
		return internalError(c, "Failed to load responses")
	}
	return c.JSON(fiber.Map{"responses": records})
}

func (h *ResponseHandler) ListByDay(c *fiber.Ctx) error {
	sc, err := userScope(c)
	if err != nil {
		return unauthorized(c, "Unauthorized")
	}
	dayID, err := parseUintParam(c, "dayId")
	if err != nil {
		return badRequest(c, "Invalid day id")
	}

	records, err := h.responseService.GetByDay(sc, dayID)
	if err != nil {
		return internalError(c, "Failed to load responses")
	}
	return c.JSON(fiber.Map{"responses": records})
}

func (h *ResponseHandler) ListByStep(c *fiber.Ctx) error {
	sc, err := userScope(c)
	if err != nil {
		return unauthorized(c, "Unauthorized")
	}
	stepID, err := parseUintParam(c, "stepId")
	if err != nil {
		return badRequest(c, "Invalid step id")
	}

	records, err := h.responseService.GetByStep(sc, stepID)
	if err != nil {
		return internalError(c, "Failed to load responses")
	}
	return c.JSON(fiber.Map{"responses": records})
}

func userScope(c *fiber.Ctx) (resolve.Scope, error) {
	userID, err := middleware.UserID(c)
	if err != nil {
		return resolve.Scope{}, err
	}
	return resolve.UserScope(userID), nil
}
