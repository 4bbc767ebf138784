package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/catalystlab/catalyst-backend/internal/dto"
	"github.com/catalystlab/catalyst-backend/internal/middleware"
	"github.com/catalystlab/catalyst-backend/internal/resolve"
	"github.com/catalystlab/catalyst-backend/internal/services"
)

type ProcessHandler struct {
	processService  *services.ProcessService
	responseService *services.ResponseService
	formService     *services.FormService
}

func NewProcessHandler(processService *services.ProcessService, responseService *services.ResponseService, formService *services.FormService) *ProcessHandler {
	return &ProcessHandler{
		processService:  processService,
		responseService: responseService,
		formService:     formService,
	}
}

func (h *ProcessHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Unauthorized")
	}

	var req dto.CreateProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	process, err := h.processService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidProcess) {
			return badRequest(c, err.Error())
		}
		return internalError(c, "Failed to create process")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "processId": process.ID})
}

func (h *ProcessHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Unauthorized")
	}

	processes, err := h.processService.List(userID)
	if err != nil {
		return internalError(c, "Failed to list processes")
	}
	return c.JSON(fiber.Map{"processes": processes})
}

func (h *ProcessHandler) Get(c *fiber.Ctx) error {
	userID, processID, err := processParams(c)
	if err != nil {
		return respondProcessError(c, err)
	}

	summary, steps, err := h.processService.Get(userID, processID)
	if err != nil {
		return respondProcessError(c, err)
	}
	return c.JSON(fiber.Map{"process": summary, "steps": steps})
}

func (h *ProcessHandler) Update(c *fiber.Ctx) error {
	userID, processID, err := processParams(c)
	if err != nil {
		return respondProcessError(c, err)
	}

	var req dto.UpdateProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if _, err := h.processService.Update(userID, processID, &req); err != nil {
		if errors.Is(err, services.ErrProcessNotFound) {
			return notFound(c, "Process not found")
		}
		return badRequest(c, err.Error())
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *ProcessHandler) Delete(c *fiber.Ctx) error {
	userID, processID, err := processParams(c)
	if err != nil {
		return respondProcessError(c, err)
	}

	if err := h.processService.Delete(userID, processID); err != nil {
		return respondProcessError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *ProcessHandler) CompleteStep(c *fiber.Ctx) error {
	userID, processID, err := processParams(c)
	if err != nil {
		return respondProcessError(c, err)
	}
	stepID, err := parseUintParam(c, "stepId")
	if err != nil {
		return badRequest(c, "Invalid step id")
	}

	if _, err := h.processService.CompleteStep(userID, processID, stepID); err != nil {
		if errors.Is(err, services.ErrStepNotFound) {
			return notFound(c, "Step not found in process")
		}
		return respondProcessError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *ProcessHandler) ListResponses(c *fiber.Ctx) error {
	userID, processID, err := processParams(c)
	if err != nil {
		return respondProcessError(c, err)
	}
	if err := h.processService.Authorize(userID, processID); err != nil {
		return respondProcessError(c, err)
	}

	records, err := h.responseService.GetAll(resolve.ProcessScope(processID))
	if err != nil {
		return internalError(c, "Failed to load responses")
	}
	return c.JSON(fiber.Map{"responses": records})
}

func (h *ProcessHandler) SaveResponses(c *fiber.Ctx) error {
	userID, processID, err := processParams(c)
	if err != nil {
		return respondProcessError(c, err)
	}
	if err := h.processService.Authorize(userID, processID); err != nil {
		return respondProcessError(c, err)
	}

	var req dto.ProcessResponsesRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if len(req.Responses) == 0 {
		return badRequest(c, "responses must not be empty")
	}

	results := h.responseService.UpsertComposite(resolve.ProcessScope(processID), req.Responses)
	return c.JSON(fiber.Map{"success": true, "results": results})
}

// Form assembles a step form against the process's response namespace. Day
// and step arrive as curriculum numbers in query params.
func (h *ProcessHandler) Form(c *fiber.Ctx) error {
	userID, processID, err := processParams(c)
	if err != nil {
		return respondProcessError(c, err)
	}
	if err := h.processService.Authorize(userID, processID); err != nil {
		return respondProcessError(c, err)
	}

	day, err1 := strconv.Atoi(c.Query("day"))
	step, err2 := strconv.Atoi(c.Query("step"))
	if err1 != nil || err2 != nil {
		return badRequest(c, "day and step query params are required")
	}

	form, err := h.formService.Form(resolve.ProcessScope(processID), day, step)
	if err != nil {
		if errors.Is(err, services.ErrDayNotFound) || errors.Is(err, services.ErrStepNotFound) {
			return notFound(c, "Unknown day or step")
		}
		return internalError(c, "Failed to build form")
	}
	return c.JSON(form)
}

var (
	errBadProcessID = errors.New("invalid process id")
	errUnauthorized = errors.New("unauthorized")
)

func processParams(c *fiber.Ctx) (userID, processID uuid.UUID, err error) {
	userID, err = middleware.UserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, errUnauthorized
	}
	processID, err = uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errBadProcessID
	}
	return userID, processID, nil
}

func respondProcessError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrProcessNotFound):
		return notFound(c, "Process not found")
	case errors.Is(err, errBadProcessID):
		return badRequest(c, "Invalid process id")
	case errors.Is(err, errUnauthorized):
		return unauthorized(c, "Unauthorized")
	default:
		return internalError(c, "Internal server error")
	}
}
