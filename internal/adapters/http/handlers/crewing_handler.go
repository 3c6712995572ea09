package handlers

import (
	"errors"

	"vesselhub/internal/adapters/http/middleware"
	"vesselhub/internal/core/domain"
	"vesselhub/internal/core/services"
	"vesselhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CrewingHandler handles crew assignment endpoints
type CrewingHandler struct {
	crewingService *services.CrewingService
}

// NewCrewingHandler creates a new crewing handler
func NewCrewingHandler(crewingService *services.CrewingService) *CrewingHandler {
	return &CrewingHandler{crewingService: crewingService}
}

// List returns crew assignments, optionally filtered by user or vessel
// @Summary List crew assignments
// @Tags Crewing
// @Produce json
// @Security BearerAuth
// @Param user_id query int false "Filter by user"
// @Param vessel_id query int false "Filter by vessel"
// @Success 200 {object} response.Response
// @Router /crew-assignments [get]
func (h *CrewingHandler) List(c *fiber.Ctx) error {
	userID := c.QueryInt("user_id")
	vesselID := c.QueryInt("vessel_id")
	if userID < 0 || vesselID < 0 {
		return response.BadRequest(c, "Invalid filter")
	}

	assignments, err := h.crewingService.List(c.Context(), uint(userID), uint(vesselID))
	if err != nil {
		return response.InternalServerError(c, "Failed to list assignments")
	}

	return response.Success(c, "Assignments retrieved", assignments)
}

// Create assigns the caller to a vessel, replacing any active assignment
// @Summary Create crew assignment
// @Tags Crewing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.AssignmentInput true "Assignment data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /crew-assignments [post]
func (h *CrewingHandler) Create(c *fiber.Ctx) error {
	user := middleware.Caller(c)

	var input services.AssignmentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, validationMessage(err))
	}

	assignment, err := h.crewingService.Create(c.Context(), user.ID, &input)
	if err != nil {
		if errors.Is(err, domain.ErrVesselNotFound) {
			return response.NotFound(c, "Vessel not found")
		}
		return response.InternalServerError(c, "Failed to create assignment")
	}

	return response.Created(c, "Assignment created", assignment)
}

// MyAssignment returns the caller's active assignment with its vessel
// @Summary Get my assignment
// @Tags Crewing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /my-assignment [get]
func (h *CrewingHandler) MyAssignment(c *fiber.Ctx) error {
	user := middleware.Caller(c)

	current, err := h.crewingService.Current(c.Context(), user.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to get assignment")
	}
	if current == nil {
		return response.Success(c, "No active assignment", nil)
	}

	return response.Success(c, "Assignment retrieved", current)
}
