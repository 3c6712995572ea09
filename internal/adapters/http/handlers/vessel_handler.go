package handlers

import (
	"errors"

	"vesselhub/internal/core/domain"
	"vesselhub/internal/core/services"
	"vesselhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// VesselHandler handles vessel registry endpoints
type VesselHandler struct {
	vesselService *services.VesselService
}

// NewVesselHandler creates a new vessel handler
func NewVesselHandler(vesselService *services.VesselService) *VesselHandler {
	return &VesselHandler{vesselService: vesselService}
}

// List returns all vessels
// @Summary List vessels
// @Tags Vessels
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /vessels [get]
func (h *VesselHandler) List(c *fiber.Ctx) error {
	vessels, err := h.vesselService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list vessels")
	}

	return response.Success(c, "Vessels retrieved", vessels)
}

// Get returns a single vessel
// @Summary Get vessel
// @Tags Vessels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vessel ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vessels/{id} [get]
func (h *VesselHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid vessel ID")
	}

	vessel, err := h.vesselService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrVesselNotFound) {
			return response.NotFound(c, "Vessel not found")
		}
		return response.InternalServerError(c, "Failed to get vessel")
	}

	return response.Success(c, "Vessel retrieved", vessel)
}

// Create registers a new vessel
// @Summary Create vessel
// @Tags Vessels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.VesselInput true "Vessel data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /vessels [post]
func (h *VesselHandler) Create(c *fiber.Ctx) error {
	var input services.VesselInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, validationMessage(err))
	}

	vessel, err := h.vesselService.Create(c.Context(), &input)
	if err != nil {
		return response.InternalServerError(c, "Failed to create vessel")
	}

	return response.Created(c, "Vessel created", vessel)
}
