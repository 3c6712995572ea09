package handlers

import (
	"errors"

	"vesselhub/internal/adapters/http/middleware"
	"vesselhub/internal/core/domain"
	"vesselhub/internal/core/services"
	"vesselhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// FleetOpsHandler handles maintenance, safety and QHSE endpoints
type FleetOpsHandler struct {
	fleetOpsService *services.FleetOpsService
}

// NewFleetOpsHandler creates a new fleet operations handler
func NewFleetOpsHandler(fleetOpsService *services.FleetOpsService) *FleetOpsHandler {
	return &FleetOpsHandler{fleetOpsService: fleetOpsService}
}

// ListMaintenance returns maintenance records, optionally by vessel
// @Summary List maintenance records
// @Tags FleetOps
// @Produce json
// @Security BearerAuth
// @Param vessel_id query int false "Filter by vessel"
// @Success 200 {object} response.Response
// @Router /maintenance [get]
func (h *FleetOpsHandler) ListMaintenance(c *fiber.Ctx) error {
	vesselID := c.QueryInt("vessel_id")
	if vesselID < 0 {
		return response.BadRequest(c, "Invalid filter")
	}

	records, err := h.fleetOpsService.ListMaintenance(c.Context(), uint(vesselID))
	if err != nil {
		return response.InternalServerError(c, "Failed to list maintenance records")
	}

	return response.Success(c, "Maintenance records retrieved", records)
}

// CreateMaintenance schedules a maintenance task
// @Summary Create maintenance record
// @Tags FleetOps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.MaintenanceInput true "Maintenance data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /maintenance [post]
func (h *FleetOpsHandler) CreateMaintenance(c *fiber.Ctx) error {
	user := middleware.Caller(c)

	var input services.MaintenanceInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, validationMessage(err))
	}

	record, err := h.fleetOpsService.CreateMaintenance(c.Context(), user.ID, &input)
	if err != nil {
		if errors.Is(err, domain.ErrVesselNotFound) {
			return response.NotFound(c, "Vessel not found")
		}
		return response.InternalServerError(c, "Failed to create maintenance record")
	}

	return response.Created(c, "Maintenance record created", record)
}

// UpdateMaintenance updates fields of a maintenance record
// @Summary Update maintenance record
// @Tags FleetOps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Maintenance record ID"
// @Param body body domain.MaintenancePatch true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /maintenance/{id} [put]
func (h *FleetOpsHandler) UpdateMaintenance(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid maintenance record ID")
	}

	var patch domain.MaintenancePatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&patch); err != nil {
		return response.BadRequest(c, validationMessage(err))
	}

	record, err := h.fleetOpsService.UpdateMaintenance(c.Context(), uint(id), patch)
	if err != nil {
		if errors.Is(err, domain.ErrMaintenanceNotFound) || errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Maintenance record not found")
		}
		return response.InternalServerError(c, "Failed to update maintenance record")
	}

	return response.Success(c, "Maintenance record updated", record)
}

// ListSafety returns safety records, optionally by vessel
// @Summary List safety records
// @Tags FleetOps
// @Produce json
// @Security BearerAuth
// @Param vessel_id query int false "Filter by vessel"
// @Success 200 {object} response.Response
// @Router /safety [get]
func (h *FleetOpsHandler) ListSafety(c *fiber.Ctx) error {
	vesselID := c.QueryInt("vessel_id")
	if vesselID < 0 {
		return response.BadRequest(c, "Invalid filter")
	}

	records, err := h.fleetOpsService.ListSafety(c.Context(), uint(vesselID))
	if err != nil {
		return response.InternalServerError(c, "Failed to list safety records")
	}

	return response.Success(c, "Safety records retrieved", records)
}

// CreateSafety reports a safety incident
// @Summary Create safety record
// @Tags FleetOps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SafetyInput true "Safety incident data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /safety [post]
func (h *FleetOpsHandler) CreateSafety(c *fiber.Ctx) error {
	user := middleware.Caller(c)

	var input services.SafetyInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, validationMessage(err))
	}

	record, err := h.fleetOpsService.CreateSafety(c.Context(), user.ID, &input)
	if err != nil {
		if errors.Is(err, domain.ErrVesselNotFound) {
			return response.NotFound(c, "Vessel not found")
		}
		return response.InternalServerError(c, "Failed to create safety record")
	}

	return response.Created(c, "Safety record created", record)
}

// ListQHSE returns QHSE audit records, optionally by vessel
// @Summary List QHSE records
// @Tags FleetOps
// @Produce json
// @Security BearerAuth
// @Param vessel_id query int false "Filter by vessel"
// @Success 200 {object} response.Response
// @Router /qhse [get]
func (h *FleetOpsHandler) ListQHSE(c *fiber.Ctx) error {
	vesselID := c.QueryInt("vessel_id")
	if vesselID < 0 {
		return response.BadRequest(c, "Invalid filter")
	}

	records, err := h.fleetOpsService.ListQHSE(c.Context(), uint(vesselID))
	if err != nil {
		return response.InternalServerError(c, "Failed to list QHSE records")
	}

	return response.Success(c, "QHSE records retrieved", records)
}

// CreateQHSE records a QHSE audit
// @Summary Create QHSE record
// @Tags FleetOps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.QHSEInput true "QHSE audit data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /qhse [post]
func (h *FleetOpsHandler) CreateQHSE(c *fiber.Ctx) error {
	user := middleware.Caller(c)

	var input services.QHSEInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, validationMessage(err))
	}

	record, err := h.fleetOpsService.CreateQHSE(c.Context(), user.ID, &input)
	if err != nil {
		if errors.Is(err, domain.ErrVesselNotFound) {
			return response.NotFound(c, "Vessel not found")
		}
		return response.InternalServerError(c, "Failed to create QHSE record")
	}

	return response.Created(c, "QHSE record created", record)
}
