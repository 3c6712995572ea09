package handlers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"vesselhub/internal/adapters/http/middleware"
	"vesselhub/internal/config"
	"vesselhub/internal/core/domain"
	"vesselhub/internal/core/services"
	"vesselhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CrewHandler handles crew self-service endpoints: profile, next of
// kin, medical info, electronic signature and certificates.
type CrewHandler struct {
	crewService *services.CrewService
	cfg         *config.Config
}

// NewCrewHandler creates a new crew handler
func NewCrewHandler(crewService *services.CrewService, cfg *config.Config) *CrewHandler {
	return &CrewHandler{
		crewService: crewService,
		cfg:         cfg,
	}
}

// GetProfile returns the caller's profile
// @Summary Get profile
// @Tags Crew
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /profile [get]
func (h *CrewHandler) GetProfile(c *fiber.Ctx) error {
	user := middleware.Caller(c)

	profile, err := h.crewService.GetProfile(c.Context(), user.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to get profile")
	}
	if profile == nil {
		return response.Success(c, "Profile retrieved", fiber.Map{})
	}

	return response.Success(c, "Profile retrieved", profile)
}

// UpdateProfile creates or updates the caller's profile
// @Summary Update profile
// @Tags Crew
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.ProfilePatch true "Profile fields"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /profile [put]
func (h *CrewHandler) UpdateProfile(c *fiber.Ctx) error {
	user := middleware.Caller(c)

	var patch domain.ProfilePatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&patch); err != nil {
		return response.BadRequest(c, validationMessage(err))
	}

	profile, err := h.crewService.UpdateProfile(c.Context(), user.ID, patch)
	if err != nil {
		return response.InternalServerError(c, "Failed to update profile")
	}

	return response.Success(c, "Profile updated", profile)
}

// GetNextOfKin returns the caller's next of kin record
// @Summary Get next of kin
// @Tags Crew
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /next-of-kin [get]
func (h *CrewHandler) GetNextOfKin(c *fiber.Ctx) error {
	user := middleware.Caller(c)

	kin, err := h.crewService.GetNextOfKin(c.Context(), user.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to get next of kin")
	}
	if kin == nil {
		return response.Success(c, "Next of kin retrieved", fiber.Map{})
	}

	return response.Success(c, "Next of kin retrieved", kin)
}

// UpdateNextOfKin creates or updates the caller's next of kin record
// @Summary Update next of kin
// @Tags Crew
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.NextOfKinPatch true "Next of kin fields"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /next-of-kin [put]
func (h *CrewHandler) UpdateNextOfKin(c *fiber.Ctx) error {
	user := middleware.Caller(c)

	var patch domain.NextOfKinPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&patch); err != nil {
		return response.BadRequest(c, validationMessage(err))
	}

	kin, err := h.crewService.UpdateNextOfKin(c.Context(), user.ID, patch)
	if err != nil {
		return response.InternalServerError(c, "Failed to update next of kin")
	}

	return response.Success(c, "Next of kin updated", kin)
}

// GetMedicalInfo returns the caller's medical record
// @Summary Get medical info
// @Tags Crew
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /medical-info [get]
func (h *CrewHandler) GetMedicalInfo(c *fiber.Ctx) error {
	user := middleware.Caller(c)

	info, err := h.crewService.GetMedicalInfo(c.Context(), user.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to get medical info")
	}
	if info == nil {
		return response.Success(c, "Medical info retrieved", fiber.Map{})
	}

	return response.Success(c, "Medical info retrieved", info)
}

// UpdateMedicalInfo creates or updates the caller's medical record
// @Summary Update medical info
// @Tags Crew
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.MedicalInfoPatch true "Medical info fields"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /medical-info [put]
func (h *CrewHandler) UpdateMedicalInfo(c *fiber.Ctx) error {
	user := middleware.Caller(c)

	var patch domain.MedicalInfoPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&patch); err != nil {
		return response.BadRequest(c, validationMessage(err))
	}

	info, err := h.crewService.UpdateMedicalInfo(c.Context(), user.ID, patch)
	if err != nil {
		return response.InternalServerError(c, "Failed to update medical info")
	}

	return response.Success(c, "Medical info updated", info)
}

// GetSignature returns the caller's active electronic signature
// @Summary Get electronic signature
// @Tags Crew
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /electronic-signature [get]
func (h *CrewHandler) GetSignature(c *fiber.Ctx) error {
	user := middleware.Caller(c)

	sig, err := h.crewService.GetSignature(c.Context(), user.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to get signature")
	}
	if sig == nil {
		return response.Success(c, "Signature retrieved", fiber.Map{})
	}

	return response.Success(c, "Signature retrieved", sig)
}

// UpdateSignature creates or updates the caller's electronic signature
// @Summary Update electronic signature
// @Tags Crew
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.SignaturePatch true "Signature fields"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /electronic-signature [put]
func (h *CrewHandler) UpdateSignature(c *fiber.Ctx) error {
	user := middleware.Caller(c)

	var patch domain.SignaturePatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&patch); err != nil {
		return response.BadRequest(c, validationMessage(err))
	}

	sig, err := h.crewService.UpdateSignature(c.Context(), user.ID, patch)
	if err != nil {
		return response.InternalServerError(c, "Failed to update signature")
	}

	return response.Success(c, "Signature updated", sig)
}

// ListCertificates returns the caller's certificates
// @Summary List certificates
// @Tags Crew
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /certificates [get]
func (h *CrewHandler) ListCertificates(c *fiber.Ctx) error {
	user := middleware.Caller(c)

	certs, err := h.crewService.ListCertificates(c.Context(), user.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list certificates")
	}

	return response.Success(c, "Certificates retrieved", certs)
}

// CreateCertificate records a new certificate for the caller
// @Summary Create certificate
// @Tags Crew
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CertificateInput true "Certificate data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /certificates [post]
func (h *CrewHandler) CreateCertificate(c *fiber.Ctx) error {
	user := middleware.Caller(c)

	var input services.CertificateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, validationMessage(err))
	}

	cert, err := h.crewService.CreateCertificate(c.Context(), user.ID, &input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Invalid certificate type")
		}
		return response.InternalServerError(c, "Failed to create certificate")
	}

	return response.Created(c, "Certificate created", cert)
}

// UploadCertificateFile attaches a scanned document to a certificate
// @Summary Upload certificate file
// @Tags Crew
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Certificate ID"
// @Param file formData file true "Certificate document"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /certificates/{id}/file [post]
func (h *CrewHandler) UploadCertificateFile(c *fiber.Ctx) error {
	user := middleware.Caller(c)

	certID, err := c.ParamsInt("id")
	if err != nil || certID <= 0 {
		return response.BadRequest(c, "Invalid certificate ID")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "Missing file")
	}

	dir := filepath.Join(h.cfg.UploadDir, "certificates")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return response.InternalServerError(c, "Failed to store file")
	}

	filename := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(fileHeader.Filename))
	dest := filepath.Join(dir, filename)
	if err := c.SaveFile(fileHeader, dest); err != nil {
		return response.InternalServerError(c, "Failed to store file")
	}

	cert, err := h.crewService.AttachCertificateFile(c.Context(), user.ID, uint(certID), dest)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCertificateNotFound):
			return response.NotFound(c, "Certificate not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "Certificate belongs to another user")
		default:
			return response.InternalServerError(c, "Failed to attach file")
		}
	}

	return response.Success(c, "File uploaded", cert)
}
