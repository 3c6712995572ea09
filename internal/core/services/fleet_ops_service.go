package services

import (
	"context"

	"vesselhub/internal/adapters/persistence/repositories"
	"vesselhub/internal/core/domain"
)

// FleetOpsService handles maintenance, safety and QHSE records
type FleetOpsService struct {
	maintenanceRepo repositories.MaintenanceRepository
	safetyRepo      repositories.SafetyRepository
	qhseRepo        repositories.QHSERepository
	vesselRepo      repositories.VesselRepository
}

// NewFleetOpsService creates a new fleet operations service
func NewFleetOpsService(
	maintenanceRepo repositories.MaintenanceRepository,
	safetyRepo repositories.SafetyRepository,
	qhseRepo repositories.QHSERepository,
	vesselRepo repositories.VesselRepository,
) *FleetOpsService {
	return &FleetOpsService{
		maintenanceRepo: maintenanceRepo,
		safetyRepo:      safetyRepo,
		qhseRepo:        qhseRepo,
		vesselRepo:      vesselRepo,
	}
}

// MaintenanceInput represents maintenance record creation input
type MaintenanceInput struct {
	VesselID        uint    `json:"vessel_id" validate:"required"`
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	MaintenanceType string  `json:"maintenance_type" validate:"required"`
	ScheduledDate   string  `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	CompletedDate   string  `json:"completed_date" validate:"omitempty,datetime=2006-01-02"`
	Status          string  `json:"status"`
	AssignedTo      uint    `json:"assigned_to"`
	Cost            float64 `json:"cost"`
}

// SafetyInput represents safety record creation input
type SafetyInput struct {
	VesselID          uint   `json:"vessel_id" validate:"required"`
	IncidentType      string `json:"incident_type" validate:"required"`
	Description       string `json:"description" validate:"required"`
	IncidentDate      string `json:"incident_date" validate:"required,datetime=2006-01-02"`
	Severity          string `json:"severity" validate:"required"`
	Status            string `json:"status"`
	CorrectiveActions string `json:"corrective_actions"`
}

// QHSEInput represents QHSE audit record creation input
type QHSEInput struct {
	VesselID          uint   `json:"vessel_id" validate:"required"`
	AuditType         string `json:"audit_type" validate:"required"`
	AuditDate         string `json:"audit_date" validate:"required,datetime=2006-01-02"`
	Auditor           string `json:"auditor" validate:"required"`
	Findings          string `json:"findings" validate:"required"`
	ComplianceScore   int    `json:"compliance_score" validate:"omitempty,min=0,max=100"`
	CorrectiveActions string `json:"corrective_actions"`
	Status            string `json:"status"`
}

// ListMaintenance lists maintenance records, optionally by vessel
func (s *FleetOpsService) ListMaintenance(ctx context.Context, vesselID uint) ([]domain.MaintenanceRecord, error) {
	return s.maintenanceRepo.List(ctx, vesselID)
}

// CreateMaintenance records new maintenance work, stamped with the
// creating user
func (s *FleetOpsService) CreateMaintenance(ctx context.Context, createdBy uint, input *MaintenanceInput) (*domain.MaintenanceRecord, error) {
	if _, err := s.vesselRepo.GetByID(ctx, input.VesselID); err != nil {
		return nil, err
	}
	return s.maintenanceRepo.Create(ctx, domain.MaintenanceRecord{
		VesselID:        input.VesselID,
		Title:           input.Title,
		Description:     input.Description,
		MaintenanceType: input.MaintenanceType,
		ScheduledDate:   input.ScheduledDate,
		CompletedDate:   input.CompletedDate,
		Status:          input.Status,
		AssignedTo:      input.AssignedTo,
		Cost:            input.Cost,
		CreatedBy:       createdBy,
	})
}

// UpdateMaintenance merges a partial update into a maintenance record
func (s *FleetOpsService) UpdateMaintenance(ctx context.Context, id uint, patch domain.MaintenancePatch) (*domain.MaintenanceRecord, error) {
	return s.maintenanceRepo.Update(ctx, id, patch)
}

// ListSafety lists safety records, optionally by vessel
func (s *FleetOpsService) ListSafety(ctx context.Context, vesselID uint) ([]domain.SafetyRecord, error) {
	return s.safetyRepo.List(ctx, vesselID)
}

// CreateSafety records a safety incident, stamped with the reporting
// user
func (s *FleetOpsService) CreateSafety(ctx context.Context, reportedBy uint, input *SafetyInput) (*domain.SafetyRecord, error) {
	if _, err := s.vesselRepo.GetByID(ctx, input.VesselID); err != nil {
		return nil, err
	}
	return s.safetyRepo.Create(ctx, domain.SafetyRecord{
		VesselID:          input.VesselID,
		IncidentType:      input.IncidentType,
		Description:       input.Description,
		IncidentDate:      input.IncidentDate,
		Severity:          input.Severity,
		ReportedBy:        reportedBy,
		Status:            input.Status,
		CorrectiveActions: input.CorrectiveActions,
	})
}

// ListQHSE lists QHSE audit records, optionally by vessel
func (s *FleetOpsService) ListQHSE(ctx context.Context, vesselID uint) ([]domain.QHSERecord, error) {
	return s.qhseRepo.List(ctx, vesselID)
}

// CreateQHSE records a QHSE audit, stamped with the creating user
func (s *FleetOpsService) CreateQHSE(ctx context.Context, createdBy uint, input *QHSEInput) (*domain.QHSERecord, error) {
	if _, err := s.vesselRepo.GetByID(ctx, input.VesselID); err != nil {
		return nil, err
	}
	return s.qhseRepo.Create(ctx, domain.QHSERecord{
		VesselID:          input.VesselID,
		AuditType:         input.AuditType,
		AuditDate:         input.AuditDate,
		Auditor:           input.Auditor,
		Findings:          input.Findings,
		ComplianceScore:   input.ComplianceScore,
		CorrectiveActions: input.CorrectiveActions,
		Status:            input.Status,
		CreatedBy:         createdBy,
	})
}
