package services

import (
	"context"
	"log"

	"vesselhub/internal/adapters/persistence/repositories"
	"vesselhub/internal/core/domain"
)

// CrewingService handles crew-to-vessel assignments
type CrewingService struct {
	assignmentRepo repositories.AssignmentRepository
	vesselRepo     repositories.VesselRepository
}

// NewCrewingService creates a new crewing service
func NewCrewingService(assignmentRepo repositories.AssignmentRepository, vesselRepo repositories.VesselRepository) *CrewingService {
	return &CrewingService{
		assignmentRepo: assignmentRepo,
		vesselRepo:     vesselRepo,
	}
}

// AssignmentInput represents assignment creation input
type AssignmentInput struct {
	VesselID  uint   `json:"vessel_id" validate:"required"`
	Position  string `json:"position" validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// MyAssignment pairs a user's current assignment with its vessel
type MyAssignment struct {
	Assignment *domain.CrewAssignment `json:"assignment"`
	Vessel     *domain.Vessel         `json:"vessel"`
}

// List lists assignments, optionally filtered by user and/or vessel
func (s *CrewingService) List(ctx context.Context, userID, vesselID uint) ([]domain.CrewAssignment, error) {
	return s.assignmentRepo.List(ctx, userID, vesselID)
}

// Create assigns the user to a vessel. Any prior active assignment for
// the user is deactivated first, so at most one assignment per user is
// active at a time. Best effort: the deactivate and the create are two
// store calls, not one transaction.
func (s *CrewingService) Create(ctx context.Context, userID uint, input *AssignmentInput) (*domain.CrewAssignment, error) {
	if _, err := s.vesselRepo.GetByID(ctx, input.VesselID); err != nil {
		return nil, err
	}

	current, err := s.assignmentRepo.GetActiveByUser(ctx, userID)
	if err == nil {
		inactive := false
		if _, err := s.assignmentRepo.Update(ctx, current.ID, domain.AssignmentPatch{IsActive: &inactive}); err != nil {
			return nil, err
		}
	}

	assignment, err := s.assignmentRepo.Create(ctx, domain.CrewAssignment{
		UserID:    userID,
		VesselID:  input.VesselID,
		Position:  input.Position,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		IsActive:  true,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Crew assignment created: user=%d vessel=%d position=%s", userID, input.VesselID, input.Position)
	return assignment, nil
}

// Current returns the user's active assignment together with its
// vessel, or nil when the user is unassigned
func (s *CrewingService) Current(ctx context.Context, userID uint) (*MyAssignment, error) {
	assignment, err := s.assignmentRepo.GetActiveByUser(ctx, userID)
	if err == domain.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	vessel, err := s.vesselRepo.GetByID(ctx, assignment.VesselID)
	if err != nil {
		return nil, err
	}

	return &MyAssignment{Assignment: assignment, Vessel: vessel}, nil
}
