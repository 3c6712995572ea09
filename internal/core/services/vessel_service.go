package services

import (
	"context"
	"log"

	"vesselhub/internal/adapters/persistence/repositories"
	"vesselhub/internal/core/domain"
)

// VesselService handles fleet vessel business logic
type VesselService struct {
	vesselRepo repositories.VesselRepository
}

// NewVesselService creates a new vessel service
func NewVesselService(vesselRepo repositories.VesselRepository) *VesselService {
	return &VesselService{vesselRepo: vesselRepo}
}

// VesselInput represents vessel creation input
type VesselInput struct {
	Name         string  `json:"name" validate:"required"`
	IMONumber    string  `json:"imo_number"`
	VesselType   string  `json:"vessel_type" validate:"required"`
	FlagState    string  `json:"flag_state" validate:"required"`
	GrossTonnage float64 `json:"gross_tonnage"`
	Length       float64 `json:"length"`
	Beam         float64 `json:"beam"`
	YearBuilt    int     `json:"year_built"`
}

// List lists all vessels
func (s *VesselService) List(ctx context.Context) ([]domain.Vessel, error) {
	return s.vesselRepo.List(ctx)
}

// GetByID gets a vessel by ID
func (s *VesselService) GetByID(ctx context.Context, id uint) (*domain.Vessel, error) {
	return s.vesselRepo.GetByID(ctx, id)
}

// Create registers a new vessel in the fleet
func (s *VesselService) Create(ctx context.Context, input *VesselInput) (*domain.Vessel, error) {
	vessel, err := s.vesselRepo.Create(ctx, domain.Vessel{
		Name:         input.Name,
		IMONumber:    input.IMONumber,
		VesselType:   input.VesselType,
		FlagState:    input.FlagState,
		GrossTonnage: input.GrossTonnage,
		Length:       input.Length,
		Beam:         input.Beam,
		YearBuilt:    input.YearBuilt,
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Vessel created: %s (id=%d)", vessel.Name, vessel.ID)
	return vessel, nil
}
