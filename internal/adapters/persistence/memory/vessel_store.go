package memory

import (
	"context"
	"time"

	"vesselhub/internal/core/domain"
)

// VesselStore is the vessel view over the shared store
type VesselStore struct {
	s *Store
}

// Vessels returns the vessel repository backed by this store
func (s *Store) Vessels() *VesselStore {
	return &VesselStore{s: s}
}

// Create inserts a new vessel
func (r *VesselStore) Create(ctx context.Context, vessel domain.Vessel) (*domain.Vessel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	vessel.ID = r.s.allocateLocked()
	vessel.CreatedAt = time.Now()
	r.s.vessels[vessel.ID] = vessel

	stored := vessel
	return &stored, nil
}

// GetByID gets a vessel by ID
func (r *VesselStore) GetByID(ctx context.Context, id uint) (*domain.Vessel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	vessel, ok := r.s.vessels[id]
	if !ok {
		return nil, domain.ErrVesselNotFound
	}
	return &vessel, nil
}

// List lists all vessels in creation order
func (r *VesselStore) List(ctx context.Context) ([]domain.Vessel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	vessels := make([]domain.Vessel, 0, len(r.s.vessels))
	for _, id := range sortedIDs(r.s.vessels) {
		vessels = append(vessels, r.s.vessels[id])
	}
	return vessels, nil
}
