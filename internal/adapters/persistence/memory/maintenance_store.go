package memory

import (
	"context"
	"time"

	"vesselhub/internal/core/domain"
)

// MaintenanceStore is the maintenance record view over the shared store
type MaintenanceStore struct {
	s *Store
}

// Maintenance returns the maintenance repository backed by this store
func (s *Store) Maintenance() *MaintenanceStore {
	return &MaintenanceStore{s: s}
}

// Create inserts a new maintenance record. Status defaults to pending
// when the caller leaves it empty.
func (r *MaintenanceStore) Create(ctx context.Context, rec domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec.ID = r.s.allocateLocked()
	rec.CreatedAt = time.Now()
	if rec.Status == "" {
		rec.Status = "pending"
	}
	r.s.maintenance[rec.ID] = rec

	stored := rec
	return &stored, nil
}

// GetByID gets a maintenance record by ID
func (r *MaintenanceStore) GetByID(ctx context.Context, id uint) (*domain.MaintenanceRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.maintenance[id]
	if !ok {
		return nil, domain.ErrMaintenanceNotFound
	}
	return &rec, nil
}

// List lists maintenance records in creation order, optionally filtered
// by vessel
func (r *MaintenanceStore) List(ctx context.Context, vesselID uint) ([]domain.MaintenanceRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records := make([]domain.MaintenanceRecord, 0)
	for _, id := range sortedIDs(r.s.maintenance) {
		if vesselID != 0 && r.s.maintenance[id].VesselID != vesselID {
			continue
		}
		records = append(records, r.s.maintenance[id])
	}
	return records, nil
}

// Update merges the provided fields into a maintenance record. The id
// and created_at never change.
func (r *MaintenanceStore) Update(ctx context.Context, id uint, patch domain.MaintenancePatch) (*domain.MaintenanceRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.maintenance[id]
	if !ok {
		return nil, domain.ErrMaintenanceNotFound
	}

	if patch.Title != nil {
		rec.Title = *patch.Title
	}
	if patch.Description != nil {
		rec.Description = *patch.Description
	}
	if patch.MaintenanceType != nil {
		rec.MaintenanceType = *patch.MaintenanceType
	}
	if patch.ScheduledDate != nil {
		rec.ScheduledDate = *patch.ScheduledDate
	}
	if patch.CompletedDate != nil {
		rec.CompletedDate = *patch.CompletedDate
	}
	if patch.Status != nil {
		rec.Status = *patch.Status
	}
	if patch.AssignedTo != nil {
		rec.AssignedTo = *patch.AssignedTo
	}
	if patch.Cost != nil {
		rec.Cost = *patch.Cost
	}
	r.s.maintenance[id] = rec
	return &rec, nil
}
