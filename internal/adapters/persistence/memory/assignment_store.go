package memory

import (
	"context"

	"vesselhub/internal/core/domain"
)

// AssignmentStore is the crew assignment view over the shared store
type AssignmentStore struct {
	s *Store
}

// Assignments returns the assignment repository backed by this store
func (s *Store) Assignments() *AssignmentStore {
	return &AssignmentStore{s: s}
}

// Create inserts a new crew assignment
func (r *AssignmentStore) Create(ctx context.Context, a domain.CrewAssignment) (*domain.CrewAssignment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a.ID = r.s.allocateLocked()
	r.s.assignments[a.ID] = a

	stored := a
	return &stored, nil
}

// List lists assignments in creation order. A zero userID or vesselID
// means no filter on that key.
func (r *AssignmentStore) List(ctx context.Context, userID, vesselID uint) ([]domain.CrewAssignment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	assignments := make([]domain.CrewAssignment, 0)
	for _, id := range sortedIDs(r.s.assignments) {
		a := r.s.assignments[id]
		if userID != 0 && a.UserID != userID {
			continue
		}
		if vesselID != 0 && a.VesselID != vesselID {
			continue
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}

// GetActiveByUser returns the user's current assignment, or ErrNotFound
func (r *AssignmentStore) GetActiveByUser(ctx context.Context, userID uint) (*domain.CrewAssignment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id := range r.s.assignments {
		a := r.s.assignments[id]
		if a.UserID == userID && a.IsActive {
			return &a, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Update merges the provided fields into an assignment
func (r *AssignmentStore) Update(ctx context.Context, id uint, patch domain.AssignmentPatch) (*domain.CrewAssignment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.assignments[id]
	if !ok {
		return nil, domain.ErrAssignmentNotFound
	}

	if patch.Position != nil {
		a.Position = *patch.Position
	}
	if patch.StartDate != nil {
		a.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		a.EndDate = *patch.EndDate
	}
	if patch.IsActive != nil {
		a.IsActive = *patch.IsActive
	}
	r.s.assignments[id] = a
	return &a, nil
}
