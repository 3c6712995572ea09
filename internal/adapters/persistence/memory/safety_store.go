package memory

import (
	"context"
	"time"

	"vesselhub/internal/core/domain"
)

// SafetyStore is the safety record view over the shared store
type SafetyStore struct {
	s *Store
}

// Safety returns the safety repository backed by this store
func (s *Store) Safety() *SafetyStore {
	return &SafetyStore{s: s}
}

// Create inserts a new safety record. Status defaults to open when the
// caller leaves it empty.
func (r *SafetyStore) Create(ctx context.Context, rec domain.SafetyRecord) (*domain.SafetyRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec.ID = r.s.allocateLocked()
	rec.CreatedAt = time.Now()
	if rec.Status == "" {
		rec.Status = "open"
	}
	r.s.safety[rec.ID] = rec

	stored := rec
	return &stored, nil
}

// List lists safety records in creation order, optionally filtered by
// vessel
func (r *SafetyStore) List(ctx context.Context, vesselID uint) ([]domain.SafetyRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records := make([]domain.SafetyRecord, 0)
	for _, id := range sortedIDs(r.s.safety) {
		if vesselID != 0 && r.s.safety[id].VesselID != vesselID {
			continue
		}
		records = append(records, r.s.safety[id])
	}
	return records, nil
}

// QHSEStore is the QHSE audit record view over the shared store
type QHSEStore struct {
	s *Store
}

// QHSE returns the QHSE repository backed by this store
func (s *Store) QHSE() *QHSEStore {
	return &QHSEStore{s: s}
}

// Create inserts a new QHSE audit record. Status defaults to open when
// the caller leaves it empty.
func (r *QHSEStore) Create(ctx context.Context, rec domain.QHSERecord) (*domain.QHSERecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec.ID = r.s.allocateLocked()
	rec.CreatedAt = time.Now()
	if rec.Status == "" {
		rec.Status = "open"
	}
	r.s.qhse[rec.ID] = rec

	stored := rec
	return &stored, nil
}

// List lists QHSE records in creation order, optionally filtered by
// vessel
func (r *QHSEStore) List(ctx context.Context, vesselID uint) ([]domain.QHSERecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records := make([]domain.QHSERecord, 0)
	for _, id := range sortedIDs(r.s.qhse) {
		if vesselID != 0 && r.s.qhse[id].VesselID != vesselID {
			continue
		}
		records = append(records, r.s.qhse[id])
	}
	return records, nil
}
