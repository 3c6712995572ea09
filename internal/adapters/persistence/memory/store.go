// Package memory implements the repository interfaces over volatile
// in-process state. All records live in maps keyed by id; ids come from
// one counter shared across every entity kind and are never reused.
package memory

import (
	"sort"
	"sync"
	"time"

	"vesselhub/internal/core/domain"
)

// Store is the in-memory system of record. A single mutex serializes
// every mutation; exported methods take the lock, internal helpers
// assume it is already held and must not call exported methods.
type Store struct {
	mu     sync.Mutex
	nextID uint

	users        map[uint]domain.User
	profiles     map[uint]domain.UserProfile
	nextOfKin    map[uint]domain.NextOfKin
	medical      map[uint]domain.MedicalInfo
	signatures   map[uint]domain.ElectronicSignature
	certificates map[uint]domain.Certificate
	vessels      map[uint]domain.Vessel
	assignments  map[uint]domain.CrewAssignment
	maintenance  map[uint]domain.MaintenanceRecord
	safety       map[uint]domain.SafetyRecord
	qhse         map[uint]domain.QHSERecord
}

// NewStore creates a store and seeds the fixed demonstration records,
// so a fresh instance is never empty.
func NewStore() *Store {
	s := &Store{
		nextID:       1,
		users:        make(map[uint]domain.User),
		profiles:     make(map[uint]domain.UserProfile),
		nextOfKin:    make(map[uint]domain.NextOfKin),
		medical:      make(map[uint]domain.MedicalInfo),
		signatures:   make(map[uint]domain.ElectronicSignature),
		certificates: make(map[uint]domain.Certificate),
		vessels:      make(map[uint]domain.Vessel),
		assignments:  make(map[uint]domain.CrewAssignment),
		maintenance:  make(map[uint]domain.MaintenanceRecord),
		safety:       make(map[uint]domain.SafetyRecord),
		qhse:         make(map[uint]domain.QHSERecord),
	}
	s.seed()
	return s
}

// allocateLocked hands out the next id. Caller holds the lock.
func (s *Store) allocateLocked() uint {
	id := s.nextID
	s.nextID++
	return id
}

// seed inserts one demonstration vessel and one maintenance record
// referencing it. Fixed values, runs once per store.
func (s *Store) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	vessel := domain.Vessel{
		ID:           s.allocateLocked(),
		Name:         "MV Ocean Explorer",
		IMONumber:    "IMO1234567",
		VesselType:   "Container Ship",
		FlagState:    "Panama",
		GrossTonnage: 50000.0,
		Length:       200.0,
		Beam:         32.0,
		YearBuilt:    2015,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	s.vessels[vessel.ID] = vessel

	maintenance := domain.MaintenanceRecord{
		ID:              s.allocateLocked(),
		VesselID:        vessel.ID,
		Title:           "Engine Oil Change",
		Description:     "Routine engine oil change for main engine",
		MaintenanceType: "Routine",
		ScheduledDate:   time.Now().Format(domain.DateLayout),
		Status:          "pending",
		Cost:            2500.0,
		CreatedBy:       1,
		CreatedAt:       time.Now(),
	}
	s.maintenance[maintenance.ID] = maintenance
}

// sortedIDs returns the map keys of any record map in ascending order,
// so list results come back in creation order.
func sortedIDs[T any](m map[uint]T) []uint {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
