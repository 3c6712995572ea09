package memory

import (
	"context"
	"time"

	"vesselhub/internal/core/domain"
)

// ProfileStore is the per-user singleton view over the shared store:
// profile, next of kin, medical info and electronic signature. Each
// record is found by user_id, merged on update, and created with a
// fresh id on first write. Once assigned, the id never changes for
// that user.
type ProfileStore struct {
	s *Store
}

// Profiles returns the profile repository backed by this store
func (s *Store) Profiles() *ProfileStore {
	return &ProfileStore{s: s}
}

// GetProfile returns the profile for a user, or ErrNotFound
func (r *ProfileStore) GetProfile(ctx context.Context, userID uint) (*domain.UserProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p := r.s.findProfileLocked(userID)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// UpsertProfile merges the provided fields into the user's profile,
// creating it first if absent
func (r *ProfileStore) UpsertProfile(ctx context.Context, userID uint, patch domain.ProfilePatch) (*domain.UserProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing := r.s.findProfileLocked(userID)
	if existing == nil {
		existing = &domain.UserProfile{ID: r.s.allocateLocked(), UserID: userID}
	}

	mergeProfile(existing, patch)
	r.s.profiles[existing.ID] = *existing

	merged := *existing
	return &merged, nil
}

func (s *Store) findProfileLocked(userID uint) *domain.UserProfile {
	for id := range s.profiles {
		if s.profiles[id].UserID == userID {
			p := s.profiles[id]
			return &p
		}
	}
	return nil
}

func mergeProfile(p *domain.UserProfile, patch domain.ProfilePatch) {
	if patch.FirstName != nil {
		p.FirstName = *patch.FirstName
	}
	if patch.Surname != nil {
		p.Surname = *patch.Surname
	}
	if patch.DateOfBirth != nil {
		p.DateOfBirth = *patch.DateOfBirth
	}
	if patch.BuildingHouse != nil {
		p.BuildingHouse = *patch.BuildingHouse
	}
	if patch.StreetAddress != nil {
		p.StreetAddress = *patch.StreetAddress
	}
	if patch.CityTown != nil {
		p.CityTown = *patch.CityTown
	}
	if patch.CountyState != nil {
		p.CountyState = *patch.CountyState
	}
	if patch.PostalZip != nil {
		p.PostalZip = *patch.PostalZip
	}
	if patch.Country != nil {
		p.Country = *patch.Country
	}
	if patch.Telephone != nil {
		p.Telephone = *patch.Telephone
	}
	if patch.Nationality != nil {
		p.Nationality = *patch.Nationality
	}
}

// GetNextOfKin returns the next of kin record for a user, or ErrNotFound
func (r *ProfileStore) GetNextOfKin(ctx context.Context, userID uint) (*domain.NextOfKin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	k := r.s.findNextOfKinLocked(userID)
	if k == nil {
		return nil, domain.ErrNotFound
	}
	return k, nil
}

// UpsertNextOfKin merges the provided fields into the user's next of
// kin record, creating it first if absent
func (r *ProfileStore) UpsertNextOfKin(ctx context.Context, userID uint, patch domain.NextOfKinPatch) (*domain.NextOfKin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing := r.s.findNextOfKinLocked(userID)
	if existing == nil {
		existing = &domain.NextOfKin{ID: r.s.allocateLocked(), UserID: userID}
	}

	mergeNextOfKin(existing, patch)
	r.s.nextOfKin[existing.ID] = *existing

	merged := *existing
	return &merged, nil
}

func (s *Store) findNextOfKinLocked(userID uint) *domain.NextOfKin {
	for id := range s.nextOfKin {
		if s.nextOfKin[id].UserID == userID {
			k := s.nextOfKin[id]
			return &k
		}
	}
	return nil
}

func mergeNextOfKin(k *domain.NextOfKin, patch domain.NextOfKinPatch) {
	if patch.FullName != nil {
		k.FullName = *patch.FullName
	}
	if patch.Relationship != nil {
		k.Relationship = *patch.Relationship
	}
	if patch.BuildingHouse != nil {
		k.BuildingHouse = *patch.BuildingHouse
	}
	if patch.StreetAddress != nil {
		k.StreetAddress = *patch.StreetAddress
	}
	if patch.CityTown != nil {
		k.CityTown = *patch.CityTown
	}
	if patch.CountyState != nil {
		k.CountyState = *patch.CountyState
	}
	if patch.PostalZip != nil {
		k.PostalZip = *patch.PostalZip
	}
	if patch.Country != nil {
		k.Country = *patch.Country
	}
	if patch.Telephone != nil {
		k.Telephone = *patch.Telephone
	}
}

// GetMedicalInfo returns the medical record for a user, or ErrNotFound
func (r *ProfileStore) GetMedicalInfo(ctx context.Context, userID uint) (*domain.MedicalInfo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m := r.s.findMedicalInfoLocked(userID)
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

// UpsertMedicalInfo merges the provided fields into the user's medical
// record, creating it first if absent
func (r *ProfileStore) UpsertMedicalInfo(ctx context.Context, userID uint, patch domain.MedicalInfoPatch) (*domain.MedicalInfo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing := r.s.findMedicalInfoLocked(userID)
	if existing == nil {
		existing = &domain.MedicalInfo{ID: r.s.allocateLocked(), UserID: userID}
	}

	mergeMedicalInfo(existing, patch)
	r.s.medical[existing.ID] = *existing

	merged := *existing
	return &merged, nil
}

func (s *Store) findMedicalInfoLocked(userID uint) *domain.MedicalInfo {
	for id := range s.medical {
		if s.medical[id].UserID == userID {
			m := s.medical[id]
			return &m
		}
	}
	return nil
}

func mergeMedicalInfo(m *domain.MedicalInfo, patch domain.MedicalInfoPatch) {
	if patch.SurgeryName != nil {
		m.SurgeryName = *patch.SurgeryName
	}
	if patch.BuildingHouse != nil {
		m.BuildingHouse = *patch.BuildingHouse
	}
	if patch.StreetAddress != nil {
		m.StreetAddress = *patch.StreetAddress
	}
	if patch.CityTown != nil {
		m.CityTown = *patch.CityTown
	}
	if patch.CountyState != nil {
		m.CountyState = *patch.CountyState
	}
	if patch.PostalZip != nil {
		m.PostalZip = *patch.PostalZip
	}
	if patch.Country != nil {
		m.Country = *patch.Country
	}
	if patch.DoctorName != nil {
		m.DoctorName = *patch.DoctorName
	}
	if patch.DoctorPhone != nil {
		m.DoctorPhone = *patch.DoctorPhone
	}
	if patch.ChronicIllnesses != nil {
		m.ChronicIllnesses = *patch.ChronicIllnesses
	}
	if patch.TakingMedication != nil {
		m.TakingMedication = *patch.TakingMedication
	}
	if patch.RecentSurgery != nil {
		m.RecentSurgery = *patch.RecentSurgery
	}
	if patch.Allergies != nil {
		m.Allergies = *patch.Allergies
	}
}

// GetSignature returns the user's active electronic signature, or
// ErrNotFound. Inactive signatures are never surfaced.
func (r *ProfileStore) GetSignature(ctx context.Context, userID uint) (*domain.ElectronicSignature, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sig := r.s.findActiveSignatureLocked(userID)
	if sig == nil {
		return nil, domain.ErrNotFound
	}
	return sig, nil
}

// UpsertSignature merges the provided fields into the user's active
// signature. The first write creates the record with a fresh id; later
// writes update that record in place rather than creating a new one.
func (r *ProfileStore) UpsertSignature(ctx context.Context, userID uint, patch domain.SignaturePatch) (*domain.ElectronicSignature, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing := r.s.findActiveSignatureLocked(userID)
	if existing == nil {
		existing = &domain.ElectronicSignature{
			ID:            r.s.allocateLocked(),
			UserID:        userID,
			SignatureType: "drawn",
			IsActive:      true,
			CreatedAt:     time.Now(),
		}
	}

	if patch.SignatureData != nil {
		existing.SignatureData = *patch.SignatureData
	}
	if patch.SignatureType != nil {
		existing.SignatureType = *patch.SignatureType
	}
	if patch.IsActive != nil {
		existing.IsActive = *patch.IsActive
	}
	r.s.signatures[existing.ID] = *existing

	merged := *existing
	return &merged, nil
}

// findActiveSignatureLocked scans for the user's active signature and
// returns a copy. Caller holds the lock.
func (s *Store) findActiveSignatureLocked(userID uint) *domain.ElectronicSignature {
	for id := range s.signatures {
		if s.signatures[id].UserID == userID && s.signatures[id].IsActive {
			sig := s.signatures[id]
			return &sig
		}
	}
	return nil
}
