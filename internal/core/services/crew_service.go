package services

import (
	"context"

	"vesselhub/internal/adapters/persistence/repositories"
	"vesselhub/internal/core/domain"
)

// CrewService handles the per-user records: profile, next of kin,
// medical info, electronic signature and certificates
type CrewService struct {
	profileRepo repositories.ProfileRepository
	certRepo    repositories.CertificateRepository
}

// NewCrewService creates a new crew service
func NewCrewService(profileRepo repositories.ProfileRepository, certRepo repositories.CertificateRepository) *CrewService {
	return &CrewService{
		profileRepo: profileRepo,
		certRepo:    certRepo,
	}
}

// GetProfile returns the caller's profile, or nil when none exists yet
func (s *CrewService) GetProfile(ctx context.Context, userID uint) (*domain.UserProfile, error) {
	profile, err := s.profileRepo.GetProfile(ctx, userID)
	if err == domain.ErrNotFound {
		return nil, nil
	}
	return profile, err
}

// UpdateProfile merges a partial update into the caller's profile
func (s *CrewService) UpdateProfile(ctx context.Context, userID uint, patch domain.ProfilePatch) (*domain.UserProfile, error) {
	return s.profileRepo.UpsertProfile(ctx, userID, patch)
}

// GetNextOfKin returns the caller's next of kin, or nil when none
func (s *CrewService) GetNextOfKin(ctx context.Context, userID uint) (*domain.NextOfKin, error) {
	kin, err := s.profileRepo.GetNextOfKin(ctx, userID)
	if err == domain.ErrNotFound {
		return nil, nil
	}
	return kin, err
}

// UpdateNextOfKin merges a partial update into the caller's next of kin
func (s *CrewService) UpdateNextOfKin(ctx context.Context, userID uint, patch domain.NextOfKinPatch) (*domain.NextOfKin, error) {
	return s.profileRepo.UpsertNextOfKin(ctx, userID, patch)
}

// GetMedicalInfo returns the caller's medical record, or nil when none
func (s *CrewService) GetMedicalInfo(ctx context.Context, userID uint) (*domain.MedicalInfo, error) {
	medical, err := s.profileRepo.GetMedicalInfo(ctx, userID)
	if err == domain.ErrNotFound {
		return nil, nil
	}
	return medical, err
}

// UpdateMedicalInfo merges a partial update into the caller's medical
// record
func (s *CrewService) UpdateMedicalInfo(ctx context.Context, userID uint, patch domain.MedicalInfoPatch) (*domain.MedicalInfo, error) {
	return s.profileRepo.UpsertMedicalInfo(ctx, userID, patch)
}

// GetSignature returns the caller's active signature, or nil when none
func (s *CrewService) GetSignature(ctx context.Context, userID uint) (*domain.ElectronicSignature, error) {
	sig, err := s.profileRepo.GetSignature(ctx, userID)
	if err == domain.ErrNotFound {
		return nil, nil
	}
	return sig, err
}

// UpdateSignature merges a partial update into the caller's active
// signature
func (s *CrewService) UpdateSignature(ctx context.Context, userID uint, patch domain.SignaturePatch) (*domain.ElectronicSignature, error) {
	return s.profileRepo.UpsertSignature(ctx, userID, patch)
}

// ListCertificates lists the caller's certificates
func (s *CrewService) ListCertificates(ctx context.Context, userID uint) ([]domain.Certificate, error) {
	return s.certRepo.ListByUser(ctx, userID)
}

// CertificateInput represents certificate creation input. The validity
// window is taken as given; expiry before valid_from is accepted the
// way it always has been.
type CertificateInput struct {
	CertificateType domain.CertificateType `json:"certificate_type" validate:"required"`
	ValidFrom       string                 `json:"valid_from" validate:"required,datetime=2006-01-02"`
	ExpiryDate      string                 `json:"expiry_date" validate:"required,datetime=2006-01-02"`
	IssuedBy        string                 `json:"issued_by" validate:"required"`
}

// CreateCertificate records a new certificate for the caller
func (s *CrewService) CreateCertificate(ctx context.Context, userID uint, input *CertificateInput) (*domain.Certificate, error) {
	if !input.CertificateType.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	return s.certRepo.Create(ctx, domain.Certificate{
		UserID:          userID,
		CertificateType: input.CertificateType,
		ValidFrom:       input.ValidFrom,
		ExpiryDate:      input.ExpiryDate,
		IssuedBy:        input.IssuedBy,
	})
}

// AttachCertificateFile stores the uploaded file location on the
// caller's certificate. Certificates belong to their owner only.
func (s *CrewService) AttachCertificateFile(ctx context.Context, userID, certID uint, path string) (*domain.Certificate, error) {
	cert, err := s.certRepo.GetByID(ctx, certID)
	if err != nil {
		return nil, err
	}
	if cert.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return s.certRepo.SetFilePath(ctx, certID, path)
}
