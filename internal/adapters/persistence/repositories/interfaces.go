package repositories

import (
	"context"

	"vesselhub/internal/core/domain"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ProfileRepository defines access to the per-user singleton records:
// profile, next of kin, medical info and electronic signature. Upserts
// merge partial data into the existing record, or create one with a
// fresh id on first write; the id is stable afterwards.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID uint) (*domain.UserProfile, error)
	UpsertProfile(ctx context.Context, userID uint, patch domain.ProfilePatch) (*domain.UserProfile, error)

	GetNextOfKin(ctx context.Context, userID uint) (*domain.NextOfKin, error)
	UpsertNextOfKin(ctx context.Context, userID uint, patch domain.NextOfKinPatch) (*domain.NextOfKin, error)

	GetMedicalInfo(ctx context.Context, userID uint) (*domain.MedicalInfo, error)
	UpsertMedicalInfo(ctx context.Context, userID uint, patch domain.MedicalInfoPatch) (*domain.MedicalInfo, error)

	GetSignature(ctx context.Context, userID uint) (*domain.ElectronicSignature, error)
	UpsertSignature(ctx context.Context, userID uint, patch domain.SignaturePatch) (*domain.ElectronicSignature, error)
}

// CertificateRepository defines certificate repository interface
type CertificateRepository interface {
	Create(ctx context.Context, cert domain.Certificate) (*domain.Certificate, error)
	GetByID(ctx context.Context, id uint) (*domain.Certificate, error)
	ListByUser(ctx context.Context, userID uint) ([]domain.Certificate, error)
	ListAll(ctx context.Context) ([]domain.Certificate, error)
	SetFilePath(ctx context.Context, id uint, path string) (*domain.Certificate, error)
}

// VesselRepository defines vessel repository interface
type VesselRepository interface {
	Create(ctx context.Context, vessel domain.Vessel) (*domain.Vessel, error)
	GetByID(ctx context.Context, id uint) (*domain.Vessel, error)
	List(ctx context.Context) ([]domain.Vessel, error)
}

// AssignmentRepository defines crew assignment repository interface.
// A zero userID or vesselID filter means "no filter".
type AssignmentRepository interface {
	Create(ctx context.Context, a domain.CrewAssignment) (*domain.CrewAssignment, error)
	List(ctx context.Context, userID, vesselID uint) ([]domain.CrewAssignment, error)
	GetActiveByUser(ctx context.Context, userID uint) (*domain.CrewAssignment, error)
	Update(ctx context.Context, id uint, patch domain.AssignmentPatch) (*domain.CrewAssignment, error)
}

// MaintenanceRepository defines maintenance record repository interface
type MaintenanceRepository interface {
	Create(ctx context.Context, rec domain.MaintenanceRecord) (*domain.MaintenanceRecord, error)
	GetByID(ctx context.Context, id uint) (*domain.MaintenanceRecord, error)
	List(ctx context.Context, vesselID uint) ([]domain.MaintenanceRecord, error)
	Update(ctx context.Context, id uint, patch domain.MaintenancePatch) (*domain.MaintenanceRecord, error)
}

// SafetyRepository defines safety record repository interface
type SafetyRepository interface {
	Create(ctx context.Context, rec domain.SafetyRecord) (*domain.SafetyRecord, error)
	List(ctx context.Context, vesselID uint) ([]domain.SafetyRecord, error)
}

// QHSERepository defines QHSE audit record repository interface
type QHSERepository interface {
	Create(ctx context.Context, rec domain.QHSERecord) (*domain.QHSERecord, error)
	List(ctx context.Context, vesselID uint) ([]domain.QHSERecord, error)
}
