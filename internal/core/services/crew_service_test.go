package services_test

import (
	"context"
	"testing"

	"vesselhub/internal/adapters/persistence/memory"
	"vesselhub/internal/core/domain"
	"vesselhub/internal/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCrewService(store *memory.Store) *services.CrewService {
	return services.NewCrewService(store.Profiles(), store.Certificates())
}

func TestProfileLifecycle(t *testing.T) {
	store := memory.NewStore()
	svc := newCrewService(store)
	ctx := context.Background()

	// Missing profile reads as nil, not an error
	profile, err := svc.GetProfile(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, profile)

	name := "Erik"
	nationality := "Norwegian"
	profile, err = svc.UpdateProfile(ctx, 3, domain.ProfilePatch{FirstName: &name, Nationality: &nationality})
	require.NoError(t, err)
	assert.Equal(t, "Erik", profile.FirstName)

	// Partial update leaves other fields alone
	dob := "1990-04-12"
	profile, err = svc.UpdateProfile(ctx, 3, domain.ProfilePatch{DateOfBirth: &dob})
	require.NoError(t, err)
	assert.Equal(t, "Erik", profile.FirstName)
	assert.Equal(t, "Norwegian", profile.Nationality)
	assert.Equal(t, "1990-04-12", profile.DateOfBirth)

	got, err := svc.GetProfile(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, got.ID)
}

func TestCertificates(t *testing.T) {
	store := memory.NewStore()
	svc := newCrewService(store)
	ctx := context.Background()

	// Unknown type is rejected
	_, err := svc.CreateCertificate(ctx, 3, &services.CertificateInput{
		CertificateType: "Diving License",
		ValidFrom:       "2024-01-01",
		ExpiryDate:      "2029-01-01",
		IssuedBy:        "MCA",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	cert, err := svc.CreateCertificate(ctx, 3, &services.CertificateInput{
		CertificateType: domain.CertSTCW,
		ValidFrom:       "2024-01-01",
		ExpiryDate:      "2029-01-01",
		IssuedBy:        "MCA",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), cert.UserID)

	// An expiry before the validity start is stored as given
	inverted, err := svc.CreateCertificate(ctx, 3, &services.CertificateInput{
		CertificateType: domain.CertMedical,
		ValidFrom:       "2026-01-01",
		ExpiryDate:      "2024-01-01",
		IssuedBy:        "Maritime Doctor",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", inverted.ExpiryDate)

	certs, err := svc.ListCertificates(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, certs, 2)
}

func TestAttachCertificateFileOwnership(t *testing.T) {
	store := memory.NewStore()
	svc := newCrewService(store)
	ctx := context.Background()

	cert, err := svc.CreateCertificate(ctx, 3, &services.CertificateInput{
		CertificateType: domain.CertGMDSS,
		ValidFrom:       "2023-01-01",
		ExpiryDate:      "2028-01-01",
		IssuedBy:        "MCA",
	})
	require.NoError(t, err)

	// Another user cannot attach to it
	_, err = svc.AttachCertificateFile(ctx, 4, cert.ID, "uploads/certificates/x.pdf")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// The owner can
	updated, err := svc.AttachCertificateFile(ctx, 3, cert.ID, "uploads/certificates/x.pdf")
	require.NoError(t, err)
	assert.Equal(t, "uploads/certificates/x.pdf", updated.FilePath)

	_, err = svc.AttachCertificateFile(ctx, 3, 9999, "uploads/certificates/y.pdf")
	assert.ErrorIs(t, err, domain.ErrCertificateNotFound)
}

func TestSignatureAndMedical(t *testing.T) {
	store := memory.NewStore()
	svc := newCrewService(store)
	ctx := context.Background()

	sig, err := svc.GetSignature(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, sig)

	data := "payload"
	sig, err = svc.UpdateSignature(ctx, 5, domain.SignaturePatch{SignatureData: &data})
	require.NoError(t, err)
	assert.True(t, sig.IsActive)

	medication := true
	med, err := svc.UpdateMedicalInfo(ctx, 5, domain.MedicalInfoPatch{TakingMedication: &medication})
	require.NoError(t, err)
	assert.True(t, med.TakingMedication)
}
