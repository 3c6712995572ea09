package memory

import (
	"context"
	"time"

	"vesselhub/internal/core/domain"
)

// CertificateStore is the certificate view over the shared store
type CertificateStore struct {
	s *Store
}

// Certificates returns the certificate repository backed by this store
func (s *Store) Certificates() *CertificateStore {
	return &CertificateStore{s: s}
}

// Create inserts a new certificate record
func (r *CertificateStore) Create(ctx context.Context, cert domain.Certificate) (*domain.Certificate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cert.ID = r.s.allocateLocked()
	cert.CreatedAt = time.Now()
	r.s.certificates[cert.ID] = cert

	stored := cert
	return &stored, nil
}

// GetByID gets a certificate by ID
func (r *CertificateStore) GetByID(ctx context.Context, id uint) (*domain.Certificate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cert, ok := r.s.certificates[id]
	if !ok {
		return nil, domain.ErrCertificateNotFound
	}
	return &cert, nil
}

// ListByUser lists a user's certificates in creation order
func (r *CertificateStore) ListByUser(ctx context.Context, userID uint) ([]domain.Certificate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	certs := make([]domain.Certificate, 0)
	for _, id := range sortedIDs(r.s.certificates) {
		if r.s.certificates[id].UserID == userID {
			certs = append(certs, r.s.certificates[id])
		}
	}
	return certs, nil
}

// ListAll lists every certificate in creation order
func (r *CertificateStore) ListAll(ctx context.Context) ([]domain.Certificate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	certs := make([]domain.Certificate, 0, len(r.s.certificates))
	for _, id := range sortedIDs(r.s.certificates) {
		certs = append(certs, r.s.certificates[id])
	}
	return certs, nil
}

// SetFilePath records the stored file location for a certificate upload
func (r *CertificateStore) SetFilePath(ctx context.Context, id uint, path string) (*domain.Certificate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cert, ok := r.s.certificates[id]
	if !ok {
		return nil, domain.ErrCertificateNotFound
	}
	cert.FilePath = path
	r.s.certificates[id] = cert
	return &cert, nil
}
