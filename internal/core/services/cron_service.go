package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"vesselhub/internal/adapters/persistence/repositories"
	"vesselhub/internal/core/domain"
)

// certExpiryWarning is how far ahead the daily sweep looks for
// certificates about to lapse.
const certExpiryWarning = 30 * 24 * time.Hour

// CronService runs the daily crewing sweep: assignments whose end date
// has passed are deactivated, and certificates close to expiry are
// flagged in the log for the crewing office.
type CronService struct {
	cron           *cron.Cron
	assignmentRepo repositories.AssignmentRepository
	certRepo       repositories.CertificateRepository
}

// NewCronService creates a new cron service
func NewCronService(assignmentRepo repositories.AssignmentRepository, certRepo repositories.CertificateRepository) *CronService {
	return &CronService{
		cron:           cron.New(),
		assignmentRepo: assignmentRepo,
		certRepo:       certRepo,
	}
}

// Start schedules the daily sweep at 08:30
func (s *CronService) Start() {
	s.cron.AddFunc("30 8 * * *", s.RunDailySweep)
	s.cron.Start()
	log.Println("CronService started (daily sweep at 08:30)")
}

// Stop stops the scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("CronService stopped")
}

// RunDailySweep executes one sweep pass immediately
func (s *CronService) RunDailySweep() {
	ctx := context.Background()
	s.sweepAssignments(ctx)
	s.sweepCertificates(ctx)
}

// sweepAssignments deactivates active assignments whose end date has
// passed
func (s *CronService) sweepAssignments(ctx context.Context) {
	assignments, err := s.assignmentRepo.List(ctx, 0, 0)
	if err != nil {
		log.Printf("Assignment sweep failed: %v", err)
		return
	}

	today := time.Now().Format(domain.DateLayout)
	ended := 0
	for _, a := range assignments {
		if !a.IsActive || a.EndDate == "" || a.EndDate >= today {
			continue
		}
		inactive := false
		if _, err := s.assignmentRepo.Update(ctx, a.ID, domain.AssignmentPatch{IsActive: &inactive}); err != nil {
			log.Printf("Failed to deactivate assignment %d: %v", a.ID, err)
			continue
		}
		ended++
	}
	if ended > 0 {
		log.Printf("Assignment sweep: %d assignment(s) past end date deactivated", ended)
	}
}

// sweepCertificates logs certificates expiring within the warning
// window
func (s *CronService) sweepCertificates(ctx context.Context) {
	certs, err := s.certRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Certificate sweep failed: %v", err)
		return
	}

	today := time.Now().Format(domain.DateLayout)
	horizon := time.Now().Add(certExpiryWarning).Format(domain.DateLayout)
	for _, cert := range certs {
		if cert.ExpiryDate >= today && cert.ExpiryDate <= horizon {
			log.Printf("Certificate %d (%s, user=%d) expires %s", cert.ID, cert.CertificateType, cert.UserID, cert.ExpiryDate)
		}
	}
}
