package services

import (
	"context"

	"vesselhub/internal/adapters/persistence/repositories"
	"vesselhub/internal/core/domain"
)

// DashboardService aggregates fleet figures for the landing page
type DashboardService struct {
	vesselRepo      repositories.VesselRepository
	maintenanceRepo repositories.MaintenanceRepository
	safetyRepo      repositories.SafetyRepository
	assignmentRepo  repositories.AssignmentRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	vesselRepo repositories.VesselRepository,
	maintenanceRepo repositories.MaintenanceRepository,
	safetyRepo repositories.SafetyRepository,
	assignmentRepo repositories.AssignmentRepository,
) *DashboardService {
	return &DashboardService{
		vesselRepo:      vesselRepo,
		maintenanceRepo: maintenanceRepo,
		safetyRepo:      safetyRepo,
		assignmentRepo:  assignmentRepo,
	}
}

// Dashboard is the aggregated fleet overview
type Dashboard struct {
	TotalVessels       int                        `json:"total_vessels"`
	ActiveVessels      int                        `json:"active_vessels"`
	PendingMaintenance int                        `json:"pending_maintenance"`
	OpenSafetyIssues   int                        `json:"open_safety_issues"`
	RecentVessels      []domain.Vessel            `json:"recent_vessels"`
	RecentMaintenance  []domain.MaintenanceRecord `json:"recent_maintenance"`
	RecentSafety       []domain.SafetyRecord      `json:"recent_safety"`
	UserAssignment     *domain.CrewAssignment     `json:"user_assignment"`
}

const recentLimit = 5

// Build assembles the dashboard for a caller. Crew members also see
// their own current assignment.
func (s *DashboardService) Build(ctx context.Context, caller *domain.User) (*Dashboard, error) {
	vessels, err := s.vesselRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	maintenance, err := s.maintenanceRepo.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	safety, err := s.safetyRepo.List(ctx, 0)
	if err != nil {
		return nil, err
	}

	dash := &Dashboard{
		TotalVessels:      len(vessels),
		RecentVessels:     head(vessels, recentLimit),
		RecentMaintenance: head(maintenance, recentLimit),
		RecentSafety:      head(safety, recentLimit),
	}
	for _, v := range vessels {
		if v.IsActive {
			dash.ActiveVessels++
		}
	}
	for _, m := range maintenance {
		if m.Status == "pending" {
			dash.PendingMaintenance++
		}
	}
	for _, rec := range safety {
		if rec.Status == "open" {
			dash.OpenSafetyIssues++
		}
	}

	if caller.Role == domain.RoleCrew {
		assignment, err := s.assignmentRepo.GetActiveByUser(ctx, caller.ID)
		if err == nil {
			dash.UserAssignment = assignment
		}
	}

	return dash, nil
}

func head[T any](items []T, n int) []T {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}
