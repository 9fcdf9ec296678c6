package services

import (
	"gorm.io/gorm"

	"github.com/beauroweb/backend/internal/models"
	"github.com/beauroweb/backend/internal/registry/settings"
	"github.com/beauroweb/backend/internal/registry/workflow"
)

// DashboardService aggregates counters across the database and the in-memory
// registries.
type DashboardService struct {
	db        *gorm.DB
	settings  *settings.Registry
	workflows *workflow.Registry
}

func NewDashboardService(db *gorm.DB, settingsRegistry *settings.Registry, workflowRegistry *workflow.Registry) *DashboardService {
	return &DashboardService{db: db, settings: settingsRegistry, workflows: workflowRegistry}
}

type ProfileStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Verified int64 `json:"verified"`
	Rejected int64 `json:"rejected"`
}

type RegistryStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

type DashboardStats struct {
	TotalUsers      int64         `json:"totalUsers"`
	ActiveUsers     int64         `json:"activeUsers"`
	Bureaus         ProfileStats  `json:"bureaus"`
	Individuals     ProfileStats  `json:"individuals"`
	PendingRequests int64         `json:"pendingRequests"`
	Settings        RegistryStats `json:"settings"`
	Workflows       RegistryStats `json:"workflows"`
}

func (s *DashboardService) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.User{}).Where("status = ?", "active").Count(&stats.ActiveUsers).Error; err != nil {
		return nil, err
	}

	bureaus, err := s.profileStats(&models.BureauProfile{})
	if err != nil {
		return nil, err
	}
	stats.Bureaus = bureaus

	individuals, err := s.profileStats(&models.IndividualProfile{})
	if err != nil {
		return nil, err
	}
	stats.Individuals = individuals

	err = s.db.Model(&models.VerificationRequest{}).
		Where("status = ?", models.RequestPending).
		Count(&stats.PendingRequests).Error
	if err != nil {
		return nil, err
	}

	for _, setting := range s.settings.List() {
		stats.Settings.Total++
		if setting.IsActive {
			stats.Settings.Active++
		}
	}
	for _, wf := range s.workflows.List(workflow.Filters{}) {
		stats.Workflows.Total++
		if wf.IsActive {
			stats.Workflows.Active++
		}
	}

	return stats, nil
}

func (s *DashboardService) profileStats(model any) (ProfileStats, error) {
	var stats ProfileStats
	counts := []struct {
		status string
		dest   *int64
	}{
		{models.VerificationPending, &stats.Pending},
		{models.VerificationVerified, &stats.Verified},
		{models.VerificationRejected, &stats.Rejected},
	}

	if err := s.db.Model(model).Count(&stats.Total).Error; err != nil {
		return ProfileStats{}, err
	}
	for _, c := range counts {
		if err := s.db.Model(model).Where("verification_status = ?", c.status).Count(c.dest).Error; err != nil {
			return ProfileStats{}, err
		}
	}
	return stats, nil
}
