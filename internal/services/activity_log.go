package services

import (
	"encoding/json"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/beauroweb/backend/internal/models"
	"github.com/beauroweb/backend/internal/registry/settings"
	"github.com/beauroweb/backend/pkg/logger"
)

const defaultLogRetentionDays = 30

// ActivityLogService records and queries console activity. Retention is
// driven by the LOG_RETENTION_DAYS global setting.
type ActivityLogService struct {
	db       *gorm.DB
	settings *settings.Registry
	cron     *cron.Cron
}

func NewActivityLogService(db *gorm.DB, settingsRegistry *settings.Registry) *ActivityLogService {
	return &ActivityLogService{db: db, settings: settingsRegistry}
}

func (s *ActivityLogService) Record(level, module, action, message string, userID *uint, ip, userAgent string, extra any) {
	var extraStr string
	if extra != nil {
		if b, err := json.Marshal(extra); err == nil {
			extraStr = string(b)
		}
	}

	entry := &models.ActivityLog{
		Level:     level,
		Module:    module,
		Action:    action,
		Message:   message,
		UserID:    userID,
		IP:        ip,
		UserAgent: userAgent,
		Extra:     extraStr,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(entry).Error; err != nil {
		logger.Warn().Err(err).Str("module", module).Msg("failed to record activity")
	}
}

type ActivityLogListRequest struct {
	Page      int    `form:"page"`
	Size      int    `form:"size"`
	Level     string `form:"level"`
	Module    string `form:"module"`
	Action    string `form:"action"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Search    string `form:"search"`
}

func (s *ActivityLogService) List(req *ActivityLogListRequest) (Page[models.ActivityLog], error) {
	page, size := normalizePaging(req.Page, req.Size)

	var logs []models.ActivityLog
	var total int64

	query := s.db.Model(&models.ActivityLog{})

	if req.Level != "" {
		query = query.Where("level = ?", req.Level)
	}
	if req.Module != "" {
		query = query.Where("module = ?", req.Module)
	}
	if req.Action != "" {
		query = query.Where("action LIKE ?", "%"+req.Action+"%")
	}
	if req.StartDate != "" {
		query = query.Where("created_at >= ?", req.StartDate)
	}
	if req.EndDate != "" {
		query = query.Where("created_at <= ?", req.EndDate+" 23:59:59")
	}
	if req.Search != "" {
		query = query.Where("message LIKE ?", "%"+req.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return Page[models.ActivityLog]{}, err
	}
	err := query.Order("created_at DESC").Offset(page * size).Limit(size).Find(&logs).Error
	if err != nil {
		return Page[models.ActivityLog]{}, err
	}
	return NewPage(logs, total, page, size), nil
}

func (s *ActivityLogService) GetModules() ([]string, error) {
	var modules []string
	if err := s.db.Model(&models.ActivityLog{}).Distinct("module").Pluck("module", &modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

// RetentionDays reads LOG_RETENTION_DAYS from the settings registry.
func (s *ActivityLogService) RetentionDays() int {
	if s.settings == nil {
		return defaultLogRetentionDays
	}
	setting, ok := s.settings.FindByName("LOG_RETENTION_DAYS")
	if !ok || setting.Value.Type() != settings.TypeNumber {
		return defaultLogRetentionDays
	}
	days := int(setting.Value.Num())
	if days <= 0 {
		return defaultLogRetentionDays
	}
	return days
}

// CleanupOld deletes entries older than the given number of days and returns
// the number of deleted rows.
func (s *ActivityLogService) CleanupOld(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result := s.db.Where("created_at < ?", cutoff).Delete(&models.ActivityLog{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (s *ActivityLogService) runCleanup() {
	days := s.RetentionDays()
	deleted, err := s.CleanupOld(days)
	if err != nil {
		logger.Error().Err(err).Msg("activity log cleanup failed")
		return
	}
	if deleted > 0 {
		logger.Info().Int64("deleted", deleted).Int("retention_days", days).Msg("activity log cleanup done")
	}
}

// StartCleanupScheduler runs cleanup once immediately, then every night at 03:00.
func (s *ActivityLogService) StartCleanupScheduler() error {
	s.runCleanup()

	c := cron.New()
	if _, err := c.AddFunc("0 3 * * *", s.runCleanup); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	return nil
}

func (s *ActivityLogService) StopCleanupScheduler() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
