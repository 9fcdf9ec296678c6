package main

import (
	"github.com/beauroweb/backend/internal/config"
	"github.com/beauroweb/backend/internal/models"
	"github.com/beauroweb/backend/internal/registry/settings"
	"github.com/beauroweb/backend/internal/registry/workflow"
	"github.com/beauroweb/backend/internal/services"
	"github.com/beauroweb/backend/pkg/logger"
)

// registryActor is recorded as createdBy/updatedBy on registry mutations
// until real authentication lands.
const registryActor = "admin"

// appServices holds all initialized services and registries needed by the application.
type appServices struct {
	settingsRegistry *settings.Registry
	workflowRegistry *workflow.Registry
	userService      *services.UserService
	profileService   *services.ProfileService
	queueService     *services.QueueService
	dashboardService *services.DashboardService
	activityLog      *services.ActivityLogService
}

// bootstrap initializes all application dependencies: database, registries,
// services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	db := models.GetDB()

	userService := services.NewUserService(db)
	profileService := services.NewProfileService(db)
	queueService := services.NewQueueService(db, profileService)

	settingsRegistry := settings.NewRegistry(registryActor)
	workflowRegistry := workflow.NewRegistry(registryActor, userService)

	if cfg.Seed.Enabled {
		if err := models.SeedDefaultData(); err != nil {
			logger.Warn().Err(err).Msg("Failed to seed default data")
		}
		settingsRegistry.Seed()
		workflowRegistry.Seed()
	}

	dashboardService := services.NewDashboardService(db, settingsRegistry, workflowRegistry)

	activityLog := services.NewActivityLogService(db, settingsRegistry)
	if err := activityLog.StartCleanupScheduler(); err != nil {
		logger.Warn().Err(err).Msg("Failed to start activity log cleanup scheduler")
	}

	return &appServices{
		settingsRegistry: settingsRegistry,
		workflowRegistry: workflowRegistry,
		userService:      userService,
		profileService:   profileService,
		queueService:     queueService,
		dashboardService: dashboardService,
		activityLog:      activityLog,
	}
}

// shutdown gracefully stops all background services.
func (s *appServices) shutdown() {
	s.activityLog.StopCleanupScheduler()
	logger.Info().Msg("All schedulers stopped")
}
