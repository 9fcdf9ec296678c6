package models

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/beauroweb/backend/internal/config"
)

var DB *gorm.DB

func InitDB(cfg *config.DatabaseConfig) error {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	DB = db
	return nil
}

func AutoMigrate() error {
	return DB.AutoMigrate(
		&User{},
		&BureauProfile{},
		&IndividualProfile{},
		&VerificationRequest{},
		&ActivityLog{},
	)
}

func GetDB() *gorm.DB {
	return DB
}

// SeedDefaultData creates demo accounts, profiles and a pending review queue
// if the database is empty.
func SeedDefaultData() error {
	var userCount int64
	DB.Model(&User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		users := []User{
			{Name: "John Admin", Username: "admin", Email: "admin@beauroweb.com", Password: string(hash), Role: "ADMIN", Status: "active", Department: "Operations"},
			{Name: "Sarah Manager", Username: "sarah", Email: "sarah@beauroweb.com", Password: string(hash), Role: "MANAGER", Status: "active", Department: "Verification"},
			{Name: "Mike Reviewer", Username: "mike", Email: "mike@beauroweb.com", Password: string(hash), Role: "USER", Status: "inactive", Department: "Verification"},
		}
		for i := range users {
			if err := DB.Create(&users[i]).Error; err != nil {
				return err
			}
		}
	}

	var bureauCount int64
	DB.Model(&BureauProfile{}).Count(&bureauCount)
	if bureauCount == 0 {
		verified := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)
		bureaus := []BureauProfile{
			{
				ID:                 "bureau-001",
				CompanyName:        "Atlas Consulting Bureau",
				ContactPerson:      "Elena Petrova",
				Email:              "contact@atlasconsulting.example",
				Phone:              "+1-555-0101",
				BusinessLicense:    "BL-2023-00417",
				Address:            "12 Harbor Street",
				City:               "Rotterdam",
				Country:            "Netherlands",
				Description:        "Document verification and compliance consulting for maritime trade.",
				Services:           []string{"Document Review", "Compliance Audit", "Translation"},
				VerificationStatus: VerificationVerified,
				IsActive:           true,
				Rating:             4.6,
				TotalProjects:      42,
				CompletedProjects:  38,
				VerifiedAt:         &verified,
			},
			{
				ID:                 "bureau-002",
				CompanyName:        "Meridian Licensing Services",
				ContactPerson:      "Tomás Rivera",
				Email:              "info@meridianlicensing.example",
				Phone:              "+34-555-0188",
				BusinessLicense:    "BL-2024-00092",
				Address:            "Calle Mayor 8",
				City:               "Madrid",
				Country:            "Spain",
				Description:        "Business licensing and registration support.",
				Services:           []string{"Licensing", "Registration"},
				VerificationStatus: VerificationPending,
				IsActive:           true,
				Rating:             0,
			},
		}
		for i := range bureaus {
			if err := DB.Create(&bureaus[i]).Error; err != nil {
				return err
			}
		}
	}

	var individualCount int64
	DB.Model(&IndividualProfile{}).Count(&individualCount)
	if individualCount == 0 {
		individuals := []IndividualProfile{
			{
				ID:                 "individual-001",
				FirstName:          "Amara",
				LastName:           "Okafor",
				Email:              "amara.okafor@example.com",
				Phone:              "+44-555-0123",
				City:               "London",
				Country:            "United Kingdom",
				Occupation:         "Certified Translator",
				ExperienceYears:    7,
				Skills:             []string{"Legal Translation", "Notarization"},
				Languages:          []string{"English", "French", "Igbo"},
				HourlyRate:         65,
				AvailabilityStatus: "available",
				Description:        "Sworn translator specializing in legal and immigration documents.",
				VerificationStatus: VerificationPending,
				IsActive:           true,
			},
			{
				ID:                 "individual-002",
				FirstName:          "Lukas",
				LastName:           "Berger",
				Email:              "lukas.berger@example.com",
				Phone:              "+49-555-0177",
				City:               "Berlin",
				Country:            "Germany",
				Occupation:         "Compliance Auditor",
				ExperienceYears:    12,
				Skills:             []string{"Audit", "Risk Assessment"},
				Languages:          []string{"German", "English"},
				HourlyRate:         110,
				AvailabilityStatus: "busy",
				Description:        "Independent auditor for regulatory filings.",
				VerificationStatus: VerificationPending,
				IsActive:           true,
			},
		}
		for i := range individuals {
			if err := DB.Create(&individuals[i]).Error; err != nil {
				return err
			}
		}
	}

	var requestCount int64
	DB.Model(&VerificationRequest{}).Count(&requestCount)
	if requestCount == 0 {
		requests := []VerificationRequest{
			{
				ID:          "request-001",
				ProfileID:   "bureau-002",
				ProfileType: ProfileTypeBureau,
				ProfileName: "Meridian Licensing Services",
				Status:      RequestPending,
				SubmittedAt: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
			},
			{
				ID:          "request-002",
				ProfileID:   "individual-001",
				ProfileType: ProfileTypeIndividual,
				ProfileName: "Amara Okafor",
				Status:      RequestPending,
				SubmittedAt: time.Date(2024, 3, 2, 14, 15, 0, 0, time.UTC),
			},
			{
				ID:          "request-003",
				ProfileID:   "individual-002",
				ProfileType: ProfileTypeIndividual,
				ProfileName: "Lukas Berger",
				Status:      RequestPending,
				SubmittedAt: time.Date(2024, 3, 3, 9, 45, 0, 0, time.UTC),
			},
		}
		for i := range requests {
			if err := DB.Create(&requests[i]).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
