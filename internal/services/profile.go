package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/beauroweb/backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileService manages bureau and individual directory profiles.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

type BureauListRequest struct {
	Page               int    `form:"page"`
	Size               int    `form:"size"`
	Search             string `form:"search"`
	City               string `form:"city"`
	VerificationStatus string `form:"verificationStatus"`
	IsActive           *bool  `form:"isActive"`
}

func (s *ProfileService) ListBureaus(req *BureauListRequest) (Page[models.BureauProfile], error) {
	page, size := normalizePaging(req.Page, req.Size)

	var profiles []models.BureauProfile
	var total int64

	query := s.db.Model(&models.BureauProfile{})

	if req.Search != "" {
		like := "%" + strings.ToLower(req.Search) + "%"
		query = query.Where(
			"LOWER(company_name) LIKE ? OR LOWER(contact_person) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}
	if req.City != "" {
		query = query.Where("city = ?", req.City)
	}
	if req.VerificationStatus != "" {
		query = query.Where("verification_status = ?", req.VerificationStatus)
	}
	if req.IsActive != nil {
		query = query.Where("is_active = ?", *req.IsActive)
	}

	if err := query.Count(&total).Error; err != nil {
		return Page[models.BureauProfile]{}, err
	}
	err := query.Order("created_at DESC").Offset(page * size).Limit(size).Find(&profiles).Error
	if err != nil {
		return Page[models.BureauProfile]{}, err
	}
	return NewPage(profiles, total, page, size), nil
}

func (s *ProfileService) GetBureau(id string) (*models.BureauProfile, error) {
	var profile models.BureauProfile
	if err := s.db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

type IndividualListRequest struct {
	Page               int    `form:"page"`
	Size               int    `form:"size"`
	Search             string `form:"search"`
	City               string `form:"city"`
	Occupation         string `form:"occupation"`
	VerificationStatus string `form:"verificationStatus"`
	IsActive           *bool  `form:"isActive"`
}

func (s *ProfileService) ListIndividuals(req *IndividualListRequest) (Page[models.IndividualProfile], error) {
	page, size := normalizePaging(req.Page, req.Size)

	var profiles []models.IndividualProfile
	var total int64

	query := s.db.Model(&models.IndividualProfile{})

	if req.Search != "" {
		like := "%" + strings.ToLower(req.Search) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(occupation) LIKE ?",
			like, like, like, like,
		)
	}
	if req.City != "" {
		query = query.Where("city = ?", req.City)
	}
	if req.Occupation != "" {
		query = query.Where("LOWER(occupation) LIKE ?", "%"+strings.ToLower(req.Occupation)+"%")
	}
	if req.VerificationStatus != "" {
		query = query.Where("verification_status = ?", req.VerificationStatus)
	}
	if req.IsActive != nil {
		query = query.Where("is_active = ?", *req.IsActive)
	}

	if err := query.Count(&total).Error; err != nil {
		return Page[models.IndividualProfile]{}, err
	}
	err := query.Order("created_at DESC").Offset(page * size).Limit(size).Find(&profiles).Error
	if err != nil {
		return Page[models.IndividualProfile]{}, err
	}
	return NewPage(profiles, total, page, size), nil
}

func (s *ProfileService) GetIndividual(id string) (*models.IndividualProfile, error) {
	var profile models.IndividualProfile
	if err := s.db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// SetVerificationStatus updates a profile's verification state. VerifiedAt is
// stamped only when the status becomes verified.
func (s *ProfileService) SetVerificationStatus(profileType, profileID, status string) error {
	updates := map[string]any{
		"verification_status": status,
		"updated_at":          time.Now(),
	}
	if status == models.VerificationVerified {
		updates["verified_at"] = time.Now()
	}

	var result *gorm.DB
	switch profileType {
	case models.ProfileTypeBureau:
		result = s.db.Model(&models.BureauProfile{}).Where("id = ?", profileID).Updates(updates)
	case models.ProfileTypeIndividual:
		result = s.db.Model(&models.IndividualProfile{}).Where("id = ?", profileID).Updates(updates)
	default:
		return errors.New("unknown profile type: " + profileType)
	}

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
