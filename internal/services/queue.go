package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/beauroweb/backend/internal/models"
	"github.com/beauroweb/backend/internal/registry"
)

var (
	ErrRequestNotFound = errors.New("verification request not found")
	ErrAlreadyDecided  = errors.New("verification request already decided")
)

// Decisions a reviewer can take on a pending request.
const (
	DecisionApprove = "approve"
	DecisionRevise  = "revise"
	DecisionReject  = "reject"
)

// QueueService manages the verification request queue.
type QueueService struct {
	db       *gorm.DB
	profiles *ProfileService
}

func NewQueueService(db *gorm.DB, profiles *ProfileService) *QueueService {
	return &QueueService{db: db, profiles: profiles}
}

type QueueListRequest struct {
	Page        int    `form:"page"`
	Size        int    `form:"size"`
	ProfileType string `form:"profileType"`
	Status      string `form:"status"`
}

func (s *QueueService) List(req *QueueListRequest) (Page[models.VerificationRequest], error) {
	page, size := normalizePaging(req.Page, req.Size)

	var requests []models.VerificationRequest
	var total int64

	query := s.db.Model(&models.VerificationRequest{})
	if req.ProfileType != "" {
		query = query.Where("profile_type = ?", req.ProfileType)
	}
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return Page[models.VerificationRequest]{}, err
	}
	err := query.Order("submitted_at ASC").Offset(page * size).Limit(size).Find(&requests).Error
	if err != nil {
		return Page[models.VerificationRequest]{}, err
	}
	return NewPage(requests, total, page, size), nil
}

func (s *QueueService) Get(id string) (*models.VerificationRequest, error) {
	var request models.VerificationRequest
	if err := s.db.First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

// decisionOutcome maps a reviewer decision to the resulting request and
// profile statuses.
func decisionOutcome(decision string) (requestStatus, profileStatus string, err error) {
	switch decision {
	case DecisionApprove:
		return models.RequestApproved, models.VerificationVerified, nil
	case DecisionRevise:
		return models.RequestRevision, models.VerificationPending, nil
	case DecisionReject:
		return models.RequestRejected, models.VerificationRejected, nil
	default:
		return "", "", registry.NewValidationError(registry.CodeInvalidValue, "unknown decision: "+decision)
	}
}

// Decide resolves a pending request and moves the underlying profile to the
// matching verification state.
func (s *QueueService) Decide(id, decision, decidedBy, notes string) (*models.VerificationRequest, error) {
	request, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if request.Status != models.RequestPending {
		return nil, ErrAlreadyDecided
	}

	requestStatus, profileStatus, err := decisionOutcome(decision)
	if err != nil {
		return nil, err
	}

	if err := s.profiles.SetVerificationStatus(request.ProfileType, request.ProfileID, profileStatus); err != nil {
		return nil, err
	}

	now := time.Now()
	request.Status = requestStatus
	request.DecidedAt = &now
	request.DecidedBy = decidedBy
	request.Notes = notes

	if err := s.db.Save(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}
