package models

import "time"

// Profile types attached to verification requests.
const (
	ProfileTypeBureau     = "bureau"
	ProfileTypeIndividual = "individual"
)

// Verification request statuses.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRevision = "revision"
	RequestRejected = "rejected"
)

// VerificationRequest is a queued request to review a profile submission.
type VerificationRequest struct {
	ID          string     `gorm:"primaryKey;size:64" json:"id"`
	ProfileID   string     `gorm:"size:64;index;not null" json:"profileId"`
	ProfileType string     `gorm:"size:20;index;not null" json:"profileType"` // bureau, individual
	ProfileName string     `gorm:"size:200" json:"profileName"`
	Status      string     `gorm:"size:20;default:pending;index" json:"status"`
	Notes       string     `gorm:"type:text" json:"notes,omitempty"`
	SubmittedAt time.Time  `json:"submittedAt"`
	DecidedAt   *time.Time `json:"decidedAt,omitempty"`
	DecidedBy   string     `gorm:"size:100" json:"decidedBy,omitempty"`
}

func (VerificationRequest) TableName() string { return "verification_requests" }
