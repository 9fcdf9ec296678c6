package models

import "time"

// Verification status values shared by bureau and individual profiles.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// BureauProfile represents a service bureau listed in the directory.
type BureauProfile struct {
	ID                 string     `gorm:"primaryKey;size:64" json:"id"`
	CompanyName        string     `gorm:"size:200;not null" json:"companyName"`
	ContactPerson      string     `gorm:"size:200" json:"contactPerson"`
	Email              string     `gorm:"size:255" json:"email"`
	Phone              string     `gorm:"size:50" json:"phone"`
	BusinessLicense    string     `gorm:"size:100" json:"businessLicense"`
	Address            string     `gorm:"size:500" json:"address"`
	City               string     `gorm:"size:100;index" json:"city"`
	Country            string     `gorm:"size:100" json:"country"`
	Website            string     `gorm:"size:255" json:"website,omitempty"`
	Description        string     `gorm:"type:text" json:"description"`
	Services           []string   `gorm:"serializer:json;type:text" json:"services"`
	VerificationStatus string     `gorm:"size:20;default:pending;index" json:"verificationStatus"`
	IsActive           bool       `gorm:"default:true" json:"isActive"`
	ProfileImageURL    string     `gorm:"size:500" json:"profileImageUrl,omitempty"`
	Rating             float64    `json:"rating"`
	TotalProjects      int        `json:"totalProjects"`
	CompletedProjects  int        `json:"completedProjects"`
	VerifiedAt         *time.Time `json:"verifiedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func (BureauProfile) TableName() string { return "bureau_profiles" }
