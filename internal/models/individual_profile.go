package models

import "time"

// IndividualProfile represents an independent professional listed in the directory.
type IndividualProfile struct {
	ID                 string     `gorm:"primaryKey;size:64" json:"id"`
	FirstName          string     `gorm:"size:100;not null" json:"firstName"`
	LastName           string     `gorm:"size:100;not null" json:"lastName"`
	Email              string     `gorm:"size:255" json:"email"`
	Phone              string     `gorm:"size:50" json:"phone"`
	DateOfBirth        string     `gorm:"size:20" json:"dateOfBirth,omitempty"`
	Address            string     `gorm:"size:500" json:"address"`
	City               string     `gorm:"size:100;index" json:"city"`
	Country            string     `gorm:"size:100" json:"country"`
	Occupation         string     `gorm:"size:200" json:"occupation"`
	ExperienceYears    int        `json:"experienceYears"`
	Skills             []string   `gorm:"serializer:json;type:text" json:"skills"`
	Languages          []string   `gorm:"serializer:json;type:text" json:"languages"`
	HourlyRate         float64    `json:"hourlyRate"`
	AvailabilityStatus string     `gorm:"size:20;default:available" json:"availabilityStatus"` // available, busy, unavailable
	PortfolioURL       string     `gorm:"size:255" json:"portfolioUrl,omitempty"`
	LinkedinURL        string     `gorm:"size:255" json:"linkedinUrl,omitempty"`
	Description        string     `gorm:"type:text" json:"description"`
	VerificationStatus string     `gorm:"size:20;default:pending;index" json:"verificationStatus"`
	IsActive           bool       `gorm:"default:true" json:"isActive"`
	ProfileImageURL    string     `gorm:"size:500" json:"profileImageUrl,omitempty"`
	Rating             float64    `json:"rating"`
	CompletedProjects  int        `json:"completedProjects"`
	VerifiedAt         *time.Time `json:"verifiedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func (IndividualProfile) TableName() string { return "individual_profiles" }

// FullName joins first and last name for display and search.
func (p IndividualProfile) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
