package entities

import "time"

type Profile struct {
	ID                uint      `json:"id"`
	UserID            uint      `gorm:"uniqueIndex;not null" json:"userId"`
	User              *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	FullName          string    `gorm:"not null" json:"fullName"`
	Headline          string    `json:"headline"`
	Bio               string    `gorm:"type:text" json:"bio"`
	Location          string    `json:"location"`
	YearsOfExperience float64   `gorm:"not null;default:0" json:"yearsOfExperience"`
	Skills            []string  `gorm:"serializer:json" json:"skills"`
	Goals             string    `json:"goals"`
	LinkedinURL       string    `json:"linkedinUrl"`
	PortfolioURL      string    `json:"portfolioUrl"`
	Avatar            string    `gorm:"type:text" json:"avatar"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
