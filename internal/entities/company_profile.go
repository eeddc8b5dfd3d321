package entities

import (
	"errors"
	"time"
)

type CompanySize string

const (
	SizeMicro  CompanySize = "1-10"
	SizeSmall  CompanySize = "11-50"
	SizeMedium CompanySize = "51-200"
	SizeLarge  CompanySize = "201-500"
	SizeHuge   CompanySize = "500+"
)

func ToCompanySize(s string) (CompanySize, error) {
	switch CompanySize(s) {
	case "":
		return SizeMicro, nil
	case SizeMicro, SizeSmall, SizeMedium, SizeLarge, SizeHuge:
		return CompanySize(s), nil
	default:
		return "", errors.New("invalid company size")
	}
}

const MaxAlbumImages = 3

type CompanyProfile struct {
	ID          uint        `json:"id"`
	UserID      uint        `gorm:"uniqueIndex;not null" json:"userId"`
	CompanyName string      `gorm:"not null" json:"companyName"`
	Industry    string      `json:"industry"`
	Description string      `gorm:"type:text" json:"description"`
	Location    string      `json:"location"`
	WebsiteURL  string      `json:"websiteUrl"`
	LinkedinURL string      `json:"linkedinUrl"`
	Size        CompanySize `gorm:"not null;default:1-10" json:"size"`
	Logo        string      `gorm:"type:text" json:"logo"`
	CoverImage  string      `gorm:"type:text" json:"coverImage"`
	AlbumImages []string    `gorm:"serializer:json" json:"albumImages"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
