package entities

import (
	"errors"
	"time"
)

type EmploymentType string

const (
	FullTime   EmploymentType = "full-time"
	PartTime   EmploymentType = "part-time"
	Internship EmploymentType = "internship"
	Freelance  EmploymentType = "freelance"
)

func ToEmploymentType(s string) (EmploymentType, error) {
	switch s {
	case "":
		return FullTime, nil
	case string(FullTime):
		return FullTime, nil
	case string(PartTime):
		return PartTime, nil
	case string(Internship):
		return Internship, nil
	case string(Freelance):
		return Freelance, nil
	default:
		return "", errors.New("invalid employment type")
	}
}

type SalaryRange struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

type Job struct {
	ID             uint           `json:"id"`
	RecruiterID    uint           `gorm:"not null;index" json:"recruiterId"`
	Recruiter      *User          `gorm:"foreignKey:RecruiterID" json:"recruiter,omitempty"`
	Title          string         `gorm:"not null" json:"title"`
	Company        string         `gorm:"not null" json:"company"`
	Location       string         `json:"location"`
	Type           EmploymentType `gorm:"not null;default:full-time" json:"type"`
	Description    string         `gorm:"type:text;not null" json:"description"`
	RequiredSkills []string       `gorm:"serializer:json" json:"requiredSkills"`
	Salary         SalaryRange    `gorm:"embedded;embeddedPrefix:salary_" json:"salaryRange"`
	IsActive       bool           `gorm:"not null;default:true" json:"isActive"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
