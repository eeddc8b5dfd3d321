package entities

import (
	"errors"
	"time"
)

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusReviewed ApplicationStatus = "reviewed"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

var ErrInvalidStatus = errors.New("invalid application status")

func ToApplicationStatus(s string) (ApplicationStatus, error) {
	switch s {
	case string(StatusPending):
		return StatusPending, nil
	case string(StatusReviewed):
		return StatusReviewed, nil
	case string(StatusAccepted):
		return StatusAccepted, nil
	case string(StatusRejected):
		return StatusRejected, nil
	default:
		return "", ErrInvalidStatus
	}
}

// IsFinal reports whether the status resolves the recruiter's pending action.
// Nothing prevents a final status from being changed again.
func (s ApplicationStatus) IsFinal() bool {
	return s == StatusAccepted || s == StatusRejected
}

type Application struct {
	ID               uint              `json:"id"`
	CandidateID      uint              `gorm:"not null;index" json:"candidateId"`
	Candidate        *User             `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
	JobID            uint              `gorm:"not null;index" json:"jobId"`
	Job              *Job              `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Status           ApplicationStatus `gorm:"not null;default:pending" json:"status"`
	MotivationLetter string            `gorm:"type:text" json:"motivationLetter,omitempty"`
	MatchScore       int               `gorm:"not null;default:0" json:"matchScore"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

func NewApplication(candidateID, jobID uint, motivationLetter string) *Application {
	return &Application{
		CandidateID:      candidateID,
		JobID:            jobID,
		Status:           StatusPending,
		MotivationLetter: motivationLetter,
	}
}
