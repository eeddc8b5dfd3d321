package entities

import (
	"errors"
	"time"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

func ToRole(s string) (Role, error) {
	switch s {
	case string(RoleCandidate):
		return RoleCandidate, nil
	case string(RoleRecruiter):
		return RoleRecruiter, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	default:
		return "", errors.New("invalid role")
	}
}

type User struct {
	ID           uint      `json:"id"`
	Username     string    `gorm:"not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"not null;default:candidate" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Caller is the authenticated identity behind a request.
type Caller struct {
	ID   uint
	Role Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// CanManage reports whether the caller may act on a resource owned by ownerID.
func (c Caller) CanManage(ownerID uint) bool {
	return c.ID == ownerID || c.IsAdmin()
}

func (c Caller) IsRecruiterOrAdmin() bool {
	return c.Role == RoleRecruiter || c.IsAdmin()
}
