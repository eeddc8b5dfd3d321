package entities

import "time"

type NotificationKind string

const (
	KindNewApplication    NotificationKind = "NEW_APPLICATION"
	KindApplicationStatus NotificationKind = "APPLICATION_STATUS"
)

// Notification is a point-in-time record for one recipient. Message is rendered
// once and never follows later changes of the referenced job or application.
type Notification struct {
	ID            uint             `json:"id"`
	RecipientID   uint             `gorm:"not null;index:idx_notifications_recipient" json:"recipientId"`
	Kind          NotificationKind `gorm:"not null" json:"type"`
	Message       string           `gorm:"not null" json:"message"`
	JobID         *uint            `gorm:"index" json:"jobId,omitempty"`
	Job           *Job             `gorm:"foreignKey:JobID" json:"job,omitempty"`
	ApplicationID *uint            `gorm:"index" json:"applicationId,omitempty"`
	Application   *Application     `gorm:"foreignKey:ApplicationID" json:"application,omitempty"`
	IsRead        bool             `gorm:"not null;default:false" json:"isRead"`
	CreatedAt     time.Time        `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}
