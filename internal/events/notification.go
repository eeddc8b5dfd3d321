package events

import "github.com/maxaizer/careerboost/internal/entities"

var (
	NotificationCreatedTopic          = "NotificationCreatedEvent"
	NotificationProjectionFailedTopic = "NotificationProjectionFailedEvent"
)

type NotificationCreated struct {
	Notification entities.Notification
}

type NotificationProjectionFailed struct {
	ApplicationID uint
	Stage         string
	Err           error
}
