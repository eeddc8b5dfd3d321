package services

import (
	"context"
	"fmt"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/careerboost/internal/apperrors"
	"github.com/maxaizer/careerboost/internal/entities"
	"github.com/maxaizer/careerboost/internal/events"
	"github.com/pkg/errors"
	"time"
)

const DefaultNotificationsListLimit = 50

type notificationRepository interface {
	Add(ctx context.Context, notification *entities.Notification) error
	GetByID(ctx context.Context, id uint) (*entities.Notification, error)
	GetByRecipient(ctx context.Context, recipientID uint, limit int) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id uint) error
	MarkAllRead(ctx context.Context, recipientID uint) (int64, error)
	CountUnread(ctx context.Context, recipientID uint) (int64, error)
	MarkReadByApplication(ctx context.Context, recipientID, applicationID uint, kind entities.NotificationKind) (int64, error)
	RemoveByApplication(ctx context.Context, recipientID, applicationID uint, kind entities.NotificationKind) (int64, error)
}

// Notifications turns lifecycle transitions into per-recipient feed records
// and serves the recipient's read/unread queries.
type Notifications struct {
	notifications notificationRepository
	bus           EventBus.Bus
	listLimit     int
}

func NewNotifications(notifications notificationRepository, bus EventBus.Bus, listLimit int) *Notifications {
	if listLimit <= 0 {
		listLimit = DefaultNotificationsListLimit
	}
	return &Notifications{notifications: notifications, bus: bus, listLimit: listLimit}
}

func NewApplicationMessage(jobTitle string) string {
	return fmt.Sprintf("New application for %q", jobTitle)
}

func StatusChangeMessage(jobTitle string, status entities.ApplicationStatus) string {
	return fmt.Sprintf("Your application for %q is now %q", jobTitle, string(status))
}

func (n *Notifications) OnNewApplication(ctx context.Context, job entities.Job, application entities.Application) error {
	notification := &entities.Notification{
		RecipientID:   job.RecruiterID,
		Kind:          entities.KindNewApplication,
		Message:       NewApplicationMessage(job.Title),
		JobID:         &job.ID,
		ApplicationID: &application.ID,
	}
	return n.add(ctx, notification)
}

// OnStatusChange tells the candidate about the new status and settles the
// recruiter's pending NEW_APPLICATION entries: removed on a final status,
// marked read otherwise.
func (n *Notifications) OnStatusChange(ctx context.Context, job entities.Job, application entities.Application,
	status entities.ApplicationStatus) error {

	notification := &entities.Notification{
		RecipientID:   application.CandidateID,
		Kind:          entities.KindApplicationStatus,
		Message:       StatusChangeMessage(job.Title, status),
		JobID:         &job.ID,
		ApplicationID: &application.ID,
	}
	if err := n.add(ctx, notification); err != nil {
		return err
	}

	if status.IsFinal() {
		_, err := n.notifications.RemoveByApplication(ctx, job.RecruiterID, application.ID, entities.KindNewApplication)
		return errors.Wrap(err, "remove recruiter notifications")
	}
	_, err := n.notifications.MarkReadByApplication(ctx, job.RecruiterID, application.ID, entities.KindNewApplication)
	return errors.Wrap(err, "mark recruiter notifications as read")
}

func (n *Notifications) MarkRead(ctx context.Context, id uint, caller entities.Caller) (*entities.Notification, error) {
	notification, err := n.notifications.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "load notification")
	}
	if notification == nil {
		return nil, apperrors.NotFound("notification not found")
	}
	if notification.RecipientID != caller.ID {
		return nil, apperrors.Forbidden("not allowed")
	}

	if !notification.IsRead {
		if err = n.notifications.MarkRead(ctx, id); err != nil {
			return nil, errors.Wrap(err, "mark notification as read")
		}
		notification.IsRead = true
		notification.UpdatedAt = time.Now()
	}
	return notification, nil
}

func (n *Notifications) MarkAllRead(ctx context.Context, caller entities.Caller) (int64, error) {
	affected, err := n.notifications.MarkAllRead(ctx, caller.ID)
	if err != nil {
		return 0, errors.Wrap(err, "mark all notifications as read")
	}
	return affected, nil
}

func (n *Notifications) UnreadCount(ctx context.Context, caller entities.Caller) (int64, error) {
	count, err := n.notifications.CountUnread(ctx, caller.ID)
	if err != nil {
		return 0, errors.Wrap(err, "count unread notifications")
	}
	return count, nil
}

// List returns the caller's newest notifications. A limit outside 1..cap is clamped to the cap.
func (n *Notifications) List(ctx context.Context, caller entities.Caller, limit int) ([]entities.Notification, error) {
	if limit <= 0 || limit > n.listLimit {
		limit = n.listLimit
	}

	notifications, err := n.notifications.GetByRecipient(ctx, caller.ID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list notifications")
	}
	if notifications == nil {
		notifications = []entities.Notification{}
	}
	return notifications, nil
}

func (n *Notifications) add(ctx context.Context, notification *entities.Notification) error {
	if err := n.notifications.Add(ctx, notification); err != nil {
		return errors.Wrapf(err, "add %s notification", notification.Kind)
	}
	if n.bus != nil {
		n.bus.Publish(events.NotificationCreatedTopic, events.NotificationCreated{Notification: *notification})
	}
	return nil
}
