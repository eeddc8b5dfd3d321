package services

import (
	"context"
	"github.com/maxaizer/careerboost/internal/logger"
	"github.com/maxaizer/careerboost/internal/metrics"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"time"
)

type NotificationCleanupRepository interface {
	RemoveReadOlderThan(ctx context.Context, expirationTime time.Time) (int64, error)
}

// NotificationsCleaner purges read notifications past the retention window once a day.
// Unread notifications are never removed.
type NotificationsCleaner struct {
	notifications        NotificationCleanupRepository
	cron                 *cron.Cron
	expirationTimeInDays int
}

func NewNotificationsCleaner(notifications NotificationCleanupRepository, expirationInDays int) (*NotificationsCleaner, error) {

	if expirationInDays <= 0 {
		return nil, errors.New("expiration in days must be greater than zero")
	}

	nc := &NotificationsCleaner{
		notifications:        notifications,
		cron:                 cron.New(),
		expirationTimeInDays: expirationInDays,
	}

	_, err := nc.cron.AddFunc("0 0 * * *", nc.cleanReadNotifications)
	if err != nil {
		return nil, err
	}

	nc.cron.Start()
	log.Infof("notifications cleaner started, expiration in days: %d", nc.expirationTimeInDays)
	return nc, nil
}

func (nc *NotificationsCleaner) Stop() {
	<-nc.cron.Stop().Done()
}

func (nc *NotificationsCleaner) cleanReadNotifications() {
	expirationTime := time.Now().Add(-time.Duration(nc.expirationTimeInDays) * 24 * time.Hour)
	rowsAffected, err := nc.notifications.RemoveReadOlderThan(context.Background(), expirationTime)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("Failed to clean read notifications: %v", err)
		return
	}
	metrics.NotificationsPurgedCounter.Add(float64(rowsAffected))
	log.Infof("Read notifications were cleaned at %v, affected rows: %v", time.Now(), rowsAffected)
}
