package services

import (
	"context"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

type fakeCleanupRepository struct {
	calledWith time.Time
	err        error
}

func (f *fakeCleanupRepository) RemoveReadOlderThan(ctx context.Context, expirationTime time.Time) (int64, error) {
	f.calledWith = expirationTime
	return 3, f.err
}

func Test_NotificationsCleaner_WhenRetentionNotPositive_ShouldFail(t *testing.T) {
	_, err := NewNotificationsCleaner(&fakeCleanupRepository{}, 0)
	assert.Error(t, err)
}

func Test_NotificationsCleaner_ShouldUseRetentionWindow(t *testing.T) {
	repo := &fakeCleanupRepository{}
	cleaner := &NotificationsCleaner{notifications: repo, cron: cron.New(), expirationTimeInDays: 90}

	cleaner.cleanReadNotifications()

	expected := time.Now().Add(-90 * 24 * time.Hour)
	assert.WithinDuration(t, expected, repo.calledWith, time.Minute)
}

func Test_NotificationsCleaner_WhenRepositoryFails_ShouldNotPanic(t *testing.T) {
	repo := &fakeCleanupRepository{err: errors.New("db down")}
	cleaner, err := NewNotificationsCleaner(repo, 1)
	require.NoError(t, err)
	defer cleaner.Stop()

	assert.NotPanics(t, cleaner.cleanReadNotifications)
}
