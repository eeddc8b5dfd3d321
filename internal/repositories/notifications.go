package repositories

import (
	"context"
	"github.com/maxaizer/careerboost/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

type Notifications struct {
	db *gorm.DB
}

func NewNotificationsRepository(db *gorm.DB) *Notifications {
	return &Notifications{db: db}
}

func (repo *Notifications) Add(ctx context.Context, notification *entities.Notification) error {
	return repo.db.WithContext(ctx).Omit(clause.Associations).Create(notification).Error
}

func (repo *Notifications) GetByID(ctx context.Context, id uint) (*entities.Notification, error) {
	var notification entities.Notification
	return notFoundAsNil(&notification, repo.db.WithContext(ctx).First(&notification, "id = ?", id).Error)
}

// GetByRecipient returns the newest notifications first with job and application previews.
func (repo *Notifications) GetByRecipient(ctx context.Context, recipientID uint, limit int) ([]entities.Notification, error) {
	var notifications []entities.Notification
	if err := repo.db.WithContext(ctx).
		Preload("Job", func(db *gorm.DB) *gorm.DB { return db.Select("id", "title", "company") }).
		Preload("Application", func(db *gorm.DB) *gorm.DB { return db.Select("id", "status") }).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (repo *Notifications) MarkRead(ctx context.Context, id uint) error {
	return repo.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (repo *Notifications) MarkAllRead(ctx context.Context, recipientID uint) (int64, error) {
	res := repo.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (repo *Notifications) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Notifications) MarkReadByApplication(ctx context.Context, recipientID, applicationID uint,
	kind entities.NotificationKind) (int64, error) {

	res := repo.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("recipient_id = ? AND application_id = ? AND kind = ?", recipientID, applicationID, kind).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (repo *Notifications) RemoveByApplication(ctx context.Context, recipientID, applicationID uint,
	kind entities.NotificationKind) (int64, error) {

	res := repo.db.WithContext(ctx).
		Delete(&entities.Notification{}, "recipient_id = ? AND application_id = ? AND kind = ?",
			recipientID, applicationID, kind)
	return res.RowsAffected, res.Error
}

func (repo *Notifications) RemoveReadOlderThan(ctx context.Context, expirationTime time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).
		Delete(&entities.Notification{}, "is_read = ? AND created_at < ?", true, expirationTime)
	return res.RowsAffected, res.Error
}
