package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	dbm "tripforge/internal/models/db_models"
)

type NotificationRepository interface {
	Insert(ctx context.Context, notification *dbm.Notification) error
	FindById(ctx context.Context, id string) (*dbm.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]dbm.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id string) (int64, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Insert(ctx context.Context, notification *dbm.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) FindById(ctx context.Context, id string) (*dbm.Notification, error) {
	var notification dbm.Notification
	err := r.db.WithContext(ctx).First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

// ListByUser returns the user's timeline most-recent-first.
func (r *notificationRepository) ListByUser(ctx context.Context, userID string) ([]dbm.Notification, error) {
	var notifications []dbm.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_read":    true,
			"updated_at": time.Now().Unix(),
		}).Error
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read":    true,
			"updated_at": time.Now().Unix(),
		}).Error
}

func (r *notificationRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&dbm.Notification{})
	return result.RowsAffected, result.Error
}

// CountUnread recomputes the unread total on every call; it is never
// cached alongside the rows.
func (r *notificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
