package services

import (
	"context"

	"github.com/google/uuid"

	dbm "tripforge/internal/models/db_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/repositories"
	"tripforge/pkg/logger"
	"tripforge/pkg/utils"
)

type NotificationServiceInterface interface {
	Add(ctx context.Context, userID uuid.UUID, notificationType dbm.NotificationType, title, message string, relatedItineraryID *uuid.UUID) error
	ListForUser(ctx context.Context, userID string) ([]response_models.NotificationResponse, error)
	MarkRead(ctx context.Context, id string, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id string, userID string) error
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationServiceInterface {
	return &NotificationService{
		notificationRepo: notificationRepo,
	}
}

func (s *NotificationService) Add(ctx context.Context, userID uuid.UUID, notificationType dbm.NotificationType, title, message string, relatedItineraryID *uuid.UUID) error {
	notification := &dbm.Notification{
		UserID:             userID,
		Type:               notificationType,
		Title:              title,
		Message:            message,
		RelatedItineraryID: relatedItineraryID,
		IsRead:             false,
	}

	if err := s.notificationRepo.Insert(ctx, notification); err != nil {
		logger.Error("insert notification failed", logger.Err(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]response_models.NotificationResponse, error) {
	rows, err := s.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("list notifications failed", logger.Err(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.NotificationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dbm.BuildNotificationResponse(&rows[i]))
	}
	return out, nil
}

// MarkRead is idempotent: marking an already-read notification is a no-op.
func (s *NotificationService) MarkRead(ctx context.Context, id string, userID string) error {
	notification, err := s.notificationRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if notification == nil || notification.UserID.String() != userID {
		return utils.ErrNotificationNotFound
	}
	if notification.IsRead {
		return nil
	}

	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		logger.Error("mark notification read failed", logger.Err(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		logger.Error("mark all notifications read failed", logger.Err(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *NotificationService) Delete(ctx context.Context, id string, userID string) error {
	notification, err := s.notificationRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if notification == nil || notification.UserID.String() != userID {
		return utils.ErrNotificationNotFound
	}

	affected, err := s.notificationRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("delete notification failed", logger.Err(err))
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrNotificationNotFound
	}
	return nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		logger.Error("count unread notifications failed", logger.Err(err))
		return 0, utils.ErrDatabaseError
	}
	return count, nil
}
