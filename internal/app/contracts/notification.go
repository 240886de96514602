package contracts

import (
	"context"

	"caremind-service/internal/app/models"
	"caremind-service/internal/pkg/dto/responses"
)

type NotificationRepository interface {
	CreateNotifications(ctx context.Context, notifications []models.Notification) error
	FindByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error)
	FindByID(ctx context.Context, notificationID string) (*models.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context, recipientID string) error
	DeleteNotification(ctx context.Context, notificationID string) error
}

type NotificationUsecase interface {
	ListNotifications(ctx context.Context, session *models.Session) ([]responses.Notification, error)
	MarkNotificationRead(ctx context.Context, session *models.Session, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context, session *models.Session) error
	DeleteNotification(ctx context.Context, session *models.Session, notificationID string) error
}
