package notifications

import (
	"context"
	"sync"

	"caremind-service/internal/app/contracts"
	"caremind-service/internal/app/models"
	"caremind-service/internal/pkg/constvars"
	"caremind-service/internal/pkg/dto/responses"
	"caremind-service/internal/pkg/exceptions"
	"caremind-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	notificationUsecaseInstance contracts.NotificationUsecase
	onceNotificationUsecase     sync.Once
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	Log                    *zap.Logger
}

func NewNotificationUsecase(notificationRepository contracts.NotificationRepository, logger *zap.Logger) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		notificationUsecaseInstance = &notificationUsecase{
			NotificationRepository: notificationRepository,
			Log:                    logger,
		}
	})
	return notificationUsecaseInstance
}

func (uc *notificationUsecase) ListNotifications(ctx context.Context, session *models.Session) ([]responses.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.ListNotifications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	notifications, err := uc.NotificationRepository.FindByRecipient(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Notification, 0, len(notifications))
	for i := range notifications {
		result = append(result, utils.MapNotificationToResponse(&notifications[i]))
	}
	return result, nil
}

func (uc *notificationUsecase) MarkNotificationRead(ctx context.Context, session *models.Session, notificationID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.MarkNotificationRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	notification, err := uc.findOwnedNotification(ctx, session, notificationID)
	if err != nil {
		return err
	}
	if notification.Read {
		return nil
	}
	return uc.NotificationRepository.MarkRead(ctx, notificationID)
}

func (uc *notificationUsecase) MarkAllNotificationsRead(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.MarkAllNotificationsRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	return uc.NotificationRepository.MarkAllRead(ctx, session.UserID)
}

func (uc *notificationUsecase) DeleteNotification(ctx context.Context, session *models.Session, notificationID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.DeleteNotification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	_, err := uc.findOwnedNotification(ctx, session, notificationID)
	if err != nil {
		return err
	}
	return uc.NotificationRepository.DeleteNotification(ctx, notificationID)
}

func (uc *notificationUsecase) findOwnedNotification(ctx context.Context, session *models.Session, notificationID string) (*models.Notification, error) {
	notification, err := uc.NotificationRepository.FindByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, exceptions.ErrNotificationNotExist(nil)
	}
	if notification.RecipientID != session.UserID {
		return nil, exceptions.ErrNotificationNotOwned(nil)
	}
	return notification, nil
}
