package fanout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"caremind-service/internal/app/contracts"
	"caremind-service/internal/app/models"
	"caremind-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

var (
	fanoutServiceInstance contracts.FanoutService
	onceFanoutService     sync.Once
)

// fanoutService converts a discharge-request transition into durable
// notification rows, a live push, and a queued email copy. Every step past
// the notification insert is best effort: a failed push or enqueue is logged
// and swallowed, it never rolls back or fails the triggering operation.
type fanoutService struct {
	NotificationRepository contracts.NotificationRepository
	UserRepository         contracts.UserRepository
	Realtime               contracts.RealtimePublisher
	MailQueue              contracts.MailQueueService
	Log                    *zap.Logger
}

func NewFanoutService(
	notificationRepository contracts.NotificationRepository,
	userRepository contracts.UserRepository,
	realtime contracts.RealtimePublisher,
	mailQueue contracts.MailQueueService,
	logger *zap.Logger,
) contracts.FanoutService {
	onceFanoutService.Do(func() {
		fanoutServiceInstance = &fanoutService{
			NotificationRepository: notificationRepository,
			UserRepository:         userRepository,
			Realtime:               realtime,
			MailQueue:              mailQueue,
			Log:                    logger,
		}
	})
	return fanoutServiceInstance
}

func (s *fanoutService) NotifyDischargeRequestCreated(ctx context.Context, patient *models.Patient, request *models.DischargeRequest) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("fanoutService.NotifyDischargeRequestCreated called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
		zap.String(constvars.LoggingDischargeRequestIDKey, request.ID),
	)

	reviewers, err := s.UserRepository.FindByRoles(ctx, []string{constvars.RoleAdmin, constvars.RoleSupervisor})
	if err != nil {
		s.Log.Error("fanoutService.NotifyDischargeRequestCreated error resolving reviewers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	if len(reviewers) == 0 {
		return
	}

	title := "New discharge request"
	message := fmt.Sprintf("A discharge request was submitted for %s.", patient.FullName)

	now := time.Now()
	notifications := make([]models.Notification, 0, len(reviewers))
	recipientIDs := make([]string, 0, len(reviewers))
	for _, reviewer := range reviewers {
		notifications = append(notifications, models.Notification{
			RecipientID: reviewer.ID,
			Type:        constvars.NotificationTypeDischargeRequestCreated,
			Title:       title,
			Message:     message,
			Data: models.NotificationData{
				PatientID:          patient.ID,
				DischargeRequestID: request.ID,
			},
			TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
		})
		recipientIDs = append(recipientIDs, reviewer.ID)
	}

	if err := s.NotificationRepository.CreateNotifications(ctx, notifications); err != nil {
		s.Log.Error("fanoutService.NotifyDischargeRequestCreated error persisting notifications",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	s.Realtime.PublishToUsers(recipientIDs,
		constvars.RealtimeEventDischargeRequestCreated,
		constvars.ResourceKeyPendingDischargeRequests,
		models.NotificationData{PatientID: patient.ID, DischargeRequestID: request.ID},
	)

	for _, reviewer := range reviewers {
		if reviewer.Email == "" {
			continue
		}
		if err := s.MailQueue.EnqueueMail(ctx, reviewer.Email, title, message); err != nil {
			s.Log.Error("fanoutService.NotifyDischargeRequestCreated error enqueueing mail",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}
}

func (s *fanoutService) NotifyDischargeRequestReviewed(ctx context.Context, patient *models.Patient, request *models.DischargeRequest) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("fanoutService.NotifyDischargeRequestReviewed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
		zap.String(constvars.LoggingDischargeRequestIDKey, request.ID),
	)

	notificationType := constvars.NotificationTypeDischargeRequestDenied
	title := "Discharge request denied"
	message := fmt.Sprintf("Your discharge request for %s was denied.", patient.FullName)
	if request.Status == constvars.DischargeRequestStatusApproved {
		notificationType = constvars.NotificationTypeDischargeRequestApproved
		title = "Discharge request approved"
		message = fmt.Sprintf("Your discharge request for %s was approved.", patient.FullName)
	}

	now := time.Now()
	notifications := []models.Notification{
		{
			RecipientID: request.RequestedBy,
			Type:        notificationType,
			Title:       title,
			Message:     message,
			Data: models.NotificationData{
				PatientID:          patient.ID,
				DischargeRequestID: request.ID,
			},
			TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
		},
	}

	if err := s.NotificationRepository.CreateNotifications(ctx, notifications); err != nil {
		s.Log.Error("fanoutService.NotifyDischargeRequestReviewed error persisting notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	s.Realtime.PublishToUser(request.RequestedBy,
		constvars.RealtimeEventDischargeRequestUpdated,
		fmt.Sprintf(constvars.ResourceKeyPatientFormat, patient.ID),
		models.NotificationData{PatientID: patient.ID, DischargeRequestID: request.ID},
	)

	requester, err := s.UserRepository.FindByID(ctx, request.RequestedBy)
	if err != nil || requester == nil || requester.Email == "" {
		return
	}
	if err := s.MailQueue.EnqueueMail(ctx, requester.Email, title, message); err != nil {
		s.Log.Error("fanoutService.NotifyDischargeRequestReviewed error enqueueing mail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func (s *fanoutService) NotifyPendingReminder(ctx context.Context, pendingCount int) {
	s.Log.Info("fanoutService.NotifyPendingReminder called",
		zap.Int("pending_count", pendingCount),
	)
	if pendingCount == 0 {
		return
	}

	reviewers, err := s.UserRepository.FindByRoles(ctx, []string{constvars.RoleAdmin, constvars.RoleSupervisor})
	if err != nil {
		s.Log.Error("fanoutService.NotifyPendingReminder error resolving reviewers", zap.Error(err))
		return
	}
	if len(reviewers) == 0 {
		return
	}

	title := "Pending discharge requests"
	message := fmt.Sprintf("There are %d discharge requests awaiting review.", pendingCount)

	now := time.Now()
	notifications := make([]models.Notification, 0, len(reviewers))
	recipientIDs := make([]string, 0, len(reviewers))
	for _, reviewer := range reviewers {
		notifications = append(notifications, models.Notification{
			RecipientID: reviewer.ID,
			Type:        constvars.NotificationTypePendingRequestsReminder,
			Title:       title,
			Message:     message,
			TimeModel:   models.TimeModel{CreatedAt: now, UpdatedAt: now},
		})
		recipientIDs = append(recipientIDs, reviewer.ID)
	}

	if err := s.NotificationRepository.CreateNotifications(ctx, notifications); err != nil {
		s.Log.Error("fanoutService.NotifyPendingReminder error persisting notifications", zap.Error(err))
		return
	}

	s.Realtime.PublishToUsers(recipientIDs,
		constvars.RealtimeEventNotificationCreated,
		constvars.ResourceKeyPendingDischargeRequests,
		nil,
	)
}
