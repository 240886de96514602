package contracts

import (
	"context"

	"caremind-service/internal/app/models"
)

// FanoutService turns a discharge-request state transition into durable
// per-recipient notification rows, a best-effort live push, and a queued
// email copy. Fan-out never fails the operation that triggered it.
type FanoutService interface {
	NotifyDischargeRequestCreated(ctx context.Context, patient *models.Patient, request *models.DischargeRequest)
	NotifyDischargeRequestReviewed(ctx context.Context, patient *models.Patient, request *models.DischargeRequest)
	NotifyPendingReminder(ctx context.Context, pendingCount int)
}

// RealtimePublisher is the live side channel. Delivery is best effort; the
// durable notification rows are the source of truth.
type RealtimePublisher interface {
	PublishToUser(userID, event, resourceKey string, payload interface{})
	PublishToUsers(userIDs []string, event, resourceKey string, payload interface{})
}

type MailQueueService interface {
	EnqueueMail(ctx context.Context, to, subject, body string) error
}

type SMTPService interface {
	SendEmail(to, subject, body string) error
}
