package notifications

import (
	"context"
	"testing"
	"time"

	"caremind-service/internal/app/models"
	"caremind-service/internal/pkg/constvars"
	"caremind-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) CreateNotifications(ctx context.Context, notifications []models.Notification) error {
	args := m.Called(ctx, notifications)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, notificationID string) (*models.Notification, error) {
	args := m.Called(ctx, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, recipientID string) error {
	args := m.Called(ctx, recipientID)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteNotification(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

func newTestUsecase() (*notificationUsecase, *MockNotificationRepository) {
	repo := new(MockNotificationRepository)
	uc := &notificationUsecase{
		NotificationRepository: repo,
		Log:                    zap.NewNop(),
	}
	return uc, repo
}

func testSession() *models.Session {
	return &models.Session{SessionID: "sess-1", UserID: "user-1", Role: constvars.RoleTherapist}
}

func TestListNotifications(t *testing.T) {
	uc, repo := newTestUsecase()
	now := time.Now()

	repo.On("FindByRecipient", mock.Anything, "user-1").Return([]models.Notification{
		{
			ID:          "n1",
			RecipientID: "user-1",
			Type:        constvars.NotificationTypeDischargeRequestApproved,
			Title:       "Discharge request approved",
			Read:        false,
			TimeModel:   models.TimeModel{CreatedAt: now},
		},
	}, nil)

	result, err := uc.ListNotifications(context.Background(), testSession())

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "n1", result[0].ID)
	assert.Equal(t, constvars.NotificationTypeDischargeRequestApproved, result[0].Type)
	assert.False(t, result[0].Read)
}

func TestMarkNotificationRead(t *testing.T) {
	t.Run("marks an owned notification", func(t *testing.T) {
		uc, repo := newTestUsecase()

		repo.On("FindByID", mock.Anything, "n1").Return(&models.Notification{ID: "n1", RecipientID: "user-1"}, nil)
		repo.On("MarkRead", mock.Anything, "n1").Return(nil)

		err := uc.MarkNotificationRead(context.Background(), testSession(), "n1")
		assert.NoError(t, err)
		repo.AssertCalled(t, "MarkRead", mock.Anything, "n1")
	})

	t.Run("already read is a no-op", func(t *testing.T) {
		uc, repo := newTestUsecase()

		repo.On("FindByID", mock.Anything, "n1").Return(&models.Notification{ID: "n1", RecipientID: "user-1", Read: true}, nil)

		err := uc.MarkNotificationRead(context.Background(), testSession(), "n1")
		assert.NoError(t, err)
		repo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
	})

	t.Run("forbids touching another user's notification", func(t *testing.T) {
		uc, repo := newTestUsecase()

		repo.On("FindByID", mock.Anything, "n1").Return(&models.Notification{ID: "n1", RecipientID: "someone-else"}, nil)

		err := uc.MarkNotificationRead(context.Background(), testSession(), "n1")
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		if assert.True(t, ok) {
			assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		}
		repo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
	})

	t.Run("unknown notification is a 404", func(t *testing.T) {
		uc, repo := newTestUsecase()

		repo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		err := uc.MarkNotificationRead(context.Background(), testSession(), "missing")
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		if assert.True(t, ok) {
			assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		}
	})
}

func TestDeleteNotification(t *testing.T) {
	t.Run("deletes an owned notification", func(t *testing.T) {
		uc, repo := newTestUsecase()

		repo.On("FindByID", mock.Anything, "n1").Return(&models.Notification{ID: "n1", RecipientID: "user-1"}, nil)
		repo.On("DeleteNotification", mock.Anything, "n1").Return(nil)

		err := uc.DeleteNotification(context.Background(), testSession(), "n1")
		assert.NoError(t, err)
	})

	t.Run("forbids deleting another user's notification", func(t *testing.T) {
		uc, repo := newTestUsecase()

		repo.On("FindByID", mock.Anything, "n1").Return(&models.Notification{ID: "n1", RecipientID: "someone-else"}, nil)

		err := uc.DeleteNotification(context.Background(), testSession(), "n1")
		assert.Error(t, err)
		repo.AssertNotCalled(t, "DeleteNotification", mock.Anything, mock.Anything)
	})
}

func TestMarkAllNotificationsRead(t *testing.T) {
	uc, repo := newTestUsecase()

	repo.On("MarkAllRead", mock.Anything, "user-1").Return(nil)

	err := uc.MarkAllNotificationsRead(context.Background(), testSession())
	assert.NoError(t, err)
	repo.AssertCalled(t, "MarkAllRead", mock.Anything, "user-1")
}
