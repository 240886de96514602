package users

import (
	"context"
	"testing"
	"time"

	"caremind-service/internal/app/models"
	"caremind-service/internal/pkg/constvars"
	"caremind-service/internal/pkg/dto/requests"
	"caremind-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByRoles(ctx context.Context, roles []string) ([]models.User, error) {
	args := m.Called(ctx, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, userID string, updateData map[string]interface{}) error {
	args := m.Called(ctx, userID, updateData)
	return args.Error(0)
}

func newTestUsecase(userRepository *MockUserRepository) *userUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		Log:            zap.NewNop(),
	}
}

func testSession() *models.Session {
	return &models.Session{
		SessionID: "sess-1",
		UserID:    "user-1",
		FullName:  "Tess Therapist",
		Role:      constvars.RoleTherapist,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func assertCustomErrorStatus(t *testing.T, err error, statusCode int) {
	t.Helper()
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, statusCode, customErr.StatusCode)
}

func TestGetProfile(t *testing.T) {
	t.Run("returns the session user's profile", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, "user-1").Return(&models.User{
			ID:       "user-1",
			FullName: "Tess Therapist",
			Email:    "tess@clinic.test",
			Role:     constvars.RoleTherapist,
		}, nil)
		uc := newTestUsecase(mockRepo)

		result, err := uc.GetProfile(context.Background(), testSession())

		assert.NoError(t, err)
		assert.Equal(t, "user-1", result.ID)
		assert.Equal(t, "tess@clinic.test", result.Email)
		assert.Equal(t, constvars.RoleTherapist, result.Role)
	})

	t.Run("returns not found when the account is gone", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, "user-1").Return(nil, nil)
		uc := newTestUsecase(mockRepo)

		result, err := uc.GetProfile(context.Background(), testSession())

		assert.Nil(t, result)
		assertCustomErrorStatus(t, err, constvars.StatusNotFound)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("updates name and email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, "user-1").Return(&models.User{
			ID:       "user-1",
			FullName: "Tess Therapist",
			Email:    "tess@clinic.test",
			Role:     constvars.RoleTherapist,
		}, nil)
		mockRepo.On("FindByEmail", mock.Anything, "tess.new@clinic.test").Return(nil, nil)
		mockRepo.On("UpdateUser", mock.Anything, "user-1", map[string]interface{}{
			"fullName": "Tess T. Therapist",
			"email":    "tess.new@clinic.test",
		}).Return(nil)
		uc := newTestUsecase(mockRepo)

		result, err := uc.UpdateProfile(context.Background(), testSession(), &requests.UpdateProfile{
			FullName: "Tess T. Therapist",
			Email:    "tess.new@clinic.test",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Tess T. Therapist", result.FullName)
		assert.Equal(t, "tess.new@clinic.test", result.Email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("keeping the same email skips the uniqueness check", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, "user-1").Return(&models.User{
			ID:       "user-1",
			FullName: "Tess Therapist",
			Email:    "tess@clinic.test",
		}, nil)
		mockRepo.On("UpdateUser", mock.Anything, "user-1", mock.Anything).Return(nil)
		uc := newTestUsecase(mockRepo)

		_, err := uc.UpdateProfile(context.Background(), testSession(), &requests.UpdateProfile{
			FullName: "Tess Therapist",
			Email:    "tess@clinic.test",
		})

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("rejects an email owned by another account", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, "user-1").Return(&models.User{
			ID:       "user-1",
			FullName: "Tess Therapist",
			Email:    "tess@clinic.test",
		}, nil)
		mockRepo.On("FindByEmail", mock.Anything, "sam@clinic.test").Return(&models.User{
			ID:    "user-2",
			Email: "sam@clinic.test",
		}, nil)
		uc := newTestUsecase(mockRepo)

		result, err := uc.UpdateProfile(context.Background(), testSession(), &requests.UpdateProfile{
			FullName: "Tess Therapist",
			Email:    "sam@clinic.test",
		})

		assert.Nil(t, result)
		assertCustomErrorStatus(t, err, constvars.StatusConflict)
		mockRepo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
	})
}
