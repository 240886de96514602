package auth

import (
	"context"
	"testing"

	"caremind-service/internal/app/config"
	"caremind-service/internal/app/contracts"
	"caremind-service/internal/app/models"
	sharedredis "caremind-service/internal/app/services/shared/redis"
	"caremind-service/internal/pkg/constvars"
	"caremind-service/internal/pkg/dto/requests"
	"caremind-service/internal/pkg/exceptions"
	"caremind-service/internal/pkg/utils"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
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

const testJWTSecret = "test-secret"

func newTestUsecase(t *testing.T) (*authUsecase, *MockUserRepository, contracts.RedisRepository) {
	t.Helper()
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	redisRepository := sharedredis.NewRedisRepository(client)

	userRepo := new(MockUserRepository)
	uc := &authUsecase{
		UserRepository:  userRepo,
		RedisRepository: redisRepository,
		InternalConfig: &config.InternalConfig{
			App: config.App{LoginSessionExpiredTimeInHours: 12},
			JWT: config.AppJWT{Secret: testJWTSecret, ExpTimeInHour: 12},
		},
		Log: zap.NewNop(),
	}
	return uc, userRepo, redisRepository
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hashed, err := utils.HashPassword("S3cure!pass")
	assert.NoError(t, err)

	staffUser := &models.User{
		ID:       "user-1",
		FullName: "Sam Supervisor",
		Email:    "sam@clinic.test",
		Password: hashed,
		Role:     constvars.RoleSupervisor,
	}

	t.Run("issues a token backed by a redis session", func(t *testing.T) {
		uc, userRepo, redisRepository := newTestUsecase(t)
		userRepo.On("FindByEmail", mock.Anything, "sam@clinic.test").Return(staffUser, nil)

		result, err := uc.Login(ctx, &requests.Login{Email: "sam@clinic.test", Password: "S3cure!pass"})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "Sam Supervisor", result.FullName)
		assert.Equal(t, constvars.RoleSupervisor, result.Role)

		sessionID, err := utils.ParseSessionJWT(result.Token, testJWTSecret)
		assert.NoError(t, err)

		session, err := redisRepository.GetSession(ctx, sessionID)
		assert.NoError(t, err)
		assert.NotNil(t, session)
		assert.Equal(t, "user-1", session.UserID)
		assert.Equal(t, constvars.RoleSupervisor, session.Role)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		uc, userRepo, _ := newTestUsecase(t)
		userRepo.On("FindByEmail", mock.Anything, "sam@clinic.test").Return(staffUser, nil)

		result, err := uc.Login(ctx, &requests.Login{Email: "sam@clinic.test", Password: "wrong"})

		assert.Nil(t, result)
		customErr, ok := err.(*exceptions.CustomError)
		if assert.True(t, ok) {
			assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		}
	})

	t.Run("rejects an unknown email with the same error", func(t *testing.T) {
		uc, userRepo, _ := newTestUsecase(t)
		userRepo.On("FindByEmail", mock.Anything, "nobody@clinic.test").Return(nil, nil)

		result, err := uc.Login(ctx, &requests.Login{Email: "nobody@clinic.test", Password: "whatever"})

		assert.Nil(t, result)
		customErr, ok := err.(*exceptions.CustomError)
		if assert.True(t, ok) {
			assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		}
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	uc, _, redisRepository := newTestUsecase(t)

	session := &models.Session{SessionID: "sess-1", UserID: "user-1"}
	err := redisRepository.CreateSession(ctx, session, 0)
	assert.NoError(t, err)

	err = uc.Logout(ctx, "sess-1")
	assert.NoError(t, err)

	stored, err := redisRepository.GetSession(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Nil(t, stored)
}
