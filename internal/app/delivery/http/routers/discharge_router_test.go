package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"caremind-service/internal/app/config"
	"caremind-service/internal/app/delivery/http/middlewares"
	"caremind-service/internal/app/models"
	"caremind-service/internal/app/services/core/discharges"
	sharedredis "caremind-service/internal/app/services/shared/redis"
	"caremind-service/internal/pkg/constvars"
	"caremind-service/internal/pkg/dto/requests"
	"caremind-service/internal/pkg/dto/responses"
	"caremind-service/internal/pkg/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockDischargeUsecase struct {
	mock.Mock
}

func (m *MockDischargeUsecase) CreateDischargeRequest(ctx context.Context, session *models.Session, patientID string, request *requests.CreateDischargeRequest) (*responses.DischargeRequest, error) {
	args := m.Called(ctx, session, patientID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.DischargeRequest), args.Error(1)
}

func (m *MockDischargeUsecase) ListPendingDischargeRequests(ctx context.Context, session *models.Session) ([]responses.PendingDischargeRequest, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.PendingDischargeRequest), args.Error(1)
}

func (m *MockDischargeUsecase) ReviewDischargeRequest(ctx context.Context, session *models.Session, patientID, dischargeRequestID string, request *requests.ReviewDischargeRequest) (*responses.DischargeRequest, error) {
	args := m.Called(ctx, session, patientID, dischargeRequestID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.DischargeRequest), args.Error(1)
}

const testJWTSecret = "test-secret"

func newTestRouter(t *testing.T) (*chi.Mux, *MockDischargeUsecase, string) {
	t.Helper()
	logger := zap.NewNop()

	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	redisRepository := sharedredis.NewRedisRepository(client)

	internalConfig := &config.InternalConfig{
		JWT: config.AppJWT{Secret: testJWTSecret, ExpTimeInHour: 1},
	}

	session := &models.Session{
		SessionID: "sess-1",
		UserID:    "user-1",
		FullName:  "Sam Supervisor",
		Role:      constvars.RoleSupervisor,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	err := redisRepository.CreateSession(context.Background(), session, time.Hour)
	assert.NoError(t, err)

	token, err := utils.GenerateSessionJWT("sess-1", testJWTSecret, 1)
	assert.NoError(t, err)

	mockUsecase := new(MockDischargeUsecase)
	dischargeController := discharges.NewDischargeController(logger, mockUsecase)
	middlewareInstance := middlewares.NewMiddlewares(logger, redisRepository, internalConfig)

	router := chi.NewRouter()
	router.Route("/discharge-requests", func(r chi.Router) {
		attachDischargeRoutes(r, middlewareInstance, dischargeController)
	})
	router.Route("/patients", func(r chi.Router) {
		attachPatientDischargeRoutesForTest(r, middlewareInstance, dischargeController)
	})

	return router, mockUsecase, token
}

// Only the discharge subset of the patient routes; the full patient routes
// need a patient controller this test does not exercise.
func attachPatientDischargeRoutesForTest(router chi.Router, middlewareInstance *middlewares.Middlewares, dischargeController *discharges.DischargeController) {
	router.Use(middlewareInstance.Authenticate)
	router.Post("/{patientID}/discharge-requests", dischargeController.CreateDischargeRequest)
	router.Patch("/{patientID}/discharge-requests/{requestID}", dischargeController.ReviewDischargeRequest)
}

func TestDischargeRoutesRequireAuth(t *testing.T) {
	router, mockUsecase, _ := newTestRouter(t)

	endpoints := []struct {
		method string
		path   string
	}{
		{"GET", "/discharge-requests/pending"},
		{"POST", "/patients/p1/discharge-requests"},
		{"PATCH", "/patients/p1/discharge-requests/dr-1"},
	}

	for _, endpoint := range endpoints {
		req := httptest.NewRequest(endpoint.method, endpoint.path, bytes.NewBufferString(`{}`))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s must require auth", endpoint.method, endpoint.path)
	}

	mockUsecase.AssertNotCalled(t, "ListPendingDischargeRequests", mock.Anything, mock.Anything)
	mockUsecase.AssertNotCalled(t, "CreateDischargeRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateDischargeRequestRoute(t *testing.T) {
	router, mockUsecase, token := newTestRouter(t)

	mockUsecase.On("CreateDischargeRequest",
		mock.Anything,
		mock.MatchedBy(func(session *models.Session) bool { return session.UserID == "user-1" }),
		"p1",
		mock.AnythingOfType("*requests.CreateDischargeRequest"),
	).Return(&responses.DischargeRequest{
		ID:        "dr-1",
		PatientID: "p1",
		Status:    constvars.DischargeRequestStatusPending,
	}, nil)

	body, _ := json.Marshal(requests.CreateDischargeRequest{Reason: "treatment goals met"})
	req := httptest.NewRequest("POST", "/patients/p1/discharge-requests", bytes.NewBuffer(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var response responses.ResponseDTO
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.True(t, response.Success)
}

func TestCreateDischargeRequestRouteValidation(t *testing.T) {
	router, mockUsecase, token := newTestRouter(t)

	body, _ := json.Marshal(requests.CreateDischargeRequest{Reason: ""})
	req := httptest.NewRequest("POST", "/patients/p1/discharge-requests", bytes.NewBuffer(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockUsecase.AssertNotCalled(t, "CreateDischargeRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewDischargeRequestRoute(t *testing.T) {
	router, mockUsecase, token := newTestRouter(t)

	mockUsecase.On("ReviewDischargeRequest",
		mock.Anything,
		mock.AnythingOfType("*models.Session"),
		"p1",
		"dr-1",
		mock.AnythingOfType("*requests.ReviewDischargeRequest"),
	).Return(&responses.DischargeRequest{
		ID:        "dr-1",
		PatientID: "p1",
		Status:    constvars.DischargeRequestStatusApproved,
	}, nil)

	body, _ := json.Marshal(requests.ReviewDischargeRequest{Status: constvars.DischargeDecisionApproved})
	req := httptest.NewRequest("PATCH", "/patients/p1/discharge-requests/dr-1", bytes.NewBuffer(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReviewDischargeRequestRouteRejectsBadDecision(t *testing.T) {
	router, mockUsecase, token := newTestRouter(t)

	body, _ := json.Marshal(requests.ReviewDischargeRequest{Status: "maybe"})
	req := httptest.NewRequest("PATCH", "/patients/p1/discharge-requests/dr-1", bytes.NewBuffer(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockUsecase.AssertNotCalled(t, "ReviewDischargeRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
