package patients

import (
	"context"
	"testing"

	"caremind-service/internal/app/models"
	"caremind-service/internal/pkg/constvars"
	"caremind-service/internal/pkg/dto/requests"
	"caremind-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	args := m.Called(ctx, patient)
	return args.String(0), args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Patient, int, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Patient), args.Int(1), args.Error(2)
}

func (m *MockPatientRepository) UpdatePatient(ctx context.Context, patientID string, updateData map[string]interface{}) error {
	args := m.Called(ctx, patientID, updateData)
	return args.Error(0)
}

func (m *MockPatientRepository) AppendDischargeRequest(ctx context.Context, patientID string, request *models.DischargeRequest) (bool, error) {
	args := m.Called(ctx, patientID, request)
	return args.Bool(0), args.Error(1)
}

func (m *MockPatientRepository) ReviewDischargeRequest(ctx context.Context, patientID, requestID string, review *models.DischargeRequest, dischargePatient bool) (bool, error) {
	args := m.Called(ctx, patientID, requestID, review, dischargePatient)
	return args.Bool(0), args.Error(1)
}

func (m *MockPatientRepository) FindAllWithPendingDischargeRequests(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) RestorePatient(ctx context.Context, patientID string) (bool, error) {
	args := m.Called(ctx, patientID)
	return args.Bool(0), args.Error(1)
}

func newTestUsecase() (*patientUsecase, *MockPatientRepository) {
	repo := new(MockPatientRepository)
	uc := &patientUsecase{
		PatientRepository: repo,
		Log:               zap.NewNop(),
	}
	return uc, repo
}

func TestCreatePatient(t *testing.T) {
	uc, repo := newTestUsecase()

	repo.On("CreatePatient", mock.Anything, mock.MatchedBy(func(patient *models.Patient) bool {
		return patient.FullName == "Jane Roe" && patient.Status == constvars.PatientStatusActive
	})).Return("64f000000000000000000001", nil)

	result, err := uc.CreatePatient(context.Background(), &requests.CreatePatient{
		FullName: "Jane Roe",
		Email:    "jane@example.test",
	})

	assert.NoError(t, err)
	assert.Equal(t, "64f000000000000000000001", result.ID)
	assert.Equal(t, constvars.PatientStatusActive, result.Status)
	assert.False(t, result.HasPendingRequest)
}

func TestGetPatientByID(t *testing.T) {
	t.Run("reports a pending request on the record", func(t *testing.T) {
		uc, repo := newTestUsecase()

		repo.On("FindByID", mock.Anything, "p1").Return(&models.Patient{
			ID:       "p1",
			FullName: "Jane Roe",
			Status:   constvars.PatientStatusActive,
			DischargeRequests: []models.DischargeRequest{
				{ID: "dr-1", Status: constvars.DischargeRequestStatusPending},
			},
		}, nil)

		result, err := uc.GetPatientByID(context.Background(), "p1")

		assert.NoError(t, err)
		assert.True(t, result.HasPendingRequest)
		assert.Len(t, result.DischargeRequests, 1)
	})

	t.Run("unknown patient is a 404", func(t *testing.T) {
		uc, repo := newTestUsecase()

		repo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		result, err := uc.GetPatientByID(context.Background(), "missing")

		assert.Nil(t, result)
		customErr, ok := err.(*exceptions.CustomError)
		if assert.True(t, ok) {
			assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		}
	})
}

func TestRestorePatient(t *testing.T) {
	t.Run("restores a discharged patient", func(t *testing.T) {
		uc, repo := newTestUsecase()

		repo.On("RestorePatient", mock.Anything, "p1").Return(true, nil)
		repo.On("FindByID", mock.Anything, "p1").Return(&models.Patient{
			ID:     "p1",
			Status: constvars.PatientStatusActive,
		}, nil)

		result, err := uc.RestorePatient(context.Background(), "p1")

		assert.NoError(t, err)
		assert.Equal(t, constvars.PatientStatusActive, result.Status)
	})

	t.Run("refuses to restore an active patient", func(t *testing.T) {
		uc, repo := newTestUsecase()

		repo.On("RestorePatient", mock.Anything, "p1").Return(false, nil)
		repo.On("FindByID", mock.Anything, "p1").Return(&models.Patient{
			ID:     "p1",
			Status: constvars.PatientStatusActive,
		}, nil)

		result, err := uc.RestorePatient(context.Background(), "p1")

		assert.Nil(t, result)
		customErr, ok := err.(*exceptions.CustomError)
		if assert.True(t, ok) {
			assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		}
	})

	t.Run("unknown patient is a 404", func(t *testing.T) {
		uc, repo := newTestUsecase()

		repo.On("RestorePatient", mock.Anything, "missing").Return(false, nil)
		repo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		result, err := uc.RestorePatient(context.Background(), "missing")

		assert.Nil(t, result)
		customErr, ok := err.(*exceptions.CustomError)
		if assert.True(t, ok) {
			assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		}
	})
}
