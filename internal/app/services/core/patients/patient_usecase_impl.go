package patients

import (
	"context"
	"sync"
	"time"

	"caremind-service/internal/app/contracts"
	"caremind-service/internal/app/models"
	"caremind-service/internal/pkg/constvars"
	"caremind-service/internal/pkg/dto/requests"
	"caremind-service/internal/pkg/dto/responses"
	"caremind-service/internal/pkg/exceptions"
	"caremind-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientRepository: patientRepository,
			Log:               logger,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := time.Now()
	patient := &models.Patient{
		FullName:          request.FullName,
		Email:             request.Email,
		PhoneNumber:       request.PhoneNumber,
		BirthDate:         request.BirthDate,
		Address:           request.Address,
		Status:            constvars.PatientStatusActive,
		AssignedTherapist: request.AssignedTherapist,
		TimeModel:         models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}
	patient.ID = patientID

	return utils.MapPatientToResponse(patient), nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.GetPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	return utils.MapPatientToResponse(patient), nil
}

func (uc *patientUsecase) ListPatients(ctx context.Context, page, pageSize int) ([]responses.Patient, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, total, err := uc.PatientRepository.FindAll(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		result = append(result, *utils.MapPatientToResponse(&patients[i]))
	}
	return result, total, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	updateData := map[string]interface{}{
		"fullName":            request.FullName,
		"email":               request.Email,
		"phoneNumber":         request.PhoneNumber,
		"birthDate":           request.BirthDate,
		"address":             request.Address,
		"assignedTherapistId": request.AssignedTherapist,
	}
	err = uc.PatientRepository.UpdatePatient(ctx, patientID, updateData)
	if err != nil {
		return nil, err
	}

	updated, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return utils.MapPatientToResponse(updated), nil
}

func (uc *patientUsecase) RestorePatient(ctx context.Context, patientID string) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.RestorePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	matched, err := uc.PatientRepository.RestorePatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !matched {
		patient, err := uc.PatientRepository.FindByID(ctx, patientID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, exceptions.ErrPatientNotExist(nil)
		}
		return nil, exceptions.ErrPatientNotDischarged(nil)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return utils.MapPatientToResponse(patient), nil
}
