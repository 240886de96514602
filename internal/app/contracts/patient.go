package contracts

import (
	"context"

	"caremind-service/internal/app/models"
	"caremind-service/internal/pkg/dto/requests"
	"caremind-service/internal/pkg/dto/responses"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (patientID string, err error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Patient, int, error)
	UpdatePatient(ctx context.Context, patientID string, updateData map[string]interface{}) error

	// AppendDischargeRequest pushes a pending request onto the patient's
	// embedded list. The write is conditional: it matches only when the
	// patient exists and carries no other pending request.
	AppendDischargeRequest(ctx context.Context, patientID string, request *models.DischargeRequest) (matched bool, err error)

	// ReviewDischargeRequest transitions the embedded request from pending to
	// the terminal status and, when discharging, flips the patient status in
	// the same document write. The update filter matches the request element
	// only while it is still pending, so concurrent reviews cannot both land.
	ReviewDischargeRequest(ctx context.Context, patientID, requestID string, review *models.DischargeRequest, dischargePatient bool) (matched bool, err error)

	FindAllWithPendingDischargeRequests(ctx context.Context) ([]models.Patient, error)
	RestorePatient(ctx context.Context, patientID string) (matched bool, err error)
}

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	GetPatientByID(ctx context.Context, patientID string) (*responses.Patient, error)
	ListPatients(ctx context.Context, page, pageSize int) ([]responses.Patient, int, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
	RestorePatient(ctx context.Context, patientID string) (*responses.Patient, error)
}

type DischargeUsecase interface {
	CreateDischargeRequest(ctx context.Context, session *models.Session, patientID string, request *requests.CreateDischargeRequest) (*responses.DischargeRequest, error)
	ListPendingDischargeRequests(ctx context.Context, session *models.Session) ([]responses.PendingDischargeRequest, error)
	ReviewDischargeRequest(ctx context.Context, session *models.Session, patientID, requestID string, request *requests.ReviewDischargeRequest) (*responses.DischargeRequest, error)
}
