package utils

import (
	"caremind-service/internal/app/models"
	"caremind-service/internal/pkg/dto/responses"
)

func MapPatientToResponse(patient *models.Patient) *responses.Patient {
	resp := &responses.Patient{
		ID:                patient.ID,
		FullName:          patient.FullName,
		Email:             patient.Email,
		PhoneNumber:       patient.PhoneNumber,
		BirthDate:         patient.BirthDate,
		Address:           patient.Address,
		Status:            patient.Status,
		AssignedTherapist: patient.AssignedTherapist,
		HasPendingRequest: patient.PendingDischargeRequest() != nil,
		CreatedAt:         patient.CreatedAt,
		UpdatedAt:         patient.UpdatedAt,
	}
	for i := range patient.DischargeRequests {
		resp.DischargeRequests = append(resp.DischargeRequests, MapDischargeRequestToResponse(patient.ID, &patient.DischargeRequests[i]))
	}
	return resp
}

func MapDischargeRequestToResponse(patientID string, request *models.DischargeRequest) responses.DischargeRequest {
	return responses.DischargeRequest{
		ID:          request.ID,
		PatientID:   patientID,
		RequestedBy: request.RequestedBy,
		RequestedAt: request.RequestedAt,
		Reason:      request.Reason,
		Status:      request.Status,
		ReviewedBy:  request.ReviewedBy,
		ReviewedAt:  request.ReviewedAt,
		ReviewNotes: request.ReviewNotes,
	}
}

func MapNotificationToResponse(notification *models.Notification) responses.Notification {
	return responses.Notification{
		ID:        notification.ID,
		Type:      notification.Type,
		Title:     notification.Title,
		Message:   notification.Message,
		Read:      notification.Read,
		Data:      notification.Data,
		CreatedAt: notification.CreatedAt,
	}
}

func MapUserToResponse(user *models.User) *responses.User {
	return &responses.User{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
	}
}
