package responses

import "time"

type Patient struct {
	ID                string             `json:"id"`
	FullName          string             `json:"fullName"`
	Email             string             `json:"email,omitempty"`
	PhoneNumber       string             `json:"phoneNumber,omitempty"`
	BirthDate         string             `json:"birthDate,omitempty"`
	Address           string             `json:"address,omitempty"`
	Status            string             `json:"status"`
	AssignedTherapist string             `json:"assignedTherapistId,omitempty"`
	DischargeRequests []DischargeRequest `json:"dischargeRequests,omitempty"`
	HasPendingRequest bool               `json:"hasPendingDischargeRequest"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}
