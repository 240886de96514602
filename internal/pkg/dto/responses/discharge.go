package responses

import "time"

type DischargeRequest struct {
	ID          string     `json:"id"`
	PatientID   string     `json:"patientId"`
	RequestedBy string     `json:"requestedBy"`
	RequestedAt time.Time  `json:"requestedAt"`
	Reason      string     `json:"reason"`
	Status      string     `json:"status"`
	ReviewedBy  string     `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
	ReviewNotes string     `json:"reviewNotes,omitempty"`
}

// PendingDischargeRequest annotates a pending request with the denormalized
// names the review list displays.
type PendingDischargeRequest struct {
	DischargeRequest
	PatientName      string `json:"patientName"`
	RequestedByName  string `json:"requestedByName"`
	RequestedByRole  string `json:"requestedByRole,omitempty"`
	PatientTherapist string `json:"patientTherapistId,omitempty"`
}
