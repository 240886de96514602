package models

import (
	"time"

	"caremind-service/internal/pkg/constvars"
)

// Patient is the aggregate root for a practice patient. Discharge requests
// are embedded so that a request transition and the patient status change it
// implies land in a single document write.
type Patient struct {
	ID                string             `bson:"_id,omitempty"`
	FullName          string             `bson:"fullName"`
	Email             string             `bson:"email,omitempty"`
	PhoneNumber       string             `bson:"phoneNumber,omitempty"`
	BirthDate         string             `bson:"birthDate,omitempty"`
	Address           string             `bson:"address,omitempty"`
	Status            string             `bson:"status"`
	AssignedTherapist string             `bson:"assignedTherapistId,omitempty"`
	DischargeRequests []DischargeRequest `bson:"dischargeRequests,omitempty"`
	TimeModel         `bson:",inline"`
}

// DischargeRequest lives inside the Patient document. Once a request leaves
// pending it is never mutated again; it stays on the record as an audit trail
// even if the patient is later restored.
type DischargeRequest struct {
	ID          string     `bson:"id"`
	RequestedBy string     `bson:"requestedBy"`
	RequestedAt time.Time  `bson:"requestedAt"`
	Reason      string     `bson:"reason"`
	Status      string     `bson:"status"`
	ReviewedBy  string     `bson:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time `bson:"reviewedAt,omitempty"`
	ReviewNotes string     `bson:"reviewNotes,omitempty"`
}

func (r *DischargeRequest) IsPending() bool {
	return r.Status == constvars.DischargeRequestStatusPending
}

func (p *Patient) PendingDischargeRequest() *DischargeRequest {
	for i := range p.DischargeRequests {
		if p.DischargeRequests[i].IsPending() {
			return &p.DischargeRequests[i]
		}
	}
	return nil
}

func (p *Patient) FindDischargeRequest(requestID string) *DischargeRequest {
	for i := range p.DischargeRequests {
		if p.DischargeRequests[i].ID == requestID {
			return &p.DischargeRequests[i]
		}
	}
	return nil
}
