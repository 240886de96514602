package models

import (
	"testing"
	"time"

	"caremind-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestPendingDischargeRequest(t *testing.T) {
	reviewedAt := time.Now().Add(-time.Hour)

	t.Run("nil when the patient has no requests", func(t *testing.T) {
		patient := &Patient{}
		assert.Nil(t, patient.PendingDischargeRequest())
	})

	t.Run("nil when every request is terminal", func(t *testing.T) {
		patient := &Patient{
			DischargeRequests: []DischargeRequest{
				{ID: "dr-1", Status: constvars.DischargeRequestStatusDenied, ReviewedAt: &reviewedAt},
				{ID: "dr-2", Status: constvars.DischargeRequestStatusApproved, ReviewedAt: &reviewedAt},
			},
		}
		assert.Nil(t, patient.PendingDischargeRequest())
	})

	t.Run("finds the pending request among terminal ones", func(t *testing.T) {
		patient := &Patient{
			DischargeRequests: []DischargeRequest{
				{ID: "dr-1", Status: constvars.DischargeRequestStatusDenied, ReviewedAt: &reviewedAt},
				{ID: "dr-2", Status: constvars.DischargeRequestStatusPending},
			},
		}
		pending := patient.PendingDischargeRequest()
		assert.NotNil(t, pending)
		assert.Equal(t, "dr-2", pending.ID)
	})
}

func TestFindDischargeRequest(t *testing.T) {
	patient := &Patient{
		DischargeRequests: []DischargeRequest{
			{ID: "dr-1", Status: constvars.DischargeRequestStatusDenied},
			{ID: "dr-2", Status: constvars.DischargeRequestStatusPending},
		},
	}

	found := patient.FindDischargeRequest("dr-2")
	assert.NotNil(t, found)
	assert.Equal(t, "dr-2", found.ID)

	assert.Nil(t, patient.FindDischargeRequest("missing"))

	// The returned pointer aliases the slice element, so callers can update in
	// place after a successful store write.
	found.Status = constvars.DischargeRequestStatusApproved
	assert.Equal(t, constvars.DischargeRequestStatusApproved, patient.DischargeRequests[1].Status)
}

func TestIsPending(t *testing.T) {
	assert.True(t, (&DischargeRequest{Status: constvars.DischargeRequestStatusPending}).IsPending())
	assert.False(t, (&DischargeRequest{Status: constvars.DischargeRequestStatusApproved}).IsPending())
	assert.False(t, (&DischargeRequest{Status: constvars.DischargeRequestStatusDenied}).IsPending())
	assert.False(t, (&DischargeRequest{}).IsPending())
}
