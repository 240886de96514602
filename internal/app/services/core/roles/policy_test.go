package roles

import (
	"testing"

	"caremind-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestCanCreateDischargeRequest(t *testing.T) {
	for _, role := range []string{
		constvars.RoleAdmin,
		constvars.RoleSupervisor,
		constvars.RoleTherapist,
		constvars.RoleStaff,
		constvars.RoleFrontdesk,
	} {
		assert.True(t, CanCreateDischargeRequest(role), "role %s should be able to create", role)
	}

	assert.False(t, CanCreateDischargeRequest(""))
	assert.False(t, CanCreateDischargeRequest("patient"))
	assert.False(t, CanCreateDischargeRequest("superuser"))
}

func TestCanReviewDischargeRequest(t *testing.T) {
	assert.True(t, CanReviewDischargeRequest(constvars.RoleAdmin))
	assert.True(t, CanReviewDischargeRequest(constvars.RoleSupervisor))

	assert.False(t, CanReviewDischargeRequest(constvars.RoleTherapist))
	assert.False(t, CanReviewDischargeRequest(constvars.RoleStaff))
	assert.False(t, CanReviewDischargeRequest(constvars.RoleFrontdesk))
	assert.False(t, CanReviewDischargeRequest(""))
}

func TestCanViewPendingDischargeRequests(t *testing.T) {
	// Viewing the pending queue takes the same authority as deciding on it.
	for _, role := range []string{
		constvars.RoleAdmin,
		constvars.RoleSupervisor,
		constvars.RoleTherapist,
		constvars.RoleStaff,
		constvars.RoleFrontdesk,
	} {
		assert.Equal(t, CanReviewDischargeRequest(role), CanViewPendingDischargeRequests(role))
	}
}
