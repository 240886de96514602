// Package roles is the review-authority policy gate. It is stateless: each
// function maps a role name to a yes/no answer and never returns an error.
// The usecase and middleware layers translate a false result into the 403
// response at the boundary.
package roles

import "caremind-service/internal/pkg/constvars"

// CanCreateDischargeRequest reports whether a role may file a discharge
// request. Every staff-class role qualifies.
func CanCreateDischargeRequest(role string) bool {
	switch role {
	case constvars.RoleAdmin,
		constvars.RoleSupervisor,
		constvars.RoleTherapist,
		constvars.RoleStaff,
		constvars.RoleFrontdesk:
		return true
	}
	return false
}

// CanReviewDischargeRequest reports whether a role may approve or deny a
// pending request.
func CanReviewDischargeRequest(role string) bool {
	return role == constvars.RoleAdmin || role == constvars.RoleSupervisor
}

// CanViewPendingDischargeRequests gates the pending-request list. The list
// exposes approve/deny actions directly, so viewing takes the same roles as
// deciding.
func CanViewPendingDischargeRequests(role string) bool {
	return CanReviewDischargeRequest(role)
}
