package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"

	// User-related messages
	ProfileGetSuccess    = "get profile successfully"
	ProfileUpdateSuccess = "profile updated successfully"

	// Patient-related messages
	PatientCreatedSuccess  = "patient created successfully"
	PatientUpdatedSuccess  = "patient updated successfully"
	PatientGetSuccess      = "get patient successfully"
	PatientListSuccess     = "get patients successfully"
	PatientRestoredSuccess = "patient restored successfully"

	// Discharge request messages
	DischargeRequestCreatedSuccess  = "discharge request submitted successfully"
	DischargeRequestReviewedSuccess = "discharge request reviewed successfully"
	DischargeRequestListSuccess     = "get pending discharge requests successfully"

	// Notification messages
	NotificationListSuccess    = "get notifications successfully"
	NotificationReadSuccess    = "notification marked as read"
	NotificationReadAllSuccess = "all notifications marked as read"
	NotificationDeleteSuccess  = "notification deleted successfully"
)
