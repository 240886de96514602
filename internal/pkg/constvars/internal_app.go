package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY   ContextKey = "session_id"
)

const (
	REQUEST_ID_PREFIX = "CRMND_SVC_"
)

// Staff roles. Patients do not have accounts; every authenticated caller
// holds exactly one of these.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleTherapist  = "therapist"
	RoleStaff      = "staff"
	RoleFrontdesk  = "frontdesk"
)

const (
	MongoCollectionPatients      = "patients"
	MongoCollectionUsers         = "users"
	MongoCollectionNotifications = "notifications"
)

const (
	PatientStatusActive     = "active"
	PatientStatusDischarged = "discharged"
)

const (
	DischargeRequestStatusPending  = "pending"
	DischargeRequestStatusApproved = "approved"
	DischargeRequestStatusDenied   = "denied"
)

const (
	DischargeDecisionApproved = "approved"
	DischargeDecisionDenied   = "denied"
)

const (
	NotificationTypeDischargeRequestCreated  = "discharge_request_created"
	NotificationTypeDischargeRequestApproved = "discharge_request_approved"
	NotificationTypeDischargeRequestDenied   = "discharge_request_denied"
	NotificationTypePendingRequestsReminder  = "pending_requests_reminder"
)

// Realtime event names pushed over the websocket hub. Payloads are advisory;
// clients refetch the resource key they carry.
const (
	RealtimeEventDischargeRequestCreated = "discharge_request_created"
	RealtimeEventDischargeRequestUpdated = "discharge_request_updated"
	RealtimeEventNotificationCreated     = "notification_created"
)

// Resource keys clients use to invalidate cached queries.
const (
	ResourceKeyPendingDischargeRequests = "discharge-requests:pending"
	ResourceKeyPatientFormat            = "patients:%s"
	ResourceKeyNotificationsFormat      = "notifications:%s"
)

const (
	RedisSessionKeyFormat      = "session:%s"
	RedisPendingCountKey       = "discharge-requests:pending-count"
	RedisReviewLockKeyFormat   = "lock:discharge-review:%s:%s"
	RedisLoginAttemptKeyFormat = "login-attempts:%s"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)
