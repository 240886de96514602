package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"role":     "must be a valid staff role",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process the request"
	ErrClientSomethingWrongWithApplication = "something wrong with the application"
	ErrClientNotAuthorized                 = "you are not authorized to do this action"
	ErrClientNotLoggedIn                   = "you are not logged in"
	ErrClientInvalidUsernameOrPassword     = "invalid email or password"
	ErrClientServerLongRespond             = "server took too long to respond"

	ErrClientPatientNotFound                  = "patient not found"
	ErrClientDischargeRequestNotFound         = "discharge request not found"
	ErrClientDischargeReasonRequired          = "discharge reason is required"
	ErrClientDischargeRequestAlreadyReviewed  = "discharge request has already been reviewed"
	ErrClientDischargeRequestAlreadyPending   = "patient already has a pending discharge request"
	ErrClientDischargeDecisionInvalid         = "decision must be approved or denied"
	ErrClientDischargeReviewInProgress        = "another review of this request is in progress"
	ErrClientPatientNotDischarged             = "patient is not discharged"
	ErrClientNotificationNotFound             = "notification not found"
	ErrClientOnlyOwnNotifications             = "you can only manage your own notifications"
	ErrClientEmailAlreadyUsed                 = "email is already used by another account"
)

// Error messages for developers
const (
	ErrDevValidationFailed               = "struct validation failed"
	ErrDevCannotParseJSON                = "failed to parse JSON request body"
	ErrDevURLParamIDValidationFailed     = "failed to validate URL parameter '%s'"
	ErrDevFailedToHashPassword           = "failed to hash the given password"
	ErrDevInvalidCredentials             = "given credentials are invalid"
	ErrDevServerDeadlineExceeded         = "deadline exceeded"
	ErrDevServerParseSessionData         = "failed to parse session data"

	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalid          = "token invalid"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"
	ErrDevRoleNotPermitted          = "caller role is not permitted for this operation"

	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	ErrDevRedisSetData        = "failed to SET data into redis"
	ErrDevRedisGetData        = "failed to GET data from redis"
	ErrDevRedisGetNoData      = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData     = "failed to DELETE data from redis"

	ErrDevPatientNotExists                  = "patient doesn't exist on the system"
	ErrDevDischargeRequestNotExists         = "discharge request doesn't exist on the patient record"
	ErrDevDischargeRequestNotPending        = "discharge request status is terminal, cannot re-review"
	ErrDevDischargeRequestPendingExists     = "patient already has a discharge request in pending status"
	ErrDevDischargeRequestReasonEmpty       = "discharge request reason is empty"
	ErrDevDischargeRequestReviewLockHeld    = "review lock for this discharge request is held by another caller"
	ErrDevPatientStatusNotDischarged        = "patient status is not discharged, nothing to restore"
	ErrDevNotificationNotExists             = "notification doesn't exist on the system"
	ErrDevNotificationRecipientMismatch     = "notification does not belong to the caller"
	ErrDevUserNotExists                     = "user doesn't exist on the system"
	ErrDevEmailAlreadyUsed                  = "email is already registered to another user"

	ErrDevMailQueuePublish = "failed to publish mail job to queue"
	ErrDevSMTPSendEmail    = "failed to send email through SMTP host '%s'"
)
