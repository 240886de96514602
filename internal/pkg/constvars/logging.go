package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingDataKey               = "data"
	LoggingPatientIDKey          = "patient_id"
	LoggingRequestKey            = "request"
	LoggingUserIDKey             = "user_id"
	LoggingDischargeRequestIDKey = "discharge_request_id"
	LoggingNotificationTypeKey   = "notification_type"
	LoggingRedisKey              = "redis_key"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingEventKey              = "event"
	LoggingResourceKey           = "resource"
	LoggingQueueKey              = "queue"
)
