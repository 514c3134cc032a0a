package eventlog

// Log messages - service events
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded, skipping journal entry"
	LogMsgFailedToLogEvent    = "Failed to record journal entry"
	LogMsgEventLogged         = "Journal entry recorded"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting journal cleanup"
	LogMsgCleanupJobFailed    = "Journal cleanup failed"
	LogMsgCleanupJobCompleted = "Journal cleanup completed"
)

// Log field keys
const (
	LogFieldType          = "type"
	LogFieldDay           = "day"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)

// FirstDay is the day a session starts on
const FirstDay = 1
