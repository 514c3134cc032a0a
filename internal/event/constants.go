package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Log message constants
const (
	// LogMsgHandlerErrorFormat reports handler failures collected during Publish
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
