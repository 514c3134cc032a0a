package server

// Route paths
const (
	PathHealthz = "/healthz"
	PathVersion = "/version"
	PathMetrics = "/metrics"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Metrics server starting"
	LogMsgServerStopped    = "Metrics server stopped"
	LogMsgRequestCompleted = "Request completed"
)

// HTTP header names
const (
	HeaderContentType        = "Content-Type"
	HeaderContentTypeOptions = "X-Content-Type-Options"
	HeaderFrameOptions       = "X-Frame-Options"
	HeaderXSSProtection      = "X-XSS-Protection"
	HeaderReferrerPolicy     = "Referrer-Policy"
)

// Header values
const (
	HeaderValueJSON                 = "application/json"
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// StatusOK is the health check status value
const StatusOK = "ok"

// ReadHeaderTimeoutSeconds bounds how long a client may take to send headers
const ReadHeaderTimeoutSeconds = 5
