package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished     = "events_published_total"
	MetricNameEventDecodeFailures = "event_decode_failures_total"
)

// Game metric names
const (
	MetricNameItemsBought      = "items_bought_total"
	MetricNameItemsSold        = "items_sold_total"
	MetricNameMerges           = "merges_total"
	MetricNamePotionsCrafted   = "potions_crafted_total"
	MetricNameCoinsEarned      = "coins_earned_total"
	MetricNameCoinsSpent       = "coins_spent_total"
	MetricNamePhaseTransitions = "phase_transitions_total"
	MetricNameDaysAdvanced     = "days_advanced_total"
	MetricNameCoinBalance      = "coin_balance"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished     = "Total number of events published"
	HelpTextEventDecodeFailures = "Total number of events whose payload could not be decoded"
)

// Game metric help text
const (
	HelpTextItemsBought      = "Total number of items bought from markets"
	HelpTextItemsSold        = "Total number of inventory entries sold"
	HelpTextMerges           = "Total number of merge attempts by outcome"
	HelpTextPotionsCrafted   = "Total number of potions produced by merging"
	HelpTextCoinsEarned      = "Total coins earned from selling"
	HelpTextCoinsSpent       = "Total coins spent buying"
	HelpTextPhaseTransitions = "Total number of phase transitions by target phase"
	HelpTextDaysAdvanced     = "Total number of days ended"
	HelpTextCoinBalance      = "Coin balance after the most recent trade"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelItem    = "item"
	LabelMarket  = "market"
	LabelOutcome = "outcome"
	LabelPotion  = "potion"
	LabelPhase   = "phase"
)

// Merge outcome label values
const (
	OutcomeMatched = "matched"
	OutcomeWasted  = "wasted"
)

// UnmatchedRoute labels requests no route pattern matched
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
