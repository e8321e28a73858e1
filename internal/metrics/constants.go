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
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Pipeline metric names
const (
	MetricNameProfileRebuilds     = "profile_rebuilds_total"
	MetricNameProfileRebuildTime  = "profile_rebuild_duration_seconds"
	MetricNameProfileCacheHits    = "profile_cache_hits_total"
	MetricNameProfileCacheMisses  = "profile_cache_misses_total"
	MetricNameProfileStaleServed  = "profile_stale_served_total"
	MetricNameProfileRebuildFails = "profile_rebuild_failures_total"
	MetricNameGraphBuilds         = "graph_builds_total"
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
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Pipeline metric help text
const (
	HelpTextProfileRebuilds     = "Total number of profile rebuilds"
	HelpTextProfileRebuildTime  = "Profile rebuild duration in seconds"
	HelpTextProfileCacheHits    = "Total number of profile cache hits"
	HelpTextProfileCacheMisses  = "Total number of profile cache misses"
	HelpTextProfileStaleServed  = "Total number of stale profiles served after a failed rebuild"
	HelpTextProfileRebuildFails = "Total number of failed profile rebuilds"
	HelpTextGraphBuilds         = "Total number of decision graph builds"
)

// ============================================================================
// Metric Labels
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelSport   = "sport"
	LabelTrigger = "trigger"
	LabelKind    = "kind"
)

// Rebuild trigger label values
const (
	TriggerMiss    = "miss"
	TriggerExpired = "expired"
	TriggerForced  = "forced"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
