package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Pipeline Metrics
var (
	ProfileRebuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProfileRebuilds,
			Help: HelpTextProfileRebuilds,
		},
		[]string{LabelSport, LabelTrigger},
	)

	ProfileRebuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameProfileRebuildTime,
			Help:    HelpTextProfileRebuildTime,
			Buckets: prometheus.DefBuckets,
		},
		[]string{LabelSport},
	)

	ProfileCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfileCacheHits,
			Help: HelpTextProfileCacheHits,
		},
	)

	ProfileCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfileCacheMisses,
			Help: HelpTextProfileCacheMisses,
		},
	)

	ProfileStaleServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfileStaleServed,
			Help: HelpTextProfileStaleServed,
		},
	)

	ProfileRebuildFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProfileRebuildFails,
			Help: HelpTextProfileRebuildFails,
		},
		[]string{LabelSport},
	)

	GraphBuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGraphBuilds,
			Help: HelpTextGraphBuilds,
		},
		[]string{LabelKind},
	)
)
