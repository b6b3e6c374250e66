package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jobboard_http_request_duration_seconds",
			Help:    "Latency of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	Registrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_registrations_total",
			Help: "Accounts registered, by role.",
		},
		[]string{"role"},
	)
	JobsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_jobs_created_total",
			Help: "Job postings created.",
		},
	)
	ApplicationsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_applications_submitted_total",
			Help: "Applications accepted by the ledger.",
		},
	)
	EventPublishFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_event_publish_failures_total",
			Help: "Activity events that could not be published.",
		},
	)
	EventsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_worker_events_total",
			Help: "Activity events handled by the worker, by outcome.",
		},
		[]string{"outcome"},
	)
)

var (
	registry     = prometheus.NewRegistry()
	registerOnce sync.Once
)

// Registry returns the registry holding every collector, registering them on first use
func Registry() *prometheus.Registry {
	registerOnce.Do(func() {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			HTTPRequests,
			HTTPDuration,
			Registrations,
			JobsCreated,
			ApplicationsSubmitted,
			EventPublishFailures,
			EventsRecorded,
		)
	})
	return registry
}

// Handler serves the registry in the Prometheus exposition format
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry(), promhttp.HandlerOpts{})
}
