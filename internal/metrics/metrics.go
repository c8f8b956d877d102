// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// ChatsDeletedTotal tracks chats removed through the delete cascade.
	ChatsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chats_deleted_total",
			Help: "Total chats deleted",
		},
	)

	// MessagesSavedTotal tracks messages persisted per role.
	MessagesSavedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_saved_total",
			Help: "Total messages persisted",
		},
		[]string{"role"},
	)

	// VotesTotal tracks vote upserts per direction.
	VotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "votes_total",
			Help: "Total vote upserts",
		},
		[]string{"type"},
	)

	// DocumentVersionsTotal tracks document versions written per kind.
	DocumentVersionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_versions_total",
			Help: "Total document versions written",
		},
		[]string{"kind"},
	)
)

// RecordRequest records metrics for a completed HTTP request.
func RecordRequest(method, path string, status int, duration float64) {
	code := strconv.Itoa(status)
	RequestDuration.WithLabelValues(method, path, code).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, code).Inc()
}
