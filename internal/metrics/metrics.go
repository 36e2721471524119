// Package metrics provides Prometheus metrics for the portfolio service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReconciliationsTotal tracks media reconciliations by entity and outcome
	ReconciliationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "media",
			Name:      "reconciliations_total",
			Help:      "Total number of media reconciliations by entity and outcome",
		},
		[]string{"entity", "outcome"},
	)

	// FilesStoredTotal tracks files written to storage
	FilesStoredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "media",
			Name:      "files_stored_total",
			Help:      "Total number of files written to storage by folder",
		},
		[]string{"folder"},
	)

	// FilesDeletedTotal tracks file deletions by result
	FilesDeletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "media",
			Name:      "files_deleted_total",
			Help:      "Total number of file deletions by result",
		},
		[]string{"result"},
	)

	// PurgeTasksEnqueued tracks deletions deferred to the worker
	PurgeTasksEnqueued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "queue",
			Name:      "purge_tasks_enqueued_total",
			Help:      "Total number of file purge tasks enqueued by status",
		},
		[]string{"status"},
	)

	// OrphansFound tracks unreferenced files found by the sweeper
	OrphansFound = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "media",
			Name:      "orphans_found_total",
			Help:      "Total number of unreferenced files found by the orphan sweep",
		},
	)

	// HTTPRequestsTotal tracks inbound HTTP requests
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of inbound HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	// HTTPRequestDuration tracks inbound HTTP request duration
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "portfolio",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of inbound HTTP requests in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)
)
