package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timetrack"

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.3, 1, 3},
		},
		[]string{"method", "route"},
	)

	InFlightRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "Current number of in-flight HTTP requests",
		},
	)

	TimersStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "timers_started_total",
			Help:      "Timers started",
		},
	)

	// Timers closed because another timer of the same scope was started
	TimersAutoStopped = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "timers_auto_stopped_total",
			Help:      "Running timers stopped by starting another one",
		},
	)

	TimersStopped = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "timers_stopped_total",
			Help:      "Timers stopped explicitly",
		},
	)

	TasksPopulated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_populated_total",
			Help:      "Tasks created from habit templates",
		},
	)

	WorldTimeCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "world_time_cache_lookups_total",
			Help:      "World time cache lookups by result",
		},
		[]string{"result"},
	)
)
