package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "apt"

// Collector is a prometheus.Collector for the billing and notification core.
// A nil *Collector is valid and records nothing.
type Collector struct {
	httpRequests         *prometheus.CounterVec
	httpDuration         *prometheus.HistogramVec
	storeChanges         *prometheus.CounterVec
	chargeTransitions    *prometheus.CounterVec
	notificationsEmitted *prometheus.CounterVec
	schedulerRuns        *prometheus.CounterVec
	skippedCharges       prometheus.Counter
	dashboardRecomputes  prometheus.Counter
}

// NewMetricsCollector returns a new Collector.
func NewMetricsCollector() *Collector {
	return &Collector{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "The number of HTTP requests served.",
			}, []string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "http_request_duration_seconds",
				Help:      "The time taken to serve an HTTP request.",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			}, []string{"method", "route"},
		),
		storeChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "store_changes_total",
				Help:      "The number of change signals published per collection.",
			}, []string{"collection"},
		),
		chargeTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "charge_transitions_total",
				Help:      "The number of charge writes per lifecycle operation and outcome.",
			}, []string{"operation", "outcome"},
		),
		notificationsEmitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "notifications_emitted_total",
				Help:      "The number of notifications created per type.",
			}, []string{"type"},
		),
		schedulerRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "scheduler_runs_total",
				Help:      "The number of scheduled job runs per job and final status.",
			}, []string{"job", "status"},
		),
		skippedCharges: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "skipped_charges_total",
				Help:      "The number of malformed charge records left out of aggregation.",
			},
		),
		dashboardRecomputes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "dashboard_recomputes_total",
				Help:      "The number of dashboard recomputations.",
			},
		),
	}
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.httpRequests.Describe(ch)
	c.httpDuration.Describe(ch)
	c.storeChanges.Describe(ch)
	c.chargeTransitions.Describe(ch)
	c.notificationsEmitted.Describe(ch)
	c.schedulerRuns.Describe(ch)
	c.skippedCharges.Describe(ch)
	c.dashboardRecomputes.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.httpRequests.Collect(ch)
	c.httpDuration.Collect(ch)
	c.storeChanges.Collect(ch)
	c.chargeTransitions.Collect(ch)
	c.notificationsEmitted.Collect(ch)
	c.schedulerRuns.Collect(ch)
	c.skippedCharges.Collect(ch)
	c.dashboardRecomputes.Collect(ch)
}

// ObserveRequest records one served HTTP request.
func (c *Collector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// StoreChanged counts a change signal for a collection.
func (c *Collector) StoreChanged(collection string) {
	if c == nil {
		return
	}
	c.storeChanges.WithLabelValues(collection).Inc()
}

// ChargeWrites counts charge writes for an operation.
func (c *Collector) ChargeWrites(operation string, succeeded, failed int) {
	if c == nil {
		return
	}
	c.chargeTransitions.WithLabelValues(operation, "ok").Add(float64(succeeded))
	c.chargeTransitions.WithLabelValues(operation, "failed").Add(float64(failed))
}

// NotificationEmitted counts a created notification.
func (c *Collector) NotificationEmitted(notificationType string) {
	if c == nil {
		return
	}
	c.notificationsEmitted.WithLabelValues(notificationType).Inc()
}

// SchedulerRun counts a finished scheduler run.
func (c *Collector) SchedulerRun(job, status string) {
	if c == nil {
		return
	}
	c.schedulerRuns.WithLabelValues(job, status).Inc()
}

// ChargesSkipped counts malformed records dropped by the aggregator.
func (c *Collector) ChargesSkipped(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.skippedCharges.Add(float64(n))
}

// DashboardRecomputed counts one dashboard recomputation.
func (c *Collector) DashboardRecomputed() {
	if c == nil {
		return
	}
	c.dashboardRecomputes.Inc()
}
