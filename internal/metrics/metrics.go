// Package metrics holds the prometheus collectors for availability checks
// and alert lifecycle transitions. A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "brewops_lots"

type Metrics struct {
	resolveTotal     *prometheus.CounterVec
	resolveDuration  prometheus.Histogram
	cacheLookups     *prometheus.CounterVec
	transitionsTotal *prometheus.CounterVec
	integrityErrors  prometheus.Counter
	alertsIngested   *prometheus.CounterVec
	alertsArchived   prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		resolveTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_resolve_total",
			Help:      "Availability resolutions by outcome.",
		}, []string{"outcome"}),
		resolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "availability_resolve_duration_seconds",
			Help:      "Latency of availability resolutions.",
			Buckets:   prometheus.DefBuckets,
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_cache_lookups_total",
			Help:      "Availability cache lookups by result.",
		}, []string{"result"}),
		transitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_transitions_total",
			Help:      "Alert lifecycle transitions by target status and outcome.",
		}, []string{"transition", "outcome"}),
		integrityErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "data_integrity_errors_total",
			Help:      "Lots observed with reserved quantity exceeding received quantity.",
		}),
		alertsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_ingested_total",
			Help:      "Alerts created by severity.",
		}, []string{"severity"}),
		alertsArchived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_archived_total",
			Help:      "Resolved alerts moved to archived by the retention sweep.",
		}),
	}
	reg.MustRegister(
		m.resolveTotal,
		m.resolveDuration,
		m.cacheLookups,
		m.transitionsTotal,
		m.integrityErrors,
		m.alertsIngested,
		m.alertsArchived,
	)
	return m
}

func (m *Metrics) ObserveResolve(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.resolveTotal.WithLabelValues(outcome).Inc()
	m.resolveDuration.Observe(d.Seconds())
}

func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) Transition(transition, outcome string) {
	if m == nil {
		return
	}
	m.transitionsTotal.WithLabelValues(transition, outcome).Inc()
}

func (m *Metrics) IntegrityError() {
	if m == nil {
		return
	}
	m.integrityErrors.Inc()
}

func (m *Metrics) AlertIngested(severity string) {
	if m == nil {
		return
	}
	m.alertsIngested.WithLabelValues(severity).Inc()
}

func (m *Metrics) AlertArchived() {
	if m == nil {
		return
	}
	m.alertsArchived.Inc()
}
