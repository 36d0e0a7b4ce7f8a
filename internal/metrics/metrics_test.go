package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestTransitionCounter(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.Transition("acknowledged", "ok")
	m.Transition("acknowledged", "conflict")
	m.Transition("acknowledged", "conflict")

	if got := testutil.ToFloat64(m.transitionsTotal.WithLabelValues("acknowledged", "conflict")); got != 2 {
		t.Fatalf("expected 2 conflicts, got %v", got)
	}
}

func TestResolveAndCacheCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveResolve("available", 3*time.Millisecond)
	m.CacheLookup(true)
	m.CacheLookup(false)
	m.IntegrityError()

	if got := testutil.ToFloat64(m.resolveTotal.WithLabelValues("available")); got != 1 {
		t.Fatalf("expected 1 resolve, got %v", got)
	}
	if got := testutil.ToFloat64(m.cacheLookups.WithLabelValues("hit")); got != 1 {
		t.Fatalf("expected 1 hit, got %v", got)
	}
	if got := testutil.ToFloat64(m.integrityErrors); got != 1 {
		t.Fatalf("expected 1 integrity error, got %v", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.Transition("resolved", "ok")
	m.ObserveResolve("available", time.Second)
	m.AlertArchived()
}
