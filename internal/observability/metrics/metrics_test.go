package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveMutation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSyncMetrics(reg)

	m.ObserveMutation("patients", "success")
	m.ObserveMutation("patients", "success")
	m.ObserveMutation("patients", "remote_error")

	if got := testutil.ToFloat64(m.mutationsTotal.WithLabelValues("patients", "success")); got != 2 {
		t.Errorf("success count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.mutationsTotal.WithLabelValues("patients", "remote_error")); got != 1 {
		t.Errorf("remote_error count = %v, want 1", got)
	}
}

func TestObserveRollback(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSyncMetrics(reg)

	m.ObserveRollback("invoices")

	if got := testutil.ToFloat64(m.rollbacksTotal.WithLabelValues("invoices")); got != 1 {
		t.Errorf("rollback count = %v, want 1", got)
	}
}

func TestNilReceiverIsSafe(t *testing.T) {
	var m *SyncMetrics
	m.ObserveMutation("patients", "success")
	m.ObserveRollback("patients")
}
