package metrics

import "github.com/prometheus/client_golang/prometheus"

// SyncMetrics exposes counters for sync engine outcomes.
type SyncMetrics struct {
	mutationsTotal *prometheus.CounterVec
	rollbacksTotal *prometheus.CounterVec
}

func NewSyncMetrics(reg prometheus.Registerer) *SyncMetrics {
	m := &SyncMetrics{
		mutationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinicore",
			Subsystem: "sync",
			Name:      "mutations_total",
			Help:      "Total sync engine mutations by collection and outcome",
		}, []string{"collection", "outcome"}),
		rollbacksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinicore",
			Subsystem: "sync",
			Name:      "rollbacks_total",
			Help:      "Total optimistic writes rolled back after a remote failure",
		}, []string{"collection"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.mutationsTotal, m.rollbacksTotal)
	return m
}

// ObserveMutation records one completed mutation attempt.
func (m *SyncMetrics) ObserveMutation(collection, outcome string) {
	if m == nil {
		return
	}
	m.mutationsTotal.WithLabelValues(collection, outcome).Inc()
}

// ObserveRollback records one rolled-back optimistic write.
func (m *SyncMetrics) ObserveRollback(collection string) {
	if m == nil {
		return
	}
	m.rollbacksTotal.WithLabelValues(collection).Inc()
}
