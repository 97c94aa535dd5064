package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type SyncPrometheusMetrics struct {
	syncOperations *prometheus.CounterVec
}

func newSyncPrometheusMetrics(reg prometheus.Registerer) *SyncPrometheusMetrics {
	mtc := &SyncPrometheusMetrics{
		syncOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weavr_sync_operations_total",
				Help: "Number of sync operations by entity, operation and outcome",
			},
			[]string{"entity", "operation", "outcome"},
		),
	}

	reg.MustRegister(mtc.syncOperations)

	return mtc
}

func (m *SyncPrometheusMetrics) Record(entity, operation, outcome string) {
	if m == nil {
		return
	}

	m.syncOperations.WithLabelValues(entity, operation, outcome).Inc()
}
