package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type WebhookPrometheusMetrics struct {
	webhookEvents       *prometheus.CounterVec
	webhookDurationHist *prometheus.HistogramVec
}

func newWebhookPrometheusMetrics(reg prometheus.Registerer) *WebhookPrometheusMetrics {
	mtc := &WebhookPrometheusMetrics{
		webhookEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weavr_webhook_events_total",
				Help: "Number of processed webhook events by type and outcome",
			},
			[]string{"type", "outcome"},
		),
		webhookDurationHist: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weavr_webhook_processing_duration_seconds",
				Help:    "Duration of webhook event processing in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"type"},
		),
	}

	reg.MustRegister(mtc.webhookEvents)
	reg.MustRegister(mtc.webhookDurationHist)

	return mtc
}

func (m *WebhookPrometheusMetrics) Record(eventType, outcome string, duration time.Duration) {
	if m == nil {
		return
	}

	m.webhookEvents.WithLabelValues(eventType, outcome).Inc()
	m.webhookDurationHist.WithLabelValues(eventType).Observe(duration.Seconds())
}
