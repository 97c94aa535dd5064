package metrics

import (
	"database/sql"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

//go:generate mockgen -source=metrics.go -destination=mock/metrics.go -package=mock
type Metrics interface {
	RegisterDB(db *sql.DB, role string, dbName string) error
	PrometheusRegisterer() prometheus.Registerer
	GetHTTPClientPrometheus() *HTTPClientPrometheusMetrics
	GetSyncPrometheus() *SyncPrometheusMetrics
	GetWebhookPrometheus() *WebhookPrometheusMetrics
}

type metrics struct {
	reg               prometheus.Registerer
	httpClientMetrics *HTTPClientPrometheusMetrics
	syncMetrics       *SyncPrometheusMetrics
	webhookMetrics    *WebhookPrometheusMetrics
}

func New() Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers all collectors on the given registerer.
// Tests pass a fresh prometheus.NewRegistry() to avoid duplicate
// registration panics on the global one.
func NewWithRegisterer(reg prometheus.Registerer) Metrics {
	return &metrics{
		reg:               reg,
		httpClientMetrics: newHTTPClientPrometheusMetrics(reg),
		syncMetrics:       newSyncPrometheusMetrics(reg),
		webhookMetrics:    newWebhookPrometheusMetrics(reg),
	}
}

func (m *metrics) RegisterDB(db *sql.DB, role string, dbName string) error {
	return m.reg.Register(collectors.NewDBStatsCollector(db, fmt.Sprintf("%s_%s", dbName, role)))
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) GetHTTPClientPrometheus() *HTTPClientPrometheusMetrics {
	return m.httpClientMetrics
}

func (m *metrics) GetSyncPrometheus() *SyncPrometheusMetrics {
	return m.syncMetrics
}

func (m *metrics) GetWebhookPrometheus() *WebhookPrometheusMetrics {
	return m.webhookMetrics
}
