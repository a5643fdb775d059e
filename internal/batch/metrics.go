package batch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"frameworks/topup/internal/models"
	"frameworks/topup/pkg/monitoring"
	"frameworks/topup/pkg/version"
)

// Metrics are the per-run counters exported by the batch.
type Metrics struct {
	collector *monitoring.MetricsCollector

	UsersToppedUp      *prometheus.CounterVec
	TokensGranted      *prometheus.GaugeVec
	CompaniesReported  *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	LastSuccess        *prometheus.GaugeVec
}

// NewMetrics registers the batch metrics on a fresh collector.
func NewMetrics() *Metrics {
	mc := monitoring.NewMetricsCollector(version.ComponentName, version.Version, version.GitCommit)
	return &Metrics{
		collector:          mc,
		UsersToppedUp:      mc.NewCounter("users_topped_up_total", "Users whose balance was topped up", []string{"notification"}),
		TokensGranted:      mc.NewGauge("tokens_granted", "Net tokens added across all users; top-ups may be negative", nil),
		CompaniesReported:  mc.NewCounter("companies_reported_total", "Companies with at least one eligible user", nil),
		ValidationFailures: mc.NewCounter("validation_failures_total", "Input datasets rejected by validation", []string{"dataset"}),
		LastSuccess:        mc.NewGauge("last_success_timestamp_seconds", "Unix time of the last successful run", nil),
	}
}

func (m *Metrics) observeReports(reports []models.CompanyReport) {
	for _, r := range reports {
		m.CompaniesReported.WithLabelValues().Inc()
		m.UsersToppedUp.WithLabelValues("emailed").Add(float64(len(r.UsersEmailed)))
		m.UsersToppedUp.WithLabelValues("not_emailed").Add(float64(len(r.UsersNotEmailed)))
		m.TokensGranted.WithLabelValues().Add(float64(r.TotalTopUps))
	}
}

func (m *Metrics) observeSuccess(at time.Time) {
	m.LastSuccess.WithLabelValues().Set(float64(at.Unix()))
}

// WriteTextfile exports the metrics to path.
func (m *Metrics) WriteTextfile(path string) error {
	return m.collector.WriteTextfile(path)
}
