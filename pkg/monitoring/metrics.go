package monitoring

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector manages Prometheus metrics for a batch component. Each
// collector owns its registry so repeated runs in one process don't collide.
type MetricsCollector struct {
	serviceName string
	registry    *prometheus.Registry
	serviceInfo *prometheus.GaugeVec

	customMetrics map[string]prometheus.Collector
}

// NewMetricsCollector creates a new metrics collector for a component
func NewMetricsCollector(serviceName, version, commit string) *MetricsCollector {
	// Sanitize service name for Prometheus (replace hyphens with underscores)
	sanitizedServiceName := strings.ReplaceAll(serviceName, "-", "_")

	mc := &MetricsCollector{
		serviceName:   sanitizedServiceName,
		registry:      prometheus.NewRegistry(),
		customMetrics: make(map[string]prometheus.Collector),
	}

	mc.serviceInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: mc.serviceName + "_service_info",
			Help: "Service information",
		},
		[]string{"version", "commit"},
	)
	mc.registry.MustRegister(mc.serviceInfo)
	mc.serviceInfo.WithLabelValues(version, commit).Set(1)

	return mc
}

// Registry exposes the underlying registry as a Gatherer.
func (mc *MetricsCollector) Registry() prometheus.Gatherer {
	return mc.registry
}

// RegisterCustomMetric registers a custom Prometheus metric
func (mc *MetricsCollector) RegisterCustomMetric(name string, metric prometheus.Collector) {
	mc.customMetrics[name] = metric
	mc.registry.MustRegister(metric)
}

// NewCounter creates a new counter metric for the component
func (mc *MetricsCollector) NewCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: mc.serviceName + "_" + name,
			Help: help,
		},
		labels,
	)
	mc.RegisterCustomMetric(name, counter)
	return counter
}

// NewGauge creates a new gauge metric for the component
func (mc *MetricsCollector) NewGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: mc.serviceName + "_" + name,
			Help: help,
		},
		labels,
	)
	mc.RegisterCustomMetric(name, gauge)
	return gauge
}

// WriteTextfile dumps every registered metric to path in the text exposition
// format read by node_exporter's textfile collector. The write goes through a
// temp file and rename, so a scraper never sees a partial file.
func (mc *MetricsCollector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, mc.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
