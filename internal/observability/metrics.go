package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "quwatro"

// Metrics holds the Prometheus counters and gauges for store and log
// operations. Each Metrics owns a private registry.
type Metrics struct {
	RecordsInserted *prometheus.CounterVec // labels: module
	RecordsDeleted  *prometheus.CounterVec // labels: module
	LogAppends      *prometheus.CounterVec // labels: log
	OperationErrors *prometheus.CounterVec // labels: module, op
	StoreSize       *prometheus.GaugeVec   // labels: module

	registry *prometheus.Registry
}

// NewMetrics creates the metrics and registers them with a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsInserted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_inserted_total",
			Help:      "Records accepted into a module store.",
		}, []string{"module"}),
		RecordsDeleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_deleted_total",
			Help:      "Records removed from a module store.",
		}, []string{"module"}),
		LogAppends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_appends_total",
			Help:      "Entries appended to a flat-file log.",
		}, []string{"log"}),
		OperationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_errors_total",
			Help:      "Failed store or log operations by module and operation.",
		}, []string{"module", "op"}),
		StoreSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_size",
			Help:      "Records currently held in a module store.",
		}, []string{"module"}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.RecordsInserted,
		m.RecordsDeleted,
		m.LogAppends,
		m.OperationErrors,
		m.StoreSize,
	)
	return m
}

// Registry returns the registry the metrics are registered with.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Inserted records an accepted insert and the resulting store size.
func (m *Metrics) Inserted(module string, size int) {
	m.RecordsInserted.WithLabelValues(module).Inc()
	m.StoreSize.WithLabelValues(module).Set(float64(size))
}

// Deleted records a removal and the resulting store size.
func (m *Metrics) Deleted(module string, size int) {
	m.RecordsDeleted.WithLabelValues(module).Inc()
	m.StoreSize.WithLabelValues(module).Set(float64(size))
}

// Appended counts entries written to the named log.
func (m *Metrics) Appended(log string, entries int) {
	m.LogAppends.WithLabelValues(log).Add(float64(entries))
}

// Failed counts a failed operation.
func (m *Metrics) Failed(module, op string) {
	m.OperationErrors.WithLabelValues(module, op).Inc()
}

// WriteTextfile writes the registry in the text exposition format for the
// node-exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
