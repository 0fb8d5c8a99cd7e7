package journal

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/forgekit/metric"
)

// journalMetrics holds Prometheus metrics for journal activity.
type journalMetrics struct {
	entries prometheus.Counter
	drops   prometheus.Counter

	size        prometheus.Gauge
	utilization prometheus.Gauge
}

// newJournalMetrics creates and registers journal metrics with the provided registry.
func newJournalMetrics(registry *metric.MetricsRegistry, prefix string) (*journalMetrics, error) {
	m := &journalMetrics{
		entries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "forgekit",
			Subsystem:   "journal",
			Name:        "entries_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of entries recorded in the journal",
		}),
		drops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "forgekit",
			Subsystem:   "journal",
			Name:        "drops_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of entries evicted from a full journal",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "forgekit",
			Subsystem:   "journal",
			Name:        "size",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Current number of entries retained in the journal",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "forgekit",
			Subsystem:   "journal",
			Name:        "utilization",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Journal utilization as a percentage (0.0 to 1.0)",
		}),
	}

	// Register all metrics with the registry
	if err := registry.RegisterCounter(prefix, "journal_entries", m.entries); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "journal_drops", m.drops); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "journal_size", m.size); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "journal_utilization", m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

// recordEntry increments the entry counter and updates size/utilization.
func (m *journalMetrics) recordEntry(size, capacity int) {
	m.entries.Inc()
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}

// recordDrop increments the drop counter.
func (m *journalMetrics) recordDrop() {
	m.drops.Inc()
}

// updateSize sets the current journal size and utilization.
func (m *journalMetrics) updateSize(size, capacity int) {
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}
