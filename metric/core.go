package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all framework-level metrics (not domain-specific)
type Metrics struct {
	// Construction metrics
	ConstructionsTotal   *prometheus.CounterVec
	ConstructionDuration *prometheus.HistogramVec
	RegisteredKeys       *prometheus.GaugeVec
	ErrorsTotal          *prometheus.CounterVec

	// Singleton metrics
	SingletonRequests *prometheus.CounterVec
	ActiveSingletons  prometheus.Gauge

	// Builder metrics
	BuildsTotal  *prometheus.CounterVec
	StepsApplied prometheus.Counter
}

// NewMetrics creates a new Metrics instance with all framework metrics
func NewMetrics() *Metrics {
	return &Metrics{
		// Construction metrics
		ConstructionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "forgekit",
				Subsystem: "constructions",
				Name:      "total",
				Help:      "Total number of construction attempts",
			},
			[]string{"component", "outcome"},
		),

		ConstructionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "forgekit",
				Subsystem: "constructions",
				Name:      "duration_seconds",
				Help:      "Constructor invocation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"component"},
		),

		RegisteredKeys: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "forgekit",
				Subsystem: "registry",
				Name:      "keys",
				Help:      "Number of registered construction keys",
			},
			[]string{"component"},
		),

		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "forgekit",
				Subsystem: "errors",
				Name:      "total",
				Help:      "Total number of construction errors",
			},
			[]string{"component", "class"},
		),

		// Singleton metrics
		SingletonRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "forgekit",
				Subsystem: "singleton",
				Name:      "requests_total",
				Help:      "Total singleton slot requests by result (hit or miss)",
			},
			[]string{"result"},
		),

		ActiveSingletons: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "forgekit",
				Subsystem: "singleton",
				Name:      "active",
				Help:      "Number of populated singleton slots",
			},
		),

		// Builder metrics
		BuildsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "forgekit",
				Subsystem: "builder",
				Name:      "builds_total",
				Help:      "Total number of finalized builds by outcome",
			},
			[]string{"outcome"},
		),

		StepsApplied: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "forgekit",
				Subsystem: "builder",
				Name:      "steps_applied_total",
				Help:      "Total number of builder steps applied",
			},
		),
	}
}

// RecordConstruction increments the construction counter
func (c *Metrics) RecordConstruction(component, outcome string) {
	c.ConstructionsTotal.WithLabelValues(component, outcome).Inc()
}

// RecordConstructionDuration records constructor invocation time
func (c *Metrics) RecordConstructionDuration(component string, duration time.Duration) {
	c.ConstructionDuration.WithLabelValues(component).Observe(duration.Seconds())
}

// SetRegisteredKeys updates the registered key gauge for a component
func (c *Metrics) SetRegisteredKeys(component string, count int) {
	c.RegisteredKeys.WithLabelValues(component).Set(float64(count))
}

// RecordError increments the error counter
func (c *Metrics) RecordError(component, class string) {
	c.ErrorsTotal.WithLabelValues(component, class).Inc()
}

// RecordSingletonRequest increments the singleton request counter.
// Result should be "hit" for populated slots and "miss" for first access.
func (c *Metrics) RecordSingletonRequest(result string) {
	c.SingletonRequests.WithLabelValues(result).Inc()
}

// SetActiveSingletons updates the populated slot gauge
func (c *Metrics) SetActiveSingletons(count int) {
	c.ActiveSingletons.Set(float64(count))
}

// RecordBuild increments the build counter
func (c *Metrics) RecordBuild(outcome string) {
	c.BuildsTotal.WithLabelValues(outcome).Inc()
}

// RecordStepApplied increments the applied step counter
func (c *Metrics) RecordStepApplied() {
	c.StepsApplied.Inc()
}
