package registry

import (
	"github.com/c360/forgekit/metric"
	"github.com/prometheus/client_golang/prometheus"
)

// Option represents a configuration option for the registry
type Option[T any] func(*Registry[T])

// WithOverwrite allows re-registration of live keys. Overwriting replaces
// the stored registration atomically; without this option duplicate keys
// fail with errors.ErrDuplicateKey.
func WithOverwrite[T any]() Option[T] {
	return func(r *Registry[T]) {
		r.overwrite = true
	}
}

// WithObserver installs a hook invoked after every registration and
// resolution. Observers must be fast and must not call back into the
// registry; they run on the caller's goroutine.
func WithObserver[T any](fn func(Event)) Option[T] {
	return func(r *Registry[T]) {
		r.observer = fn
	}
}

// WithMetricsRegistry configures the registry to register metrics with the
// framework's metrics registry
func WithMetricsRegistry[T any](registry *metric.MetricsRegistry, prefix string) Option[T] {
	return func(r *Registry[T]) {
		r.metricsRegistry = registry
		r.metricsPrefix = prefix
	}
}

// Metrics holds Prometheus metrics for registry monitoring
type Metrics struct {
	keys          prometheus.Gauge
	registrations prometheus.Counter
	resolutions   prometheus.Counter
	failures      prometheus.Counter
	misses        prometheus.Counter
	resolveTime   *prometheus.HistogramVec
}

// initializeMetrics creates and registers metrics with the framework's registry
func (r *Registry[T]) initializeMetrics() {
	prefix := r.metricsPrefix

	// Create metrics
	keys := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: prefix + "_keys",
		Help: "Current number of registered construction keys",
	})
	registrations := prometheus.NewCounter(prometheus.CounterOpts{
		Name: prefix + "_registrations_total",
		Help: "Total constructor registrations, including overwrites",
	})
	resolutions := prometheus.NewCounter(prometheus.CounterOpts{
		Name: prefix + "_resolutions_total",
		Help: "Total successful constructor resolutions",
	})
	failures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: prefix + "_failures_total",
		Help: "Total constructor invocations that returned an error",
	})
	misses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: prefix + "_misses_total",
		Help: "Total resolutions of unregistered keys",
	})
	resolveTime := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prefix + "_resolve_duration_seconds",
		Help:    "Time spent invoking constructors",
		Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
	}, []string{"status"})

	// Register with framework's registry
	componentName := "construction_registry"
	r.metricsRegistry.RegisterGauge(componentName, prefix+"_keys", keys)
	r.metricsRegistry.RegisterCounter(componentName, prefix+"_registrations_total", registrations)
	r.metricsRegistry.RegisterCounter(componentName, prefix+"_resolutions_total", resolutions)
	r.metricsRegistry.RegisterCounter(componentName, prefix+"_failures_total", failures)
	r.metricsRegistry.RegisterCounter(componentName, prefix+"_misses_total", misses)
	r.metricsRegistry.RegisterHistogramVec(componentName, prefix+"_resolve_duration_seconds", resolveTime)

	// Store metrics for use
	r.metrics = &Metrics{
		keys:          keys,
		registrations: registrations,
		resolutions:   resolutions,
		failures:      failures,
		misses:        misses,
		resolveTime:   resolveTime,
	}
}
