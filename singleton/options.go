package singleton

import (
	"github.com/c360/forgekit/metric"
)

// Option represents a configuration option for the singleton registry
type Option[T any] func(*Registry[T])

// WithObserver installs a hook invoked after every registration, access,
// and reset. Observers must be fast and must not call back into the
// registry; they run on the caller's goroutine.
func WithObserver[T any](fn func(Event)) Option[T] {
	return func(r *Registry[T]) {
		r.observer = fn
	}
}

// WithMetricsRegistry wires the registry to the framework's core singleton
// metrics: request counts by hit or miss and the populated slot gauge.
func WithMetricsRegistry[T any](registry *metric.MetricsRegistry) Option[T] {
	return func(r *Registry[T]) {
		if registry != nil {
			r.metrics = registry.CoreMetrics()
		}
	}
}
