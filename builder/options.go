package builder

import (
	"github.com/c360/forgekit/metric"
)

// Option represents a configuration option for a builder
type Option[T any] func(*Builder[T])

// WithValidator installs a hook that Build runs against the accumulated
// value before finalizing. A non-nil return rejects the build with
// errors.ErrInvalidProduct and leaves the builder open.
func WithValidator[T any](fn func(T) error) Option[T] {
	return func(b *Builder[T]) {
		b.validator = fn
	}
}

// WithObserver installs a hook invoked after every Apply and Build.
// Observers must be fast and must not call back into the builder; they run
// on the caller's goroutine.
func WithObserver[T any](fn func(Event)) Option[T] {
	return func(b *Builder[T]) {
		b.observer = fn
	}
}

// WithMetricsRegistry wires the builder to the framework's core build
// metrics. Builders are short-lived, so they record through the shared
// core collectors rather than registering per-instance metrics.
func WithMetricsRegistry[T any](registry *metric.MetricsRegistry) Option[T] {
	return func(b *Builder[T]) {
		if registry != nil {
			b.metrics = registry.CoreMetrics()
		}
	}
}
