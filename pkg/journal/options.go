package journal

import (
	"github.com/c360/forgekit/metric"
)

// Option configures journal behavior using the functional options pattern.
type Option[T any] func(*journalOptions[T])

// journalOptions holds internal configuration for journal instances.
// Counters are always collected; Prometheus export is optional.
type journalOptions[T any] struct {
	dropCallback DropCallback[T]

	// metricsReg is optional - if provided, journal counters are also
	// exposed as Prometheus metrics
	metricsReg *metric.MetricsRegistry

	// metricsPrefix is used as the component label for Prometheus metrics
	metricsPrefix string
}

// WithDropCallback sets a callback invoked with each entry evicted to make
// room for a newer one.
func WithDropCallback[T any](callback DropCallback[T]) Option[T] {
	return func(opts *journalOptions[T]) {
		opts.dropCallback = callback
	}
}

// WithMetrics enables Prometheus metrics export for journal counters.
// If registry is nil or prefix is empty, this option is ignored.
func WithMetrics[T any](registry *metric.MetricsRegistry, prefix string) Option[T] {
	return func(opts *journalOptions[T]) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// applyOptions applies functional options to create final journal configuration.
func applyOptions[T any](options ...Option[T]) *journalOptions[T] {
	opts := &journalOptions[T]{}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
