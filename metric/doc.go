// Package metric provides Prometheus-based metrics collection for ForgeKit
// construction observability.
//
// The package offers a centralized metrics registry managing both core
// framework metrics (constructions, singleton slot traffic, builds, errors)
// and custom component-specific metrics. Because the framework is an embedded
// library rather than a long-running service, metrics are exported
// programmatically: the embedding application either scrapes the underlying
// Prometheus registry itself or writes a snapshot with WriteText.
//
// # Architecture
//
// The package follows a two-layer design:
//
//  1. Core Metrics: Framework-level metrics automatically registered (Metrics type)
//  2. Component Registry: Extensible registration for component-specific metrics (MetricsRegistrar interface)
//
// This architecture separates infrastructure concerns (core metrics) from
// application concerns (component-specific metrics) while keeping everything
// gatherable from a single Prometheus registry.
//
// # Basic Usage
//
// Setting up metrics collection:
//
//	mr := metric.NewMetricsRegistry()
//
//	reg := registry.New[product.Product](
//	    registry.WithMetricsRegistry[product.Product](mr, "pets"),
//	)
//
//	// Record core framework metrics directly
//	core := mr.CoreMetrics()
//	core.RecordConstruction("registry", "success")
//	core.RecordSingletonRequest("hit")
//
//	// Dump a snapshot in the Prometheus text format
//	if err := mr.WriteText(os.Stdout); err != nil {
//	    log.Printf("metrics dump failed: %v", err)
//	}
//
// # Core Metrics
//
// The package automatically registers core framework metrics tracking:
//
//   - Constructions: forgekit_constructions_total{component,outcome},
//     forgekit_constructions_duration_seconds{component}
//   - Registrations: forgekit_registry_keys{component}
//   - Singleton slots: forgekit_singleton_requests_total{result}, forgekit_singleton_active
//   - Builds: forgekit_builder_builds_total{outcome}, forgekit_builder_steps_applied_total
//   - Errors: forgekit_errors_total{component,class}
//
// Go runtime and process collectors are registered as well, so a gathered
// snapshot always includes memory and goroutine statistics.
//
// # Component Metrics
//
// Components register their own metrics through the MetricsRegistrar
// interface, keyed by component and metric name. Duplicate registrations are
// rejected with a conflict error rather than silently replaced.
//
// # Thread Safety
//
// All registration and recording operations are safe for concurrent use.
package metric
