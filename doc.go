// Package forgekit provides a construction framework for Go programs,
// separating what gets constructed from how callers ask for it.
//
// # Philosophy: Strategies Over Constructors
//
// ForgeKit is a generic framework built from a small set of orthogonal
// construction strategies:
//
// Keyed construction (registry):
//   - Constructors registered under string keys with optional metadata
//   - Resolution invokes the constructor with caller-supplied arguments
//   - Explicit fallback form for keys that may not be stocked
//
// Staged construction (builder):
//   - A base value carries every mandatory field
//   - Steps accumulate optional features; last write wins
//   - Build validates, finalizes, and issues an audit receipt
//
// Shared construction (singleton):
//   - Identity sharing: one instance per key, constructed exactly once
//   - State sharing: distinct handles all observing one mutable record
//
// Composed construction (family):
//   - Registries grouped into named families of product kinds
//   - One selector swaps every kind consistently; mixed lots cannot happen
//
// Declarative construction (catalog):
//   - YAML/JSON documents describing families, kinds, and variants
//   - Schema validation plus semantic validation before materialization
//   - Optional file watching for live catalog reload
//
// ForgeKit MUST NOT contain:
//   - Concrete product hierarchies (pets, houses, vehicles)
//   - Printed narration or presentation logic in core packages
//   - Domain assumptions about what gets constructed
//
// Concrete products belong to callers. The canonical fixtures live in
// testutil and are exercised only by package tests and cmd/forgekit-demo.
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│            catalog                  │  Declarative documents,
//	│  (parse, validate, build, watch)    │  live reload
//	└─────────────────────────────────────┘
//	           ↓ materializes
//	┌─────────────────────────────────────┐
//	│            family                   │  Families + composer,
//	│   (kinds, variants, consistency)    │  consistent selection
//	└─────────────────────────────────────┘
//	           ↓ draws from
//	┌─────────────────────────────────────┐
//	│   registry   singleton   builder    │  Construction strategies
//	│    (keyed)    (shared)   (staged)   │
//	└─────────────────────────────────────┘
//	           ↓ produce
//	┌─────────────────────────────────────┐
//	│            product                  │  Product protocol and
//	│   (Name, Describe, capabilities)    │  capability interfaces
//	└─────────────────────────────────────┘
//
// Every strategy reports through the same ambient surface: structured
// errors with sentinel classification, observer hooks, Prometheus
// collectors, and a bounded construction journal.
//
// # Framework Packages
//
// Construction strategies:
//   - registry: Generic keyed constructor registry
//   - builder: Staged construction with steps, validation, receipts
//   - singleton: Identity-shared instances and state-shared handles
//   - family: Product families and the abstract factory composer
//   - catalog: Declarative catalogs (parse, schema, build, store, watch)
//
// Protocol:
//   - product: The Product interface and capability extensions
//
// Infrastructure:
//   - errors: Structured error handling with classified sentinels
//   - metric: Prometheus metrics registry and core collectors
//   - pkg/journal: Fixed-capacity construction event journal
//
// Fixtures:
//   - testutil: Canonical pet and house products for tests and the demo
//
// # Usage Patterns
//
// Keyed construction:
//
//	pets := registry.New[product.Product]()
//	_ = pets.RegisterFunc("dog", NewDog)
//
//	dog, err := pets.Resolve("dog")
//	bird, err := pets.ResolveDefault("bird", fallbackPet)
//
// Staged construction:
//
//	house, err := builder.New(NewHouse()).
//	    Apply(AddGarage, AddSwimmingPool).
//	    Build()
//
// Shared instances:
//
//	stores := singleton.New[*catalog.Store]()
//	_ = stores.Register("config", newConfigStore)
//
//	first, _ := stores.Get("config")
//	second, _ := stores.Get("config") // same instance
//
// Composed families from a catalog:
//
//	doc, _ := catalog.Load("catalogs/pets.yaml")
//	composer, _ := catalog.Build(doc, bindPet)
//
//	guard, _ := composer.Family("guard")
//	dog, _ := guard.Create("dog") // always the guard dog
//
// # Extension Points
//
// ForgeKit provides two extension mechanisms:
//
//  1. Products: implement product.Product (and optionally Attributed,
//     Validatable, or Versioned) on any type, then register constructors
//     for it. The framework never inspects concrete product types.
//
//  2. Catalog binders: a catalog.Binder maps variant specs onto
//     constructors, so one document format serves any product domain.
//
// # Design Principles
//
// Separation of concerns:
//   - Construction policy ≠ product behavior
//   - Registration ≠ resolution
//   - Catalog documents ≠ materialized factories
//
// Composition over configuration:
//   - Small strategies that nest (families hold registries,
//     catalogs build families)
//   - Observer hooks instead of built-in logging
//
// Testability:
//   - Explicit dependencies, no package-level globals
//   - Deterministic fixtures in testutil
//   - Race, property, and leak coverage alongside unit tests
//
// # Binary
//
// Build and run the walkthrough:
//
//	go build -o bin/forgekit-demo ./cmd/forgekit-demo
//
//	# Built-in catalog
//	./bin/forgekit-demo
//
//	# Materialize from a file and watch it for changes
//	./bin/forgekit-demo --catalog=catalogs/pets.yaml --watch
//
// # Version
//
// Current: v0.1.0
package forgekit
