// Package builder provides a generic staged constructor for products whose
// mandatory parts are fixed at creation and whose optional features are
// layered on afterwards.
//
// # Overview
//
// A Builder[T] wraps a base value of the product type and accumulates Step
// functions against it. Build validates and finalizes the accumulated value,
// returning the finished product together with an audit Receipt. The builder
// is the construction strategy for products with many optional features,
// where a constructor taking every combination of options would be
// unworkable.
//
// # Quick Start
//
//	type House struct {
//		Foundation, Structure, Roof string
//		HasGarage, HasSwimmingPool  bool
//	}
//
//	house, err := builder.New(House{
//		Foundation: "concrete",
//		Structure:  "wood",
//		Roof:       "shingles",
//	}).Apply(
//		func(h *House) { h.HasGarage = true },
//		func(h *House) { h.HasSwimmingPool = true },
//	).Build()
//
// # Accumulation Semantics
//
// Steps run in application order and each step owns one aspect of the
// product. Applying a later step for the same aspect overwrites the earlier
// one: accumulation is last-write-wins, never additive. Nil steps are
// skipped without counting.
//
// # Finalization
//
// A builder starts Open and becomes Finalized on the first successful Build.
// Finalized builders reject all further use: Build returns
// errors.ErrBuilderFinalized, and Apply latches the same error into the
// fluent chain, observable via Err. The latched error makes misuse visible
// even in chains that never inspect individual returns:
//
//	b.Apply(stepOne).Apply(stepTwo)
//	if err := b.Err(); err != nil {
//		return err
//	}
//
// # Validation
//
// WithValidator installs a hook that Build runs before finalizing. A
// rejection fails the build with errors.ErrInvalidProduct wrapping the
// validator's error, and deliberately leaves the builder Open: the caller
// can apply corrective steps and build again. Only a successful Build
// consumes the builder.
//
// # Observability
//
// Every builder carries a uuid identity, stamped into its Events and its
// Receipt. WithObserver receives an Event per Apply and Build;
// WithMetricsRegistry records step and build counts through the framework's
// core collectors. Receipts record the step count and creation/finalization
// times of a successful build.
package builder
