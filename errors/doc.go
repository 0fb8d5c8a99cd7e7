// Package errors provides standardized error handling patterns for ForgeKit components.
//
// # Overview
//
// The errors package implements a four-class error classification system designed for
// object-construction frameworks: Conflict (duplicate registrations), NotFound (misses
// on keys, families, and kinds), Invalid (bad input, rejected products, malformed
// catalogs), and State (operations invoked in the wrong lifecycle state).
//
// This classification enables uniform error handling across registries, builders,
// singleton slots, and factory families without hardcoded error string matching.
// Every error the framework produces is a local, recoverable condition surfaced to
// the caller; none are fatal and none warrant retries, because construction is
// deterministic and synchronous. Retrying without changing inputs would reproduce
// the same error.
//
// # Error Classification
//
// Errors are classified based on their type:
//
//   - Conflict: Re-registration of a live key without an overwrite policy
//   - NotFound: Resolving a key, selecting a family, or creating a kind that was never registered
//   - Invalid: Empty keys, nil constructors, validator rejections, malformed catalog documents
//   - State: Mutating or re-finalizing a finalized builder, invoking an abstract stub
//
// The classification system integrates with Go's standard error handling patterns,
// supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Use standard error variables for common conditions:
//
//	// Return standard error for known conditions
//	if _, exists := entries[key]; exists {
//	    return errors.ErrDuplicateKey
//	}
//
// Wrap errors with context for debugging:
//
//	// Wrap constructor errors with component context
//	if err := ctor(args...); err != nil {
//	    return errors.Wrap(err, "Registry", "Resolve", "invoke constructor")
//	}
//
// Check classification at call sites:
//
//	product, err := reg.Resolve("dog")
//	if err != nil {
//	    if errors.IsNotFound(err) {
//	        product = fallback
//	    } else {
//	        return err
//	    }
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// This format enables consistent log parsing and debugging across the framework.
// The Wrap family of functions applies this pattern while preserving sentinel
// matching through the chain.
//
// Four wrapper functions provide classification-aware wrapping:
//
//	errors.WrapConflict(err, "Registry", "Register", "insert key")
//	errors.WrapNotFound(err, "Composer", "Family", "select family")
//	errors.WrapInvalid(err, "Builder", "Build", "validate product")
//	errors.WrapState(err, "Builder", "Apply", "mutate accumulator")
//
// The generic Wrap() function preserves the original error's classification:
//
//	errors.Wrap(err, "Component", "Method", "action")  // Preserves original class
//
// # Standard Error Variables
//
// The package provides pre-defined error variables organized by category:
//
//   - Registration: ErrDuplicateKey, ErrEmptyKey, ErrNilConstructor
//   - Resolution: ErrUnknownKey, ErrUnknownFamily, ErrUnknownKind
//   - Builder lifecycle: ErrBuilderFinalized, ErrInvalidProduct
//   - Product protocol: ErrAbstractMethod
//   - Catalog: ErrInvalidCatalog, ErrUnsupportedFormat
//
// Use these variables instead of creating custom error messages so that callers
// can match with errors.Is:
//
//	// Good - uses standard variable
//	if ctor == nil {
//	    return errors.ErrNilConstructor
//	}
//
//	// Avoid - custom error message
//	if ctor == nil {
//	    return errors.New("constructor is nil")
//	}
//
// # Integration with errors.As/Is
//
// All error types support standard library error inspection:
//
//	// Check error classification
//	var ce *errors.ClassifiedError
//	if errors.As(err, &ce) {
//	    log.Printf("Component: %s, Class: %s", ce.Component, ce.Class)
//	}
//
//	// Check for specific standard errors
//	if errors.Is(err, errors.ErrUnknownKey) {
//	    // Fall back to a default product
//	}
//
//	// Classification is preserved through error chains
//	wrapped := errors.Wrap(errors.ErrUnknownKey, "Registry", "Resolve", "lookup")
//	if errors.IsNotFound(wrapped) {  // true - classification preserved
//	    // Fallback logic
//	}
//
// # Thread Safety
//
// All classification and wrapping operations are thread-safe. Error variables
// are immutable constants safe for concurrent access. The ClassifiedError type
// is safe to share across goroutines after creation.
//
// # Architecture Integration
//
// The errors package integrates with other ForgeKit components:
//
//   - registry: Registries return ErrDuplicateKey and ErrUnknownKey sentinels
//   - builder: Builders latch ErrBuilderFinalized and wrap validator rejections as ErrInvalidProduct
//   - singleton: Slot lookups without a registered constructor return ErrUnknownKey
//   - family: Composers return ErrUnknownFamily and ErrUnknownKind
//   - product: Abstract bases fail with ErrAbstractMethod until overridden
//   - catalog: Loaders and validators wrap everything under ErrInvalidCatalog
//
// # Design Philosophy
//
// The errors package follows these design principles:
//
//   - Classification over string matching: Errors are classified by type, not content
//   - Wrapping over replacement: Preserve original errors, add context via wrapping
//   - Standards over invention: Use Go's error handling idioms (Is/As/Unwrap)
//   - Recoverable by contract: Every failure is reported to the caller, never retried or escalated
package errors
