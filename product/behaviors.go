package product

// Behavioral Interfaces
//
// This file defines PURE structural behavioral interfaces that products can
// optionally implement to expose additional capabilities. Callers discover
// these capabilities at runtime through type assertions.
//
// These interfaces enable runtime capability discovery:
//
//	if attributed, ok := p.(Attributed); ok {
//	    attrs := attributed.Attributes()
//	    // Inspect construction attributes...
//	}

// Attributed exposes the attributes a product was constructed with.
// Products implementing this interface can be inspected generically,
// which catalog-driven construction and diagnostics rely on.
type Attributed interface {
	// Attributes returns a map of attribute names to values.
	// Callers must not mutate the returned map.
	Attributes() map[string]any
}

// Validatable reports whether a constructed product is well-formed.
// Builder validators and tests use this to reject incomplete products.
type Validatable interface {
	// Validate checks the product for correctness.
	// Returns nil if valid, or an error describing the failure.
	Validate() error
}

// Versioned exposes the variant version a product was constructed from.
// Catalog-driven products implement this so callers can trace a product
// back to the catalog entry that produced it.
type Versioned interface {
	// Version returns the variant version, such as "1.0.0".
	// Returns empty string if the product is unversioned.
	Version() string
}
