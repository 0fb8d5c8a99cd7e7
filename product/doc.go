// Package product defines the Product Protocol: the minimal capability
// surface every constructed object presents to the framework.
//
// # Overview
//
// Construction strategies (registry, builder, singleton, family) are
// indifferent to what a product actually is. They traffic exclusively in the
// Product interface, which carries an identity (Name) and a single behavior
// operation (Describe). Concrete domains define their own types; the
// framework never inspects them beyond this protocol.
//
// # Abstract Bases
//
// Base is an embeddable abstract implementation whose Describe fails with
// errors.ErrAbstractMethod. Embedding Base gives a variant its identity
// plumbing for free while guaranteeing that forgetting to override the
// behavior operation is a detectable error rather than silent emptiness:
//
//	type Cat struct {
//	    product.Base
//	    Breed string
//	}
//
//	// Without this override, Describe returns errors.ErrAbstractMethod.
//	func (c *Cat) Describe() (string, error) {
//	    return "meow! I'm " + c.Base.Name(), nil
//	}
//
// # Behavioral Capabilities
//
// Products may optionally implement Attributed, Validatable, or Versioned.
// Callers discover these capabilities through type assertions:
//
//	if v, ok := p.(product.Validatable); ok {
//	    if err := v.Validate(); err != nil {
//	        return err
//	    }
//	}
//
// # Generic Products
//
// Generic is a data-driven Product for catalogs, tests, and prototyping.
// It implements every behavioral interface in this package and renders its
// attribute map deterministically when no describer is configured.
package product
