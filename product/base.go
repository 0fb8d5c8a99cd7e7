package product

import (
	"github.com/c360/forgekit/errors"
)

// Base is an embeddable abstract Product implementation. It carries the
// identity every variant shares and deliberately fails the behavior
// operation, so a variant that embeds Base without overriding Describe
// surfaces errors.ErrAbstractMethod instead of silently returning an
// empty description.
//
// Base is not meant to be used directly:
//
//	type Dog struct {
//	    product.Base
//	    Breed string
//	}
//
//	func (d *Dog) Describe() (string, error) {
//	    return "woof! I'm " + d.Base.Name(), nil
//	}
type Base struct {
	// ProductName is the identity reported by Name.
	ProductName string
}

// NewBase creates an abstract base carrying the given identity.
func NewBase(name string) Base {
	return Base{ProductName: name}
}

// Name returns the product's identity.
func (b Base) Name() string {
	return b.ProductName
}

// Describe fails with errors.ErrAbstractMethod. Concrete variants must
// override this method.
func (b Base) Describe() (string, error) {
	return "", errors.WrapState(errors.ErrAbstractMethod, "Base", "Describe", "invoke behavior")
}
