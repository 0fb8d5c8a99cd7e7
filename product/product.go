package product

// Product represents a constructed object as seen by the framework.
// All construction strategies (registries, builders, singleton slots,
// factory families) traffic in this interface and never inspect
// concrete types.
//
// Products may also implement behavioral interfaces (Attributed,
// Validatable, Versioned) to expose additional capabilities that can
// be discovered and utilized at runtime.
//
// Example implementation:
//
//	type Pet struct {
//	    PetName string `json:"name"`
//	    Breed   string `json:"breed"`
//	    Age     int    `json:"age"`
//	    Sound   string `json:"sound"`
//	}
//
//	func (p *Pet) Name() string {
//	    return p.PetName
//	}
//
//	func (p *Pet) Describe() (string, error) {
//	    return fmt.Sprintf("%s I'm %s, a %d-year-old %s.",
//	        p.Sound, p.PetName, p.Age, p.Breed), nil
//	}
type Product interface {
	// Name returns the product's identity. Two products constructed from
	// the same key with the same arguments report the same name; the
	// framework itself never interprets the value.
	Name() string

	// Describe returns a human-readable description of the product.
	// This is the single behavior operation every variant must provide.
	// Implementations embedding Base without overriding this method
	// fail with errors.ErrAbstractMethod.
	Describe() (string, error)
}
