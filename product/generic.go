package product

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/c360/forgekit/errors"
)

// Generic provides a simple, explicitly flexible data-driven product for
// testing, prototyping, and catalog-driven construction.
//
// Catalog binders that have nothing but a variant's attribute map to work
// with can construct a Generic instead of defining a concrete type per
// variant. Components that need real behavior still define their own
// Product implementations.
//
// Example usage:
//
//	p := product.NewGeneric("Jimmy", map[string]any{
//	    "breed": "Golden Retriever",
//	    "age":   2,
//	})
type Generic struct {
	// ProductName is the identity reported by Name.
	ProductName string `json:"name"`

	// Attrs contains the construction attributes as a map.
	// This supports arbitrary attribute sets while remaining inspectable
	// through the Attributed interface.
	Attrs map[string]any `json:"attributes,omitempty"`

	// VariantVersion is the catalog variant version this product was
	// constructed from, if any.
	VariantVersion string `json:"version,omitempty"`

	describe func() (string, error)
}

// NewGeneric creates a new Generic product with the given identity and
// attributes.
func NewGeneric(name string, attrs map[string]any) *Generic {
	return &Generic{
		ProductName: name,
		Attrs:       attrs,
	}
}

// WithVersion sets the variant version and returns the same product.
func (g *Generic) WithVersion(version string) *Generic {
	g.VariantVersion = version
	return g
}

// WithDescriber overrides the description behavior and returns the same
// product. Without an override, Describe renders the attribute map.
func (g *Generic) WithDescriber(fn func() (string, error)) *Generic {
	g.describe = fn
	return g
}

// Name returns the product's identity.
func (g *Generic) Name() string {
	return g.ProductName
}

// Describe returns the configured description, or a deterministic
// rendering of the attribute map when no describer was set.
func (g *Generic) Describe() (string, error) {
	if g.describe != nil {
		return g.describe()
	}

	if len(g.Attrs) == 0 {
		return g.ProductName, nil
	}

	keys := make([]string, 0, len(g.Attrs))
	for k := range g.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, g.Attrs[k]))
	}
	return g.ProductName + " (" + strings.Join(parts, ", ") + ")", nil
}

// Attributes returns the construction attributes.
func (g *Generic) Attributes() map[string]any {
	return g.Attrs
}

// Version returns the catalog variant version, or empty string.
func (g *Generic) Version() string {
	return g.VariantVersion
}

// Validate performs basic validation on the Generic product.
// Ensures the identity is not empty.
func (g *Generic) Validate() error {
	if g.ProductName == "" {
		return errors.WrapInvalid(errors.ErrInvalidProduct, "Generic", "Validate", "check identity")
	}
	return nil
}

// MarshalJSON serializes the Generic product to JSON format.
func (g *Generic) MarshalJSON() ([]byte, error) {
	// Use alias to avoid infinite recursion
	type Alias Generic
	return json.Marshal((*Alias)(g))
}

// UnmarshalJSON deserializes JSON data into the Generic product.
func (g *Generic) UnmarshalJSON(data []byte) error {
	// Use alias to avoid infinite recursion
	type Alias Generic
	return json.Unmarshal(data, (*Alias)(g))
}
