package testutil

import (
	"fmt"
	"strings"

	"github.com/c360/forgekit/errors"
	"github.com/c360/forgekit/product"
)

// House is the canonical staged-construction product: the basic parts are
// fixed when the builder is created, the extras are applied as steps.
type House struct {
	Foundation      string `json:"foundation"`
	Structure       string `json:"structure"`
	Roof            string `json:"roof"`
	HasGarage       bool   `json:"has_garage"`
	HasSwimmingPool bool   `json:"has_swimming_pool"`
}

var (
	_ product.Product     = (*House)(nil)
	_ product.Validatable = (*House)(nil)
	_ fmt.Stringer        = (*House)(nil)
)

// NewHouse returns the canonical base house.
func NewHouse() House {
	return House{Foundation: "concrete", Structure: "wood", Roof: "shingles"}
}

// Name implements product.Product.
func (h *House) Name() string {
	return "house"
}

// Describe implements product.Product with the house narration.
func (h *House) Describe() (string, error) {
	return h.String(), nil
}

// Validate implements product.Validatable. A house needs all three basic
// parts before it counts as built.
func (h *House) Validate() error {
	for part, value := range map[string]string{
		"foundation": h.Foundation,
		"structure":  h.Structure,
		"roof":       h.Roof,
	} {
		if value == "" {
			return errors.WrapInvalid(
				fmt.Errorf("house is missing its %s: %w", part, errors.ErrInvalidProduct),
				"House", "Validate", "check basic parts")
		}
	}
	return nil
}

// String renders the house narration, listing the extras that were built.
func (h *House) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "House with %s foundation, %s structure, %s roof",
		h.Foundation, h.Structure, h.Roof)
	if h.HasGarage {
		b.WriteString(", a garage")
	}
	if h.HasSwimmingPool {
		b.WriteString(", and a swimming pool")
	}
	return b.String()
}

// Builder steps for the optional extras.

// AddGarage is the step that builds a garage.
func AddGarage(h *House) {
	h.HasGarage = true
}

// AddSwimmingPool is the step that builds a swimming pool.
func AddSwimmingPool(h *House) {
	h.HasSwimmingPool = true
}
