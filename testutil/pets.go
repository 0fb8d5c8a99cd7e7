package testutil

import (
	"fmt"

	"github.com/c360/forgekit/errors"
	"github.com/c360/forgekit/product"
)

// Pet is the canonical concrete product used across tests and demos.
// Temperament lives entirely in the Sound field; the same type serves
// friendly, guard, and plain pets.
type Pet struct {
	PetName string `json:"name"`
	Breed   string `json:"breed,omitempty"`
	Age     int    `json:"age,omitempty"`
	Sound   string `json:"sound"`
}

// Compile-time capability checks.
var (
	_ product.Product     = (*Pet)(nil)
	_ product.Attributed  = (*Pet)(nil)
	_ product.Validatable = (*Pet)(nil)
)

// Name implements product.Product.
func (p *Pet) Name() string {
	return p.PetName
}

// Describe renders the pet's greeting.
func (p *Pet) Describe() (string, error) {
	if p.Breed == "" {
		return fmt.Sprintf("%s I'm %s.", p.Sound, p.PetName), nil
	}
	return fmt.Sprintf("%s I'm %s, a %d-year-old %s.", p.Sound, p.PetName, p.Age, p.Breed), nil
}

// Attributes implements product.Attributed.
func (p *Pet) Attributes() map[string]any {
	return map[string]any{
		"breed": p.Breed,
		"age":   p.Age,
		"sound": p.Sound,
	}
}

// Validate implements product.Validatable. A pet without a name is not a
// presentable product.
func (p *Pet) Validate() error {
	if p.PetName == "" {
		return errors.WrapInvalid(
			fmt.Errorf("pet has no name: %w", errors.ErrInvalidProduct),
			"Pet", "Validate", "check name")
	}
	return nil
}

// Canonical pet constructors. Arguments are accepted for constructor
// signature compatibility and ignored; the fixtures are fixed.

// NewDog constructs the plain temperament dog.
func NewDog(...any) (product.Product, error) {
	return &Pet{PetName: "Jimmy", Breed: "Golden Retriever", Age: 2, Sound: "woof!"}, nil
}

// NewCat constructs the plain temperament cat.
func NewCat(...any) (product.Product, error) {
	return &Pet{PetName: "Tom", Breed: "Persian", Age: 3, Sound: "meow!"}, nil
}

// NewFriendlyDog constructs the friendly temperament dog.
func NewFriendlyDog(...any) (product.Product, error) {
	return &Pet{PetName: "Jimmy", Breed: "Golden Retriever", Age: 2, Sound: "woof, I love you!"}, nil
}

// NewFriendlyCat constructs the friendly temperament cat.
func NewFriendlyCat(...any) (product.Product, error) {
	return &Pet{PetName: "Tom", Breed: "Persian", Age: 3, Sound: "meow, purr."}, nil
}

// NewGuardDog constructs the guard temperament dog.
func NewGuardDog(...any) (product.Product, error) {
	return &Pet{PetName: "Rex", Breed: "German Shepherd", Age: 4, Sound: "woof, stay back!"}, nil
}

// NewGuardCat constructs the guard temperament cat.
func NewGuardCat(...any) (product.Product, error) {
	return &Pet{PetName: "Whiskers", Breed: "Siamese", Age: 5, Sound: "meow, beware!"}, nil
}

// DefaultPet returns the fallback pet handed out when a requested kind is
// not stocked.
func DefaultPet() *Pet {
	return &Pet{PetName: "Unknown", Sound: "Silent"}
}
