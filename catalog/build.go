package catalog

import (
	"fmt"

	"github.com/c360/forgekit/errors"
	"github.com/c360/forgekit/family"
	"github.com/c360/forgekit/registry"
)

// Binder turns one variant declaration into a constructor. The catalog
// never reads VariantSpec.Spec itself; the binder extracts whatever fields
// its products need from the payload.
type Binder[T any] func(v VariantSpec) (registry.Constructor[T], error)

// Build materializes a validated catalog document into a composer: one
// family per FamilySpec, one registry per KindSpec, one registration per
// VariantSpec, with the variant's key, description, and version carried
// onto the registration. Binder failures propagate with the family, kind,
// and variant named.
func Build[T any](doc *Document, bind Binder[T]) (*family.Composer[T], error) {
	if doc == nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("document must not be nil"),
			"Catalog", "Build", "validate arguments")
	}
	if bind == nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("binder must not be nil"),
			"Catalog", "Build", "validate arguments")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	composer := family.NewComposer[T]()

	for _, fs := range doc.Families {
		fam := family.NewFamily[T](fs.Name)

		for _, ks := range fs.Kinds {
			reg := registry.New[T]()

			for _, vs := range ks.Variants {
				ctor, err := bind(vs)
				if err != nil {
					return nil, errors.Wrap(err, "Catalog", "Build",
						fmt.Sprintf("bind family %q kind %q variant %q", fs.Name, ks.Kind, vs.Key))
				}

				if err := reg.Register(registry.Registration[T]{
					Key:         vs.Key,
					Description: vs.Description,
					Version:     vs.Version,
					Construct:   ctor,
				}); err != nil {
					return nil, err
				}
			}

			fam.AddKind(ks.Kind, reg)
		}

		if err := composer.RegisterFamily(fam); err != nil {
			return nil, err
		}
	}

	return composer, nil
}
