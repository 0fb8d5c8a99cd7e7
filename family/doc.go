// Package family composes registries into named product families served
// behind a single selector.
//
// # Overview
//
// A Family binds one registry per product kind under a family name. A
// Composer holds many families and hands out whichever one a selector
// names. Client code written against a Family handle never needs to know
// which family it received: the same Create calls yield a coherent set of
// products from whichever family was selected, so swapping the selector
// swaps every product kind at once.
//
// # Quick Start
//
//	friendly := family.NewFamily[product.Product]("friendly").
//		AddKind("dog", friendlyDogs).
//		AddKind("cat", friendlyCats)
//
//	guard := family.NewFamily[product.Product]("guard").
//		AddKind("dog", guardDogs).
//		AddKind("cat", guardCats)
//
//	composer := family.NewComposer[product.Product]()
//	composer.MustRegisterFamily(friendly)
//	composer.MustRegisterFamily(guard)
//
//	fam, err := composer.Family("guard")
//	if err != nil {
//		return err
//	}
//	dog, err := fam.Create("dog")
//
// # Consistency
//
// The consistency guarantee is the point of the package: every product
// created through one Family handle is drawn from that family's
// registries, never another's, for any ordering of calls. The handle
// holds direct registry references fixed at assembly time, so nothing
// registered later redirects an existing handle.
//
// # Variants
//
// Each kind registry may stock several variants of its product. Create
// resolves the DefaultVariant key; CreateVariant names a variant
// explicitly. An unbound kind fails with errors.ErrUnknownKind and an
// unstocked variant fails with errors.ErrUnknownKey from the registry,
// so callers can tell the two misses apart.
//
// # Concurrency
//
// A Composer is safe for concurrent registration and selection. Family
// assembly with AddKind is single-writer; assemble the family fully
// before sharing it. After assembly Create and CreateVariant are safe
// concurrently, since they only read the binding table and delegate to
// registries that lock internally.
package family
