// Package catalog turns declarative construction catalogs into live
// factory families.
//
// # Overview
//
// A catalog is a document that declares, per family, the product kinds and
// the variants each kind stocks. The package loads catalogs from JSON or
// YAML, validates them structurally and against an embedded JSON schema,
// and materializes them into a family.Composer through a caller-supplied
// Binder. A Store holds the current document for concurrent readers, and a
// Watcher reports file changes so callers can reload without restarting.
//
// # Document Model
//
//	version: "1.0.0"
//	families:
//	  - name: friendly
//	    kinds:
//	      - kind: dog
//	        variants:
//	          - key: default
//	            description: affectionate golden retriever
//	            spec:
//	              species: dog
//	              temperament: friendly
//
// The variant's spec payload is opaque to the catalog: the Binder reads
// whatever fields its products need and returns a constructor for the
// variant.
//
// # Validation
//
// Validation happens in two layers. ValidateSchema checks the raw bytes
// against the embedded document schema before parsing, which catches
// misspelled fields and structural mistakes with field-level messages.
// Document.Validate checks the parsed document's semantics: a semver
// version and unique family, kind, and variant names. Both layers wrap
// errors.ErrInvalidCatalog.
//
// # Materialization
//
//	doc, err := catalog.Load("pets.yaml")
//	if err != nil {
//		return err
//	}
//	composer, err := catalog.Build(doc, bindPet)
//	if err != nil {
//		return err
//	}
//	fam, err := composer.Family("friendly")
//
// Build validates the document first, so a binder never sees a malformed
// variant.
//
// # Live Reload
//
// A Store and a Watcher together support reload-on-change:
//
//	store := catalog.NewStore(doc)
//	w, err := catalog.NewWatcher("pets.yaml", 0)
//	changes, err := w.Start()
//	go func() {
//		for range changes {
//			next, err := catalog.Load("pets.yaml")
//			if err != nil {
//				continue
//			}
//			store.Swap(next)
//		}
//	}()
//
// The watcher debounces write bursts, so one save produces one
// notification. Swap validates before installing, so a malformed edit
// never replaces a good catalog.
package catalog
