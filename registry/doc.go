// Package registry implements the keyed constructor registry at the core of
// ForgeKit: a thread-safe mapping from construction keys to constructor
// functions with configurable duplicate-key policy.
//
// # Overview
//
// A Registry[T] owns the association between string keys and Constructor[T]
// functions. Registration inserts under a unique key; resolution looks the
// key up and invokes the constructor with caller-supplied arguments:
//
//	reg := registry.New[product.Product]()
//
//	err := reg.Register(registry.Registration[product.Product]{
//	    Key:         "dog",
//	    Description: "domestic dog",
//	    Version:     "1.0.0",
//	    Construct: func(args ...any) (product.Product, error) {
//	        return pets.NewDog(args...)
//	    },
//	})
//
//	p, err := reg.Resolve("dog", "Jimmy", 2)
//
// # Duplicate and Unknown Keys
//
// Registering a live key fails with errors.ErrDuplicateKey and leaves the
// original registration untouched. Registries created WithOverwrite replace
// instead, so the most recent registration wins. Resolving an unregistered
// key fails with errors.ErrUnknownKey; Resolve never synthesizes fallback
// values. Callers that want a designated default use ResolveDefault, which
// converts only the unknown-key miss into the fallback and still propagates
// constructor failures.
//
// # Concurrency
//
// All methods are safe for concurrent use. The registry holds its lock only
// for map access; constructors run outside the lock, so a slow constructor
// never blocks registration or other resolutions. Statistics are maintained
// with atomic counters and read via Stats.
//
// # Observability
//
// WithMetricsRegistry registers per-registry Prometheus metrics (key gauge,
// registration/resolution/miss/failure counters, resolve duration histogram)
// under a caller-chosen prefix. WithObserver installs a synchronous event
// hook; the journal package is the usual sink:
//
//	j, _ := journal.New[registry.Event](128)
//	reg := registry.New[product.Product](
//	    registry.WithObserver[product.Product](j.Record),
//	)
package registry
