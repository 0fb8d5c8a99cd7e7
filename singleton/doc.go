// Package singleton provides keyed process-wide instances with two sharing
// strategies: identity sharing and state sharing.
//
// # Identity Sharing
//
// Registry[T] hands out one instance per key. The first access constructs
// the instance with the key's constructor and stores it; every later access
// returns that exact instance:
//
//	configs := singleton.New[*AppConfig]()
//	configs.Register("app", loadAppConfig)
//
//	cfg, err := configs.Get("app")  // constructs
//	cfg2, _ := configs.Get("app")   // same instance, cfg == cfg2
//
// Constructors are registered lazily and run on first access, or eagerly
// for every registered key with WarmUp. GetOrCreate constructs ad hoc
// instances without a prior registration; the supplied constructor only
// matters if the slot is empty.
//
// # State Sharing
//
// StateRegistry inverts the strategy: instead of one shared instance, it
// hands out many distinct Handle values that all read and write one shared
// record per key. Two handles are never identity-equal, yet an update
// through either is immediately visible through the other:
//
//	states := singleton.NewStateRegistry()
//	x := states.HandleWith("protocols", map[string]any{"HTTP": "Hyper Text Transfer Protocol"})
//	y := states.HandleWith("protocols", map[string]any{"SNMP": "Simple Network Management Protocol"})
//	// x.String() == y.String(): both render HTTP and SNMP
//
// Identity sharing suits heavyweight resources constructed once. State
// sharing suits configuration-like data where many owners need a live view
// of the same fields.
//
// # Concurrency
//
// Concurrent first access for a key runs the constructor exactly once; the
// losers of the race block until the winner finishes and then receive the
// same instance. Populated reads are lock-free. A failed construction does
// not occupy the slot, so the next access retries. WarmUp constructs every
// registered key concurrently and honors its context for work that has not
// started; an in-flight constructor is never interrupted.
//
// # Resets
//
// Reset and ResetAll vacate slots (and detach shared records) for test
// isolation. Instances already handed out keep working; they simply stop
// being the shared one. Registered constructors survive resets, so the
// next access reconstructs.
package singleton
