// Package journal provides a bounded, thread-safe history of construction
// activity with always-on counters and optional Prometheus metrics.
//
// # Overview
//
// A Journal retains the most recent entries up to a fixed capacity. Recording
// never fails and never blocks: when the journal is full, the oldest entry is
// evicted to make room. Registries, builders, and singleton stores feed their
// lifecycle events into journals through observer hooks, giving callers a
// recent history of what was constructed, by whom, and whether it succeeded.
//
// # Quick Start
//
// Basic journal creation:
//
//	log, err := journal.New[registry.Event](256)
//	if err != nil {
//		return err
//	}
//
//	pets.Register("dog", newDog, registry.WithObserver[product.Product](func(e registry.Event) {
//		log.Record(e)
//	}))
//
//	// Inspect the recent history, oldest first
//	for _, event := range log.Snapshot() {
//		fmt.Println(event.Op, event.Key)
//	}
//
// With eviction callback and metrics:
//
//	log, err := journal.New[registry.Event](256,
//		journal.WithDropCallback[registry.Event](func(e registry.Event) {
//			slog.Debug("evicted journal entry", "op", e.Op, "key", e.Key)
//		}),
//		journal.WithMetrics[registry.Event](metricsRegistry, "construction_log"),
//	)
//
// # Eviction
//
// Unlike a queue, a journal is never consumed: Snapshot copies the retained
// entries without removing them, ordered oldest to newest. The only way an
// entry leaves the journal is eviction at capacity or an explicit Clear.
// Eviction is deliberate and unconditional; a history that blocked its writers
// would let observability interfere with construction.
//
// Eviction callbacks run after the journal lock is released, so a callback
// may safely re-enter the journal it was registered on.
//
// # Observability
//
// Lifetime counters (recorded, dropped) are always collected using atomic
// operations and are available via Stats with zero configuration. Prometheus
// export is optional and enabled per journal with WithMetrics, which registers
// entry and drop counters plus size and utilization gauges under the
// forgekit_journal_* names with a component label identifying the instance.
//
// # Thread Safety
//
// All journal operations are safe for concurrent use. Recording takes an
// exclusive lock; Snapshot, Len, and Stats take a shared lock and return
// copies the caller owns.
package journal
