// Package reactive implements Glint's fine-grained reactive primitives:
// signals, effects, memos, refs, and the ownership tree that scopes their
// lifetimes.
//
// Dependency tracking is implicit and per-read: reading a signal while an
// effect is running subscribes that effect, and only the reads that
// actually happen on a given run are tracked. Writes notify every
// subscriber synchronously and immediately, with no batching, no
// scheduling, and no equality short-circuit: writing an unchanged value
// still re-runs subscribers.
//
// By default subscriptions accumulate across effect runs; set
// Config.ResetDependenciesOnRun to re-track dependencies on every run.
// Effects and owners can always be disposed explicitly, which removes
// them from every subscriber set and runs their cleanups.
package reactive
