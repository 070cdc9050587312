// Package memo provides an incremental-memoization engine for sequential,
// re-executed logic.
//
// A computation built with this package creates values once and transparently
// reuses them on every subsequent run against the same storage, while values
// that stop being produced are swept away after the run. The primary consumer
// is UI construction, where a widget tree is rebuilt from scratch on every
// update pass without losing the long-lived state attached to unchanged nodes.
//
// # How it works
//
// A Comp[R] is pure data: a recipe that, once driven by Run, threads a mutable
// Context through its steps. Each sequencing step (Bind) advances a position
// marker; cache cells read the marker currently installed in the Context and
// use (position, key) as the slot address inside the current storage node.
// Named scopes (Scoped) select child storage nodes, isolating their
// descendants' addresses from siblings. After a successful run a sweep deletes
// every slot and scope that was not visited and rearms the rest.
//
// # Sequencing contract
//
// Within one run, every slot address may be read at most once and every scope
// key entered at most once per storage node. Violations are reported
// immediately as ErrSlotReused / ErrScopeReused and abort the run. Loop
// iterations share their surrounding position, so cells inside For must be
// disambiguated with a per-iteration key.
//
// The engine is single-threaded: one storage must never be shared by
// concurrent runs. Independent storages are fine.
package memo
