// Package solver implements the exhaustive trail search: a recursive
// backtracking walk over a mapping.Normalized map that extends a partial
// trail one path at a time and emits every trail crossing each path exactly
// once.
//
// What:
//
//   - New(m, opts...): builds a Solver owning the mutable search state
//     (scratch trail buffer, solution set, exhausted-prefix store, counters).
//   - SolveFrom / SolveFromMultiple / SolveAll: run the search from one,
//     several, or every node. State accumulates across calls until Reset.
//   - ExhaustedSet: dead-end prefixes already proven unextendable; membership
//     is tested prefix-by-prefix and the set is periodically pruned back to
//     prefix-minimal form.
//   - Snapshot/Checkpoint: expose and persist search progress through a
//     caller-supplied Checkpointer.
//
// How the walk works:
//
//	From the current node, candidate paths are the ones touching it that are
//	not yet in the trail, in ascending path-ID order (lowest ID first). Each
//	candidate is tentatively appended to the shared scratch buffer; if the
//	resulting prefix is not known-exhausted the walk recurses from the far
//	endpoint, then rolls the buffer back one slot regardless of outcome. A
//	trail covering every path is recorded as a solution; a node with no
//	unused paths is a dead end: counted, stored as an exhausted prefix when
//	tracking is on, reported, and checkpointed at configured trail lengths.
//
// Duplicate note: SolveFromMultiple and SolveAll may report the same cyclic
// trail once per start node that reaches it. The solution set itself stays
// deduplicated by exact path-ID sequence.
//
// Tracking note: the exhausted store keys on the path-ID sequence alone, not
// on the start node, so a trail abandoned from one start also prunes the
// identical sequence explored from the other endpoint of its first path.
// Enable tracking to resume a search over the same start set, not to mix
// tracked and untracked enumerations of a solvable map.
//
// Concurrency: single-threaded and synchronous by design; a Solver must not
// be shared between goroutines. Cancellation is via the configured context,
// checked once per recursion frame; a cancelled search returns ctx.Err() and
// leaves the accumulated state intact and checkpointable.
//
// Options:
//
//   - WithContext(ctx)                  cancellation
//   - WithReporter(r)                   progress/abandonment hook
//   - WithVerbosity(v)                  how much the reporter is told
//   - WithTracking()                    record dead ends in the exhausted set
//   - WithPruneThreshold(n)             store growth allowed between prunes
//   - WithCheckpointer(cp)              progress persistence (implies tracking)
//   - WithCheckpointInterval(n)         trail lengths that trigger a save
//   - WithAbandonedReportInterval(n)    trail lengths reported at verbosity 3
//   - WithResume(snap)                  restore a loaded Snapshot
//
// Errors:
//
//   - ErrNilMap, ErrStartNodeNotFound, ErrBadInterval
//   - ctx.Err() when the context is cancelled mid-search
package solver
