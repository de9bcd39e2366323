// Package solver defines the options, hooks, and snapshot types used by the
// trail search engine.
package solver

import (
	"context"
	"time"
)

// Verbosity selects how much the Reporter hook is told. The levels mirror
// the classic CLI ladder: 0 reports only solutions, 1 adds save notices,
// 2 adds friendly progress chatter, 3 adds selected abandoned trails
// (lengths divisible by the report interval), 4 reports every abandonment.
type Verbosity int

const (
	VerbosityMinimal           Verbosity = iota // solutions and fatal errors only
	VerbosityProgressOnSave                     // also report checkpoint saves
	VerbosityFriendlyChatter                    // also report high-level progress
	VerbositySelectedAbandoned                  // also report selected abandoned trails
	VerbosityAllAbandoned                       // report every abandoned trail
)

// Default intervals for checkpointing and abandonment reporting.
const (
	DefaultCheckpointInterval      = 10               // trail lengths that trigger a save
	DefaultAbandonedReportInterval = 20               // trail lengths reported at verbosity 3
	DefaultPruneThreshold          = 4096             // store growth allowed between prunes
	DefaultMinSaveInterval         = 15 * time.Minute // consumed by checkpoint.Manager
)

// Reporter receives progress and abandonment notifications. The solver owns
// the verbosity decision: a method is only invoked when the configured
// Verbosity warrants it. Trail slices passed to hooks are copies; hooks may
// retain them.
type Reporter interface {
	// Solution is invoked for each complete trail found, including repeats
	// reachable from multiple start nodes. index counts invocations from 1.
	Solution(trail []byte, index int)

	// Abandoned is invoked when a dead-end trail is given up on.
	Abandoned(trail []byte, abandoned uint64)

	// Chatter carries high-level progress messages (new start node, etc).
	Chatter(msg string)

	// Saved is invoked after a checkpoint write succeeds.
	Saved(snap Snapshot)

	// SaveFailed is invoked when a checkpoint write fails; the search
	// continues regardless.
	SaveFailed(err error)
}

// Checkpointer persists search progress. MaybeSave reports whether a write
// actually happened: implementations are expected to throttle unforced saves.
type Checkpointer interface {
	MaybeSave(snap Snapshot, force bool) (bool, error)
}

// Snapshot is an immutable copy of the solver's resumable state. Trail and
// prefix slices are owned by the snapshot.
type Snapshot struct {
	// Solutions holds every distinct complete trail found, in discovery order.
	Solutions [][]byte

	// Exhausted holds the pruned dead-end prefix set.
	Exhausted [][]byte

	// Abandoned is the total number of dead-end trails given up on.
	Abandoned uint64

	// Elapsed is cumulative search time, including time restored from a
	// previous run.
	Elapsed time.Duration

	// Interval is the checkpoint-length interval the state was produced
	// under. It must not change across a save/resume cycle.
	Interval int
}

// Option configures a Solver. Use with New(m, opts...).
type Option func(*Options)

// Options holds the configurable parameters of a search.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background(). A cancelled
	// context aborts the search with ctx.Err(), leaving state resumable.
	Ctx context.Context

	// Reporter, if non-nil, receives notifications per Verbosity.
	Reporter Reporter

	// Verbosity gates Reporter calls. Default VerbosityProgressOnSave.
	Verbosity Verbosity

	// Tracking enables the exhausted-prefix store. Without it dead ends are
	// only counted, and checkpoint saves are never triggered.
	Tracking bool

	// PruneThreshold is how many entries the exhausted store may grow past
	// its last-prune size before being pruned again.
	PruneThreshold int

	// Checkpointer persists snapshots; nil disables checkpointing.
	Checkpointer Checkpointer

	// CheckpointInterval triggers a save at dead ends whose trail length is
	// a multiple of it. Must stay constant across a save/resume cycle.
	CheckpointInterval int

	// AbandonedReportInterval selects which abandoned-trail lengths are
	// reported at VerbositySelectedAbandoned.
	AbandonedReportInterval int

	// PruneOnSave controls whether the exhausted store is pruned immediately
	// before every checkpoint save. Default true; disable only when save
	// latency matters more than record size.
	PruneOnSave bool

	// Resume, if non-nil, is a previously loaded Snapshot to restore.
	Resume *Snapshot
}

// DefaultOptions returns the baseline configuration: background context, no
// reporter, save-notice verbosity, tracking off, original intervals.
func DefaultOptions() Options {
	return Options{
		Ctx:                     context.Background(),
		Reporter:                nil,
		Verbosity:               VerbosityProgressOnSave,
		Tracking:                false,
		PruneThreshold:          DefaultPruneThreshold,
		Checkpointer:            nil,
		CheckpointInterval:      DefaultCheckpointInterval,
		AbandonedReportInterval: DefaultAbandonedReportInterval,
		PruneOnSave:             true,
		Resume:                  nil,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReporter installs the progress/abandonment hook.
func WithReporter(r Reporter) Option {
	return func(o *Options) {
		o.Reporter = r
	}
}

// WithVerbosity sets how much the Reporter is told.
func WithVerbosity(v Verbosity) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}

// WithTracking enables the exhausted-prefix store, letting repeated searches
// and resumed runs skip prefixes already proven futile.
func WithTracking() Option {
	return func(o *Options) {
		o.Tracking = true
	}
}

// WithPruneThreshold sets the store growth allowed between prunes.
func WithPruneThreshold(n int) Option {
	return func(o *Options) {
		o.PruneThreshold = n
	}
}

// WithCheckpointer installs a Checkpointer and implies WithTracking: a
// checkpoint without the exhausted store could not skip completed work on
// resume.
func WithCheckpointer(cp Checkpointer) Option {
	return func(o *Options) {
		o.Checkpointer = cp
		o.Tracking = true
	}
}

// WithCheckpointInterval sets the trail-length multiple that triggers saves.
func WithCheckpointInterval(n int) Option {
	return func(o *Options) {
		o.CheckpointInterval = n
	}
}

// WithAbandonedReportInterval sets the trail-length multiple reported at
// VerbositySelectedAbandoned.
func WithAbandonedReportInterval(n int) Option {
	return func(o *Options) {
		o.AbandonedReportInterval = n
	}
}

// WithPruneOnSave controls pruning of the exhausted store immediately before
// each checkpoint save.
func WithPruneOnSave(enabled bool) Option {
	return func(o *Options) {
		o.PruneOnSave = enabled
	}
}

// WithResume restores state from a previously loaded Snapshot: solutions,
// exhausted prefixes, the abandoned counter, and elapsed time all continue
// from where the snapshot left off.
func WithResume(snap Snapshot) Option {
	return func(o *Options) {
		o.Resume = &snap
	}
}

// Result is the caller-facing view of accumulated search state.
type Result struct {
	// Solutions holds every distinct complete trail, in discovery order.
	// Each is an ordered sequence of path IDs.
	Solutions [][]byte

	// Abandoned is the total dead-end count.
	Abandoned uint64

	// Elapsed is cumulative search time.
	Elapsed time.Duration
}
