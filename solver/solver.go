// Package solver implements recursive backtracking enumeration of trails
// that cross every path of a normalized map exactly once. See doc.go for the
// full contract.
package solver

import (
	"fmt"
	"time"

	"github.com/katalvlaran/koenigsberg/mapping"
)

// Solver owns the mutable state of one exhaustive search: the shared scratch
// trail buffer, the solution set, the exhausted-prefix store, and counters.
// State accumulates across SolveFrom calls until Reset. Not safe for
// concurrent use.
type Solver struct {
	m    *mapping.Normalized
	opts Options

	total int // path count; a trail of this length is a solution

	// Scratch buffer shared across the whole recursion tree: one slot per
	// path, mutated in place and rolled back on backtrack, never copied per
	// frame. used mirrors trail membership for O(1) candidate checks.
	trail  []byte
	length int
	used   [mapping.MaxPaths + 1]bool

	solutions map[string]struct{}
	order     [][]byte // distinct solutions in discovery order
	exhausted *ExhaustedSet
	abandoned uint64
	emitted   int // Solution hook invocations, including repeats

	// started is the logical start of the run: on resume it is shifted back
	// by the restored elapsed time so cumulative timing continues correctly.
	started time.Time
}

// New builds a Solver over the normalized map m. State restored via
// WithResume continues exactly where the snapshot left off.
func New(m *mapping.Normalized, opts ...Option) (*Solver, error) {
	// 1. Validate the map.
	if m == nil {
		return nil, ErrNilMap
	}

	// 2. Resolve options.
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if o.CheckpointInterval <= 0 || o.AbandonedReportInterval <= 0 || o.PruneThreshold <= 0 {
		return nil, ErrBadInterval
	}

	s := &Solver{
		m:         m,
		opts:      o,
		total:     m.PathCount(),
		trail:     make([]byte, m.PathCount()),
		solutions: make(map[string]struct{}),
		exhausted: NewExhaustedSet(),
		started:   time.Now(),
	}

	// 3. Restore a previous run, if any.
	if o.Resume != nil {
		if o.Resume.Interval > 0 && o.Resume.Interval != o.CheckpointInterval {
			return nil, fmt.Errorf("solver: snapshot written with checkpoint interval %d, configured %d: %w",
				o.Resume.Interval, o.CheckpointInterval, ErrBadInterval)
		}
		// Restored solutions are inserted silently; the hook only fires for
		// trails found by this process.
		for _, sol := range o.Resume.Solutions {
			cp := append([]byte(nil), sol...)
			if _, dup := s.solutions[string(cp)]; !dup {
				s.solutions[string(cp)] = struct{}{}
				s.order = append(s.order, cp)
			}
		}
		s.exhausted.Restore(o.Resume.Exhausted)
		s.abandoned = o.Resume.Abandoned
		s.started = time.Now().Add(-o.Resume.Elapsed)
	}

	return s, nil
}

// SolveFrom runs the search from a single start node. Solutions and dead-end
// state accumulate on the Solver.
func (s *Solver) SolveFrom(start mapping.NodeID) error {
	if _, ok := s.m.NodesToPaths[start]; !ok {
		return fmt.Errorf("solver: node %d: %w", start, ErrStartNodeNotFound)
	}

	return s.solve(start)
}

// SolveFromMultiple runs the search from each of the given start nodes in
// order. The same cyclic trail may be reported once per start that reaches
// it; the solution set stays deduplicated.
func (s *Solver) SolveFromMultiple(starts []mapping.NodeID) error {
	var start mapping.NodeID
	for _, start = range starts {
		s.chatter(fmt.Sprintf("searching from node %q", s.m.NodeLabels[start]))
		if err := s.SolveFrom(start); err != nil {
			return err
		}
	}

	return nil
}

// SolveAll runs the search from every node of the map: the full exhaustive
// enumeration.
func (s *Solver) SolveAll() error {
	return s.SolveFromMultiple(s.m.Nodes())
}

// solve extends the trail from node by one unused path per candidate and
// recurses. Candidates come pre-sorted ascending from mapping, giving the
// deterministic lowest-ID-first exploration order.
func (s *Solver) solve(node mapping.NodeID) error {
	// 1. Cancellation check, once per frame.
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}

	// 2. Complete trail: every path crossed exactly once.
	if s.length == s.total {
		s.record(s.trail[:s.length])

		return nil
	}

	// 3. Try each unused path touching this node, lowest ID first.
	hadCandidate := false
	var err error
	var p mapping.PathID
	for _, p = range s.m.NodesToPaths[node] {
		if s.used[p] {
			continue
		}
		hadCandidate = true

		far := s.m.PathsToNodes[p].Other(node)
		s.trail[s.length] = byte(p)
		s.length++
		s.used[p] = true

		// Skip the candidate when the extended prefix is known-futile.
		if !s.opts.Tracking || !s.exhausted.ContainsPrefix(s.trail[:s.length]) {
			err = s.solve(far)
		}

		// Roll back exactly, success or not: the buffer is shared.
		s.length--
		s.used[p] = false
		s.trail[s.length] = 0

		if err != nil {
			return err
		}
	}

	// 4. Dead end: incomplete trail with nowhere to go.
	if !hadCandidate {
		s.deadEnd()
	}

	return nil
}

// record adds trail to the solution set if unseen and reports it either way.
func (s *Solver) record(trail []byte) {
	cp := append([]byte(nil), trail...)
	key := string(cp)
	if _, dup := s.solutions[key]; !dup {
		s.solutions[key] = struct{}{}
		s.order = append(s.order, cp)
	}

	s.emitted++
	if s.opts.Reporter != nil {
		s.opts.Reporter.Solution(cp, s.emitted)
	}
}

// deadEnd accounts for an abandoned trail: counter, exhausted store insert
// (with throttled pruning), reporting, and a possible checkpoint save.
func (s *Solver) deadEnd() {
	s.abandoned++

	if s.opts.Tracking {
		s.exhausted.Add(s.trail[:s.length])
		if s.exhausted.NeedsPrune(s.opts.PruneThreshold) {
			s.exhausted.Prune()
		}
	}

	s.reportAbandoned()

	if s.opts.Tracking && s.length%s.opts.CheckpointInterval == 0 {
		// Save errors are non-fatal: surfaced to the reporter, search goes on.
		_ = s.Checkpoint(false)
	}
}

// reportAbandoned notifies the Reporter per the verbosity ladder: every dead
// end at VerbosityAllAbandoned, only report-interval lengths at
// VerbositySelectedAbandoned.
func (s *Solver) reportAbandoned() {
	if s.opts.Reporter == nil {
		return
	}
	selected := s.length%s.opts.AbandonedReportInterval == 0
	if s.opts.Verbosity >= VerbosityAllAbandoned ||
		(s.opts.Verbosity >= VerbositySelectedAbandoned && selected) {
		s.opts.Reporter.Abandoned(append([]byte(nil), s.trail[:s.length]...), s.abandoned)
	}
}

// chatter emits a friendly progress message at VerbosityFriendlyChatter.
func (s *Solver) chatter(msg string) {
	if s.opts.Reporter != nil && s.opts.Verbosity >= VerbosityFriendlyChatter {
		s.opts.Reporter.Chatter(msg)
	}
}

// Checkpoint prunes the exhausted store, snapshots the state, and hands it
// to the configured Checkpointer. force bypasses the Checkpointer's save
// throttle (used for final saves on shutdown). No-op without a Checkpointer.
func (s *Solver) Checkpoint(force bool) error {
	if s.opts.Checkpointer == nil {
		return nil
	}

	// Prune first so the record carries the minimal prefix set.
	if s.opts.Tracking && s.opts.PruneOnSave {
		s.exhausted.Prune()
	}

	saved, err := s.opts.Checkpointer.MaybeSave(s.Snapshot(), force)
	if err != nil {
		if s.opts.Reporter != nil {
			s.opts.Reporter.SaveFailed(err)
		}

		return fmt.Errorf("solver: checkpoint save: %w", err)
	}
	if saved && s.opts.Reporter != nil && s.opts.Verbosity >= VerbosityProgressOnSave {
		s.opts.Reporter.Saved(s.Snapshot())
	}

	return nil
}

// Snapshot returns an immutable copy of the resumable state.
func (s *Solver) Snapshot() Snapshot {
	sols := make([][]byte, len(s.order))
	for i, sol := range s.order {
		sols[i] = append([]byte(nil), sol...)
	}

	return Snapshot{
		Solutions: sols,
		Exhausted: s.exhausted.Sequences(),
		Abandoned: s.abandoned,
		Elapsed:   time.Since(s.started),
		Interval:  s.opts.CheckpointInterval,
	}
}

// Result returns the caller-facing view of accumulated state.
func (s *Solver) Result() *Result {
	sols := make([][]byte, len(s.order))
	for i, sol := range s.order {
		sols[i] = append([]byte(nil), sol...)
	}

	return &Result{
		Solutions: sols,
		Abandoned: s.abandoned,
		Elapsed:   time.Since(s.started),
	}
}

// Reset discards all accumulated state (solutions, exhausted prefixes,
// counters, timing), returning the Solver to a fresh run. Nothing else ever
// clears process-lifetime state.
func (s *Solver) Reset() {
	s.trail = make([]byte, s.total)
	s.length = 0
	s.used = [mapping.MaxPaths + 1]bool{}
	s.solutions = make(map[string]struct{})
	s.order = nil
	s.exhausted = NewExhaustedSet()
	s.abandoned = 0
	s.emitted = 0
	s.started = time.Now()
}
