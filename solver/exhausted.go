package solver

import "sort"

// ExhaustedSet stores dead-end trail prefixes. A prefix in the set means
// every extension of it has been proven futile, so membership is the
// search's pruning oracle. Entries are keyed by the raw byte sequence of
// path IDs; lookups cost O(trail length), never O(set size).
type ExhaustedSet struct {
	entries   map[string]struct{}
	lastPrune int // set size recorded at the end of the last prune
}

// NewExhaustedSet returns an empty store.
func NewExhaustedSet() *ExhaustedSet {
	return &ExhaustedSet{entries: make(map[string]struct{})}
}

// Add records trail as an exhausted prefix. The bytes are copied via the
// string conversion; the caller's buffer may be reused.
func (s *ExhaustedSet) Add(trail []byte) {
	s.entries[string(trail)] = struct{}{}
}

// Len reports the number of stored prefixes.
func (s *ExhaustedSet) Len() int {
	return len(s.entries)
}

// ContainsPrefix reports whether any prefix of trail (length 1 up to and
// including the full length) is stored. A hit at any length means the
// candidate cannot extend to a solution.
func (s *ExhaustedSet) ContainsPrefix(trail []byte) bool {
	for l := 1; l <= len(trail); l++ {
		if _, ok := s.entries[string(trail[:l])]; ok {
			return true
		}
	}

	return false
}

// NeedsPrune reports whether the store has grown past its last-prune size by
// more than threshold entries.
func (s *ExhaustedSet) NeedsPrune(threshold int) bool {
	return len(s.entries)-s.lastPrune > threshold
}

// Prune rebuilds the store as a prefix-minimal set: processing sequences
// shortest-first, each is kept only if none of its proper prefixes has
// already been kept. Any sequence extending a shorter stored dead end is
// redundant and dropped. The resulting size becomes the new prune watermark.
//
// Cost is O(entries × average length); callers throttle it via NeedsPrune.
func (s *ExhaustedSet) Prune() {
	// 1. Sort stored sequences by ascending length.
	seqs := make([]string, 0, len(s.entries))
	for k := range s.entries {
		seqs = append(seqs, k)
	}
	sort.Slice(seqs, func(i, j int) bool {
		if len(seqs[i]) != len(seqs[j]) {
			return len(seqs[i]) < len(seqs[j])
		}

		return seqs[i] < seqs[j]
	})

	// 2. Keep a sequence only if no proper prefix of it survives.
	next := make(map[string]struct{}, len(seqs))
	var redundant bool
	for _, seq := range seqs {
		redundant = false
		for l := 1; l < len(seq); l++ {
			if _, ok := next[seq[:l]]; ok {
				redundant = true
				break
			}
		}
		if !redundant {
			next[seq] = struct{}{}
		}
	}

	s.entries = next
	s.lastPrune = len(next)
}

// Sequences returns a deterministic copy of the stored prefixes, sorted by
// length then lexicographically, giving stable bytes for checkpoint records.
func (s *ExhaustedSet) Sequences() [][]byte {
	seqs := make([]string, 0, len(s.entries))
	for k := range s.entries {
		seqs = append(seqs, k)
	}
	sort.Slice(seqs, func(i, j int) bool {
		if len(seqs[i]) != len(seqs[j]) {
			return len(seqs[i]) < len(seqs[j])
		}

		return seqs[i] < seqs[j]
	})

	out := make([][]byte, len(seqs))
	for i, seq := range seqs {
		out[i] = []byte(seq)
	}

	return out
}

// Restore replaces the store contents with seqs, as loaded from a
// checkpoint. The prune watermark resets to the restored size.
func (s *ExhaustedSet) Restore(seqs [][]byte) {
	s.entries = make(map[string]struct{}, len(seqs))
	for _, seq := range seqs {
		s.entries[string(seq)] = struct{}{}
	}
	s.lastPrune = len(s.entries)
}
