package dfa

import (
	"fmt"

	"github.com/coregx/fsa/internal/conv"
	"github.com/coregx/fsa/internal/sparse"
)

// Validate checks the structural invariants of the DFA:
//   - every (state, symbol) entry is present and targets a known state
//   - every state is reachable from the start state
//   - a state is final iff its subset meets the NFA's final states
//   - no two states stand for the same subset
//
// A DFA returned by Builder.Build always validates.
func (d *DFA) Validate() error {
	n := len(d.states)
	stride := len(d.alphabet)
	if stride == 0 {
		return ErrEmptyAlphabet
	}
	if len(d.table) != n*stride {
		return violation("transition table has %d entries, want %d", len(d.table), n*stride)
	}
	if int(d.start) >= n {
		return violation("start state %d out of range", d.start)
	}
	if len(d.byKey) != n {
		return violation("%d states but %d distinct subsets", n, len(d.byKey))
	}

	for id := 0; id < n; id++ {
		for i, a := range d.alphabet {
			t := d.table[id*stride+i]
			if t == InvalidState {
				return &DFAError{
					Kind:    MissingTransition,
					Message: fmt.Sprintf("no transition from DFA state %d on %q", id, a),
				}
			}
			if int(t) >= n {
				return violation("state %d on %q targets unknown state %d", id, a, t)
			}
		}
	}

	if d.nfa != nil {
		final := d.nfa.Final()
		for _, s := range d.states {
			if s.isMatch != s.nfaStates.Intersects(final) {
				return violation("state %d finality does not match its subset %s", s.id, s.nfaStates)
			}
		}
	}

	seen := sparse.NewSparseSet(conv.IntToUint32(n))
	seen.Insert(uint32(d.start))
	queue := []uint32{uint32(d.start)}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for i := 0; i < stride; i++ {
			t := uint32(d.table[int(id)*stride+i])
			if seen.Insert(t) {
				queue = append(queue, t)
			}
		}
	}
	if seen.Len() != n {
		return violation("%d of %d states unreachable from start", n-seen.Len(), n)
	}

	return nil
}

func violation(format string, args ...any) error {
	return &DFAError{
		Kind:    InvariantViolation,
		Message: fmt.Sprintf(format, args...),
	}
}
