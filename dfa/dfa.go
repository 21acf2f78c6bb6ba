// Package dfa provides deterministic finite automata obtained from an NFA by
// subset construction.
//
// Each DFA state stands for one reachable subset of NFA states. Subsets are
// identified by content (nfa.StateSet.Key), never by the order in which the
// construction discovered them. Transitions live in a dense |Q|×|Σ| table,
// total over the alphabet once construction completes. A DFA is immutable
// and safe for concurrent use.
package dfa

import (
	"errors"
	"fmt"

	"github.com/coregx/fsa/nfa"
)

// StateID identifies a DFA state: its row in the transition table.
type StateID uint32

// Special state constants
const (
	// InvalidState marks an empty table entry
	InvalidState StateID = 0xFFFFFFFF

	// StartState is always state ID 0 (the singleton {q0})
	StartState StateID = 0
)

// State is one DFA state together with the NFA subset it stands for.
type State struct {
	id        StateID
	nfaStates *nfa.StateSet
	key       string
	isMatch   bool
}

// ID returns the state's identifier
func (s *State) ID() StateID {
	return s.id
}

// IsMatch returns true if this is an accepting state
func (s *State) IsMatch() bool {
	return s.isMatch
}

// NFAStates returns a copy of the NFA subset this state stands for
func (s *State) NFAStates() *nfa.StateSet {
	return s.nfaStates.Clone()
}

// Key returns the canonical key of the underlying NFA subset
func (s *State) Key() string {
	return s.key
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	return fmt.Sprintf("DFAState(id=%d, isMatch=%v, nfaStates=%s)", s.id, s.isMatch, s.nfaStates)
}

// DFA is a deterministic finite automaton over the alphabet of its NFA.
type DFA struct {
	nfa *nfa.NFA

	alphabet    []nfa.Symbol
	symbolIndex map[nfa.Symbol]int

	states []*State
	byKey  map[string]StateID

	// table[id*len(alphabet)+i] is the target of state id on alphabet[i]
	table []StateID

	start StateID
}

// NFA returns the automaton this DFA was constructed from
func (d *DFA) NFA() *nfa.NFA {
	return d.nfa
}

// Alphabet returns the input alphabet in ascending order
func (d *DFA) Alphabet() []nfa.Symbol {
	out := make([]nfa.Symbol, len(d.alphabet))
	copy(out, d.alphabet)
	return out
}

// StateCount returns |Q|, the number of reachable subsets
func (d *DFA) StateCount() int {
	return len(d.states)
}

// Start returns the initial state
func (d *DFA) Start() StateID {
	return d.start
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (d *DFA) State(id StateID) *State {
	if int(id) >= len(d.states) {
		return nil
	}
	return d.states[id]
}

// IsMatch returns true if the given state is accepting
func (d *DFA) IsMatch(id StateID) bool {
	if s := d.State(id); s != nil {
		return s.isMatch
	}
	return false
}

// FinalStates returns the accepting states in ID order
func (d *DFA) FinalStates() []StateID {
	var out []StateID
	for _, s := range d.states {
		if s.isMatch {
			out = append(out, s.id)
		}
	}
	return out
}

// Lookup returns the DFA state standing for the given NFA subset, if that
// subset is reachable.
func (d *DFA) Lookup(set *nfa.StateSet) (StateID, bool) {
	id, ok := d.byKey[set.Key()]
	return id, ok
}

// Next returns the target of state id on symbol a.
//
// A symbol outside the alphabet yields ErrSymbolNotInAlphabet. An empty
// table entry yields ErrMissingTransition, which signals a construction
// defect rather than a rejected input.
func (d *DFA) Next(id StateID, a nfa.Symbol) (StateID, error) {
	if int(id) >= len(d.states) {
		return InvalidState, &DFAError{
			Kind:    InvariantViolation,
			Message: fmt.Sprintf("state %d out of range (%d states)", id, len(d.states)),
		}
	}
	i, ok := d.symbolIndex[a]
	if !ok {
		return InvalidState, &DFAError{
			Kind:    SymbolNotInAlphabet,
			Message: fmt.Sprintf("symbol %q not in DFA alphabet", a),
		}
	}
	next := d.table[int(id)*len(d.alphabet)+i]
	if next == InvalidState {
		return InvalidState, &DFAError{
			Kind:    MissingTransition,
			Message: fmt.Sprintf("no transition from DFA state %d on %q", id, a),
		}
	}
	return next, nil
}

// DeltaHat follows exactly one transition per input symbol from the given
// state and returns the state reached.
func (d *DFA) DeltaHat(from StateID, input string) (StateID, error) {
	state := from
	for _, r := range input {
		next, err := d.Next(state, nfa.Symbol(r))
		if err != nil {
			return InvalidState, err
		}
		state = next
	}
	return state, nil
}

// Accepts returns true if input drives the DFA from its start state into a
// final state. Errors are those of DeltaHat.
func (d *DFA) Accepts(input string) (bool, error) {
	end, err := d.DeltaHat(d.start, input)
	if err != nil {
		return false, err
	}
	return d.states[end].isMatch, nil
}

// InLanguage returns true if the DFA accepts input.
//
// Input containing a symbol outside the alphabet is rejected, the same
// verdict the NFA gives when no transition is defined. A missing transition
// is a broken construction invariant and panics instead of being reported
// as rejection.
func (d *DFA) InLanguage(input string) bool {
	ok, err := d.Accepts(input)
	if err != nil {
		if errors.Is(err, ErrSymbolNotInAlphabet) {
			return false
		}
		panic(err)
	}
	return ok
}

// Format renders a state as its NFA subset using NFA state names.
func (d *DFA) Format(id StateID) string {
	s := d.State(id)
	if s == nil {
		return fmt.Sprintf("<invalid %d>", id)
	}
	if d.nfa == nil {
		return s.nfaStates.String()
	}
	return d.nfa.FormatSet(s.nfaStates)
}

// Equal reports whether d and other are structurally identical: the same
// alphabet, the same subsets, the same finality, and matching targets for
// every state and symbol. State numbering is ignored, so DFAs built with
// different worklist orders compare equal.
func (d *DFA) Equal(other *DFA) bool {
	if len(d.alphabet) != len(other.alphabet) || len(d.states) != len(other.states) {
		return false
	}
	for i, a := range d.alphabet {
		if other.alphabet[i] != a {
			return false
		}
	}
	if d.states[d.start].key != other.states[other.start].key {
		return false
	}

	stride := len(d.alphabet)
	for _, s := range d.states {
		oid, ok := other.byKey[s.key]
		if !ok {
			return false
		}
		if other.states[oid].isMatch != s.isMatch {
			return false
		}
		for i := 0; i < stride; i++ {
			t := d.table[int(s.id)*stride+i]
			ot := other.table[int(oid)*stride+i]
			if t == InvalidState || ot == InvalidState {
				if t != ot {
					return false
				}
				continue
			}
			if d.states[t].key != other.states[ot].key {
				return false
			}
		}
	}
	return true
}

// String returns a short summary of the DFA
func (d *DFA) String() string {
	return fmt.Sprintf("DFA(states=%d, alphabet=%d, final=%d)",
		len(d.states), len(d.alphabet), len(d.FinalStates()))
}
