package nfa

import (
	"fmt"
	"strings"
)

// StateID uniquely identifies an NFA state.
// IDs are dense, assigned by the Builder in the order names are first seen.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID
const InvalidState StateID = 0xFFFFFFFF

// Symbol is one element of the input alphabet.
// Input strings are consumed one rune at a time.
type Symbol rune

// String returns the symbol as a one-rune string
func (a Symbol) String() string {
	return string(rune(a))
}

// NFA is a nondeterministic finite automaton.
//
// The transition relation is partial: a (state, symbol) pair without an
// entry has no move, which behaves exactly like an entry mapping to the
// empty set. An NFA is immutable once built and safe for concurrent use.
type NFA struct {
	// names holds the state name for each StateID
	names []string

	// index maps a state name back to its StateID
	index map[string]StateID

	// delta[q][a] is the set of states reachable from q on symbol a.
	// Missing entries mean "no move".
	delta []map[Symbol]*StateSet

	start StateID
	final *StateSet

	// alphabet is every symbol keying some transition, ascending
	alphabet []Symbol
}

// States returns the total number of states in the NFA
func (n *NFA) States() int {
	return len(n.names)
}

// Start returns the initial state
func (n *NFA) Start() StateID {
	return n.start
}

// IsFinal returns true if the given state is accepting
func (n *NFA) IsFinal(id StateID) bool {
	return n.final.Contains(id)
}

// Final returns a copy of the final-state set
func (n *NFA) Final() *StateSet {
	return n.final.Clone()
}

// Name returns the name the state was declared with.
// Returns "" for an ID outside the automaton.
func (n *NFA) Name(id StateID) string {
	if int(id) >= len(n.names) {
		return ""
	}
	return n.names[id]
}

// Lookup returns the ID of the named state
func (n *NFA) Lookup(name string) (StateID, bool) {
	id, ok := n.index[name]
	return id, ok
}

// Alphabet returns the input alphabet: every symbol that keys at least one
// transition entry, in ascending order.
// Returns ErrEmptyAlphabet if the transition relation is empty.
func (n *NFA) Alphabet() ([]Symbol, error) {
	if len(n.alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	out := make([]Symbol, len(n.alphabet))
	copy(out, n.alphabet)
	return out, nil
}

// Transition returns the targets of from on symbol a.
// The second result is false when the relation has no entry for the pair;
// that is not an error, the move simply yields the empty set.
func (n *NFA) Transition(from StateID, a Symbol) (*StateSet, bool) {
	targets, ok := n.transition(from, a)
	if !ok {
		return &StateSet{}, false
	}
	return targets.Clone(), true
}

func (n *NFA) transition(from StateID, a Symbol) (*StateSet, bool) {
	if int(from) >= len(n.delta) {
		return nil, false
	}
	targets, ok := n.delta[from][a]
	return targets, ok
}

// Step computes the one-symbol move of a whole set: the union, over every
// state in from, of its targets on a. States with no entry for a contribute
// nothing.
func (n *NFA) Step(from *StateSet, a Symbol) *StateSet {
	next := newStateSetWithCapacity(len(n.names))
	for _, q := range from.Values() {
		if targets, ok := n.transition(q, a); ok {
			next.Union(targets)
		}
	}
	return next
}

// DeltaHat runs the NFA over input starting from a single state and returns
// the set of states it can be in afterwards. The result may be empty.
func (n *NFA) DeltaHat(from StateID, input string) *StateSet {
	return n.DeltaHatSet(NewStateSet(from), input)
}

// DeltaHatSet runs the NFA over input starting from every state in from.
func (n *NFA) DeltaHatSet(from *StateSet, input string) *StateSet {
	current := from.Clone()
	for _, r := range input {
		current = n.Step(current, Symbol(r))
		if current.IsEmpty() {
			// No state survives; the remaining input cannot revive one.
			return current
		}
	}
	return current
}

// InLanguage returns true if some run over input from the start state ends
// in a final state.
func (n *NFA) InLanguage(input string) bool {
	return n.DeltaHat(n.start, input).Intersects(n.final)
}

// FormatSet renders a state set using state names, e.g. "{q0, q7}".
func (n *NFA) FormatSet(s *StateSet) string {
	ids := s.Values()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = n.Name(id)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// String returns a short summary of the NFA
func (n *NFA) String() string {
	return fmt.Sprintf("NFA(states=%d, alphabet=%d, start=%s, final=%s)",
		len(n.names), len(n.alphabet), n.Name(n.start), n.FormatSet(n.final))
}
