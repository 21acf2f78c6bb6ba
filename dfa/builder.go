package dfa

import (
	"fmt"

	"github.com/coregx/fsa/internal/conv"
	"github.com/coregx/fsa/nfa"
)

// Builder derives a DFA from an NFA by subset construction.
//
// Only subsets reachable from {q0} are materialized:
//  1. Intern {q0} as the start state and push it on the worklist
//  2. Pop a subset S; for every symbol a, compute Step(S, a)
//  3. Record the transition; intern and push the target if it is new
//  4. Stop when the worklist is empty
//
// Each pop either leaves Q unchanged or grows it, and Q is bounded by the
// number of distinct subsets, so construction terminates.
type Builder struct {
	nfa    *nfa.NFA
	config Config
}

// NewBuilder creates a new DFA builder for the given NFA
func NewBuilder(n *nfa.NFA, config Config) *Builder {
	return &Builder{
		nfa:    n,
		config: config,
	}
}

// Determinize converts n into an equivalent DFA using DefaultConfig.
func Determinize(n *nfa.NFA) (*DFA, error) {
	return NewBuilder(n, DefaultConfig()).Build()
}

// Build runs subset construction and returns the finished DFA.
//
// Returns ErrInvalidConfig for a bad configuration, ErrEmptyAlphabet when
// the NFA has no transitions (detected before any work is done) and
// ErrStateLimitExceeded when the reachable subsets outnumber MaxStates.
func (b *Builder) Build() (*DFA, error) {
	if err := b.config.Validate(); err != nil {
		return nil, err
	}

	alphabet, err := b.nfa.Alphabet()
	if err != nil {
		return nil, &DFAError{
			Kind:    EmptyAlphabet,
			Message: "cannot determinize an NFA without transitions",
			Cause:   err,
		}
	}

	symbolIndex := make(map[nfa.Symbol]int, len(alphabet))
	for i, a := range alphabet {
		symbolIndex[a] = i
	}

	d := &DFA{
		nfa:         b.nfa,
		alphabet:    alphabet,
		symbolIndex: symbolIndex,
		byKey:       make(map[string]StateID),
		start:       StartState,
	}

	final := b.nfa.Final()
	startSet := nfa.NewStateSet(b.nfa.Start())
	work := newWorklist(b.config.Order)
	work.push(d.addState(startSet, startSet.Intersects(final)))

	stride := len(alphabet)
	for !work.empty() {
		id := work.pop()
		current := d.states[id].nfaStates

		for i, a := range alphabet {
			next := b.nfa.Step(current, a)
			target, seen := d.byKey[next.Key()]
			if !seen {
				if len(d.states) >= b.config.MaxStates {
					return nil, &DFAError{
						Kind:    StateLimitExceeded,
						Message: fmt.Sprintf("more than %d reachable subsets", b.config.MaxStates),
					}
				}
				target = d.addState(next, next.Intersects(final))
				work.push(target)
			}
			d.table[int(id)*stride+i] = target
		}
	}

	return d, nil
}

// addState interns a newly discovered subset and reserves its table row.
func (d *DFA) addState(set *nfa.StateSet, isMatch bool) StateID {
	id := StateID(conv.IntToUint32(len(d.states)))
	key := set.Key()
	d.states = append(d.states, &State{
		id:        id,
		nfaStates: set,
		key:       key,
		isMatch:   isMatch,
	})
	d.byKey[key] = id
	for range d.alphabet {
		d.table = append(d.table, InvalidState)
	}
	return id
}

// worklist holds discovered subsets whose transitions are not yet computed.
type worklist struct {
	order Order
	items []StateID
	head  int
}

func newWorklist(order Order) *worklist {
	return &worklist{order: order}
}

func (w *worklist) push(id StateID) {
	w.items = append(w.items, id)
}

func (w *worklist) empty() bool {
	return w.head == len(w.items)
}

func (w *worklist) pop() StateID {
	if w.order == OrderLIFO {
		last := len(w.items) - 1
		id := w.items[last]
		w.items = w.items[:last]
		return id
	}
	id := w.items[w.head]
	w.head++
	return id
}
