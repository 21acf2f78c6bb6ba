package nfa

import (
	"github.com/coregx/fsa/internal/conv"
)

// Builder constructs NFAs incrementally from named states.
//
// States are interned on first mention, whether as a transition source, a
// transition target, the start state or a final state. Repeated transitions
// for the same (state, symbol) pair accumulate into one target set.
type Builder struct {
	names []string
	index map[string]StateID
	delta []map[Symbol]*StateSet
	start StateID
	final *StateSet
}

// NewBuilder creates a new empty NFA builder
func NewBuilder() *Builder {
	return &Builder{
		index: make(map[string]StateID),
		start: InvalidState,
		final: &StateSet{},
	}
}

// AddState declares a state and returns its ID.
// Declaring an existing name returns the existing ID.
func (b *Builder) AddState(name string) StateID {
	if id, ok := b.index[name]; ok {
		return id
	}
	id := StateID(conv.IntToUint32(len(b.names)))
	b.names = append(b.names, name)
	b.index[name] = id
	b.delta = append(b.delta, nil)
	return id
}

// AddTransition records from --a--> to for every target.
// Calling it without targets still declares the entry, which puts a in the
// alphabet while leaving the move empty.
func (b *Builder) AddTransition(from string, a Symbol, to ...string) {
	src := b.AddState(from)
	row := b.delta[src]
	if row == nil {
		row = make(map[Symbol]*StateSet)
		b.delta[src] = row
	}
	targets, ok := row[a]
	if !ok {
		targets = &StateSet{}
		row[a] = targets
	}
	for _, name := range to {
		targets.Add(b.AddState(name))
	}
}

// SetStart sets the initial state
func (b *Builder) SetStart(name string) {
	b.start = b.AddState(name)
}

// AddFinal marks states as accepting
func (b *Builder) AddFinal(names ...string) {
	for _, name := range names {
		b.final.Add(b.AddState(name))
	}
}

// States returns the current number of states
func (b *Builder) States() int {
	return len(b.names)
}

// Build finalizes the NFA. The builder may keep being used afterwards;
// the returned NFA does not share state with it.
func (b *Builder) Build() (*NFA, error) {
	if b.start == InvalidState {
		return nil, &BuildError{Message: "start state not set", Err: ErrNoStartState}
	}

	names := make([]string, len(b.names))
	copy(names, b.names)
	index := make(map[string]StateID, len(b.index))
	for name, id := range b.index {
		index[name] = id
	}
	delta := make([]map[Symbol]*StateSet, len(b.delta))
	for q, row := range b.delta {
		if row == nil {
			continue
		}
		delta[q] = make(map[Symbol]*StateSet, len(row))
		for a, targets := range row {
			delta[q][a] = targets.Clone()
		}
	}

	return &NFA{
		names:    names,
		index:    index,
		delta:    delta,
		start:    b.start,
		final:    b.final.Clone(),
		alphabet: collectAlphabet(delta),
	}, nil
}
