// Package nfa provides a nondeterministic finite automaton over a finite
// alphabet of runes.
//
// An NFA is assembled through a Builder from named states and a partial
// transition relation (state, symbol) -> set of states. Once built it is
// immutable and can be simulated over whole input strings (the extended
// transition function, deltaHat) or handed to the dfa package for subset
// construction.
package nfa

import (
	"errors"
	"fmt"
)

// Common NFA errors
var (
	// ErrEmptyAlphabet indicates the transition relation is empty, so no
	// alphabet can be derived from it
	ErrEmptyAlphabet = errors.New("empty alphabet: NFA has no transitions")

	// ErrNoStartState indicates Build was called before SetStart
	ErrNoStartState = errors.New("start state not set")

	// ErrUnknownSymbol indicates a symbol outside the declared alphabet
	ErrUnknownSymbol = errors.New("symbol not in alphabet")
)

// BuildError represents an error during NFA construction via the Builder API
type BuildError struct {
	Message string
	State   string
	Err     error
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.State != "" {
		return fmt.Sprintf("NFA build error at state %q: %s", e.State, e.Message)
	}
	return fmt.Sprintf("NFA build error: %s", e.Message)
}

// Unwrap returns the underlying error
func (e *BuildError) Unwrap() error {
	return e.Err
}
