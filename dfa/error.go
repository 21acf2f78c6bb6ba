package dfa

import "fmt"

// Error types for DFA construction and simulation

// ErrEmptyAlphabet indicates the NFA has no transitions, so there are no
// symbols to determinize over. Reported before any construction work.
var ErrEmptyAlphabet = &DFAError{
	Kind:    EmptyAlphabet,
	Message: "NFA alphabet is empty",
}

// ErrStateLimitExceeded indicates that subset construction discovered more
// reachable subsets than Config.MaxStates allows.
var ErrStateLimitExceeded = &DFAError{
	Kind:    StateLimitExceeded,
	Message: "DFA state limit exceeded",
}

// ErrInvalidConfig indicates that the provided configuration is invalid.
var ErrInvalidConfig = &DFAError{
	Kind:    InvalidConfig,
	Message: "invalid DFA configuration",
}

// ErrMissingTransition indicates a reachable DFA state has no transition for
// a symbol of the alphabet. A DFA produced by the Builder never has one, so
// this always points at a defect, never at a rejected input.
var ErrMissingTransition = &DFAError{
	Kind:    MissingTransition,
	Message: "DFA transition missing",
}

// ErrSymbolNotInAlphabet indicates an input symbol outside the alphabet.
var ErrSymbolNotInAlphabet = &DFAError{
	Kind:    SymbolNotInAlphabet,
	Message: "symbol not in DFA alphabet",
}

// ErrInvariantViolation indicates the DFA failed a structural check
// (unreachable state, dangling target, finality mismatch, duplicate subset).
var ErrInvariantViolation = &DFAError{
	Kind:    InvariantViolation,
	Message: "DFA invariant violated",
}

// ErrorKind classifies DFA errors into categories
type ErrorKind uint8

const (
	// EmptyAlphabet indicates the NFA derives no alphabet
	EmptyAlphabet ErrorKind = iota

	// StateLimitExceeded indicates too many states were created
	StateLimitExceeded

	// InvalidConfig indicates configuration validation failed
	InvalidConfig

	// MissingTransition indicates an undefined (state, symbol) entry
	MissingTransition

	// SymbolNotInAlphabet indicates input outside the alphabet
	SymbolNotInAlphabet

	// InvariantViolation indicates a failed structural check
	InvariantViolation
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case EmptyAlphabet:
		return "EmptyAlphabet"
	case StateLimitExceeded:
		return "StateLimitExceeded"
	case InvalidConfig:
		return "InvalidConfig"
	case MissingTransition:
		return "MissingTransition"
	case SymbolNotInAlphabet:
		return "SymbolNotInAlphabet"
	case InvariantViolation:
		return "InvariantViolation"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// DFAError represents an error that occurred during DFA operations
type DFAError struct {
	Kind    ErrorKind
	Message string
	Cause   error // Optional underlying error
}

// Error implements the error interface
func (e *DFAError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error (for errors.Is/As)
func (e *DFAError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison for errors.Is
func (e *DFAError) Is(target error) bool {
	t, ok := target.(*DFAError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
