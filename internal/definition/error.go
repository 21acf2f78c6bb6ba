package definition

import (
	"errors"
	"fmt"
)

// Definition errors
var (
	// ErrNoStart indicates the definition has no start state
	ErrNoStart = errors.New("definition has no start state")

	// ErrInvalidSymbol indicates a transition key that is not one rune
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrInvalidState indicates an empty state name
	ErrInvalidState = errors.New("invalid state name")

	// ErrUnknownBuiltin indicates a built-in name that does not exist
	ErrUnknownBuiltin = errors.New("unknown built-in automaton")
)

// Error ties a definition failure to the file it came from.
type Error struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("definition %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}
