package nfa

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// collectAlphabet derives the alphabet from a transition relation: the
// union of the symbols keying any entry, including entries whose target set
// is empty. The result is sorted so every walk over the alphabet visits
// symbols in the same order.
func collectAlphabet(delta []map[Symbol]*StateSet) []Symbol {
	seen := make(map[Symbol]struct{})
	for _, row := range delta {
		for a := range row {
			seen[a] = struct{}{}
		}
	}
	alphabet := maps.Keys(seen)
	slices.Sort(alphabet)
	return alphabet
}

// ParseSymbol converts a one-rune string into a Symbol.
// Returns false for the empty string or strings of more than one rune.
func ParseSymbol(s string) (Symbol, bool) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, false
	}
	return Symbol(runes[0]), true
}
