package nfa

import (
	"fmt"
)

// Keywords builds an NFA over alphabet accepting every string that contains
// at least one of the words as a substring.
//
// The automaton guesses where a keyword starts: the start state loops on
// every symbol, each keyword is a chain of states, and the shared accepting
// state loops on every symbol so the rest of the input is consumed.
// An empty word makes every string acceptable.
func Keywords(alphabet []Symbol, words ...string) (*NFA, error) {
	if len(alphabet) == 0 {
		return nil, &BuildError{Message: "keyword automaton needs a non-empty alphabet", Err: ErrEmptyAlphabet}
	}
	if len(words) == 0 {
		return nil, &BuildError{Message: "no keywords given"}
	}

	known := make(map[Symbol]struct{}, len(alphabet))
	for _, a := range alphabet {
		known[a] = struct{}{}
	}

	const start, match = "start", "match"
	b := NewBuilder()
	b.SetStart(start)
	b.AddFinal(match)
	for _, a := range alphabet {
		b.AddTransition(start, a, start)
		b.AddTransition(match, a, match)
	}

	for i, word := range words {
		if word == "" {
			b.AddFinal(start)
			continue
		}
		runes := []rune(word)
		prev := start
		for j, r := range runes {
			a := Symbol(r)
			if _, ok := known[a]; !ok {
				return nil, &BuildError{
					Message: fmt.Sprintf("keyword %q uses symbol %q outside the alphabet", word, a),
					Err:     ErrUnknownSymbol,
				}
			}
			next := match
			if j < len(runes)-1 {
				next = fmt.Sprintf("k%d.%d", i, j+1)
			}
			b.AddTransition(prev, a, next)
			prev = next
		}
	}

	return b.Build()
}
