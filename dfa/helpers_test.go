package dfa

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/coregx/fsa/nfa"
)

// residueNFA accepts decimal strings whose value is divisible by m.
func residueNFA(t testing.TB, m int) *nfa.NFA {
	t.Helper()
	b := nfa.NewBuilder()
	for i := 0; i < m; i++ {
		for d := 0; d < 10; d++ {
			b.AddTransition(fmt.Sprintf("q%d", i), nfa.Symbol('0'+d), fmt.Sprintf("q%d", (10*i+d)%m))
		}
	}
	b.SetStart("q0")
	b.AddFinal("q0")
	return mustBuild(t, b)
}

// thirdFromLastNFA accepts strings over {a, b} whose third symbol from the
// end is 'a'; its DFA needs all 8 subsets {s} ∪ P, P ⊆ {p1, p2, p3}.
func thirdFromLastNFA(t testing.TB) *nfa.NFA {
	t.Helper()
	b := nfa.NewBuilder()
	b.AddTransition("s", 'a', "s", "p1")
	b.AddTransition("s", 'b', "s")
	b.AddTransition("p1", 'a', "p2")
	b.AddTransition("p1", 'b', "p2")
	b.AddTransition("p2", 'a', "p3")
	b.AddTransition("p2", 'b', "p3")
	b.SetStart("s")
	b.AddFinal("p3")
	return mustBuild(t, b)
}

// partialNFA accepts exactly "ab"; every other move is undefined.
func partialNFA(t testing.TB) *nfa.NFA {
	t.Helper()
	b := nfa.NewBuilder()
	b.AddTransition("s", 'a', "m")
	b.AddTransition("m", 'b', "f")
	b.SetStart("s")
	b.AddFinal("f")
	return mustBuild(t, b)
}

// randomNFA builds a reproducible random NFA over {a, b, c}.
func randomNFA(t testing.TB, seed int64, states int) *nfa.NFA {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	alphabet := []nfa.Symbol{'a', 'b', 'c'}
	name := func(i int) string { return fmt.Sprintf("r%d", i) }

	b := nfa.NewBuilder()
	b.SetStart(name(0))
	b.AddTransition(name(0), 'a', name(rng.Intn(states)))
	for q := 0; q < states; q++ {
		for _, a := range alphabet {
			// 0, 1 or 2 targets; zero leaves the move undefined about a third of the time
			k := rng.Intn(3)
			if k == 0 && rng.Intn(2) == 0 {
				continue
			}
			targets := make([]string, 0, k)
			for j := 0; j < k; j++ {
				targets = append(targets, name(rng.Intn(states)))
			}
			b.AddTransition(name(q), a, targets...)
		}
		if rng.Intn(3) == 0 {
			b.AddFinal(name(q))
		}
	}
	return mustBuild(t, b)
}

func mustBuild(t testing.TB, b *nfa.Builder) *nfa.NFA {
	t.Helper()
	n, err := b.Build()
	if err != nil {
		t.Fatalf("nfa Build failed: %v", err)
	}
	return n
}

func mustDeterminize(t testing.TB, n *nfa.NFA, config Config) *DFA {
	t.Helper()
	d, err := NewBuilder(n, config).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return d
}

// allStrings returns every string over alphabet of length at most maxLen.
func allStrings(alphabet []nfa.Symbol, maxLen int) []string {
	out := []string{""}
	layer := []string{""}
	for l := 0; l < maxLen; l++ {
		var next []string
		for _, prefix := range layer {
			for _, a := range alphabet {
				next = append(next, prefix+a.String())
			}
		}
		out = append(out, next...)
		layer = next
	}
	return out
}
