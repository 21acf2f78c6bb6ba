// Package fsa converts nondeterministic finite automata into deterministic
// ones and counts the strings of a given length they accept.
//
// The work is split across three packages, used in order:
//   - nfa: build an NFA from named states and a partial transition relation
//   - dfa: subset construction, producing a DFA over the reachable subsets
//   - counter: dynamic programming over the DFA for exact acceptance counts
//
// This package ties them together. Basic usage:
//
//	b := nfa.NewBuilder()
//	b.AddTransition("s", 'a', "s", "f")
//	b.AddTransition("s", 'b', "s")
//	b.SetStart("s")
//	b.AddFinal("f")
//	n, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m, err := fsa.Compile(n)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.InLanguage("abb"))  // false
//	count, _ := m.Count(3)
//	fmt.Println(count)                // 4: strings of length 3 ending in 'a'
package fsa

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/charmbracelet/log"

	"github.com/coregx/fsa/counter"
	"github.com/coregx/fsa/dfa"
	"github.com/coregx/fsa/nfa"
)

// Config aggregates the configuration of every stage.
type Config struct {
	// DFA configures subset construction
	DFA dfa.Config

	// Counter configures acceptance counting
	Counter counter.Config

	// Logger receives debug records about compilation.
	// Nil disables logging.
	Logger *log.Logger
}

// DefaultConfig returns the default configuration of every stage.
func DefaultConfig() Config {
	return Config{
		DFA:     dfa.DefaultConfig(),
		Counter: counter.DefaultConfig(),
	}
}

// Machine is an NFA together with its DFA and the DFA's counter.
// A Machine is immutable and safe to use concurrently.
type Machine struct {
	nfa     *nfa.NFA
	dfa     *dfa.DFA
	counter *counter.Counter
}

// Compile determinizes n and prepares its counter with DefaultConfig.
func Compile(n *nfa.NFA) (*Machine, error) {
	return CompileWithConfig(n, DefaultConfig())
}

// MustCompile is like Compile but panics on error.
func MustCompile(n *nfa.NFA) *Machine {
	m, err := Compile(n)
	if err != nil {
		panic(err)
	}
	return m
}

// CompileWithConfig determinizes n and prepares its counter.
func CompileWithConfig(n *nfa.NFA, config Config) (*Machine, error) {
	start := time.Now()

	d, err := dfa.NewBuilder(n, config.DFA).Build()
	if err != nil {
		return nil, fmt.Errorf("subset construction: %w", err)
	}
	if config.Logger != nil {
		config.Logger.Debug("subset construction done",
			"nfa_states", n.States(),
			"alphabet", len(d.Alphabet()),
			"dfa_states", d.StateCount(),
			"final", len(d.FinalStates()),
			"order", config.DFA.Order,
			"elapsed", time.Since(start).Round(time.Microsecond),
		)
	}

	c, err := counter.New(d, config.Counter)
	if err != nil {
		return nil, fmt.Errorf("acceptance counter: %w", err)
	}
	if config.Logger != nil {
		config.Logger.Debug("counter ready", "states", c.States(), "workers", config.Counter.Workers)
	}

	return &Machine{nfa: n, dfa: d, counter: c}, nil
}

// NFA returns the source automaton
func (m *Machine) NFA() *nfa.NFA {
	return m.nfa
}

// DFA returns the determinized automaton
func (m *Machine) DFA() *dfa.DFA {
	return m.dfa
}

// Counter returns the acceptance counter of the DFA
func (m *Machine) Counter() *counter.Counter {
	return m.counter
}

// InLanguage reports whether the DFA accepts input.
func (m *Machine) InLanguage(input string) bool {
	return m.dfa.InLanguage(input)
}

// Count returns the number of accepted strings of exactly length n.
func (m *Machine) Count(n int) (*big.Int, error) {
	return m.counter.Count(n)
}

// CountContext is Count with cancellation.
func (m *Machine) CountContext(ctx context.Context, n int) (*big.Int, error) {
	return m.counter.CountContext(ctx, n)
}

// Series returns the accepted-string counts for every length 0..n.
func (m *Machine) Series(ctx context.Context, n int) ([]*big.Int, error) {
	return m.counter.Series(ctx, n)
}

// String returns a short summary of the machine
func (m *Machine) String() string {
	return fmt.Sprintf("Machine(%s, %s)", m.nfa, m.dfa)
}
