// Package counter counts the strings of a given length accepted by a DFA.
//
// The count is computed by dynamic programming over the DFA's state graph
// instead of enumerating strings. With count[k][q] the number of length-k
// strings driving the DFA from q into a final state:
//
//	count[0][q] = 1 if q is final, else 0
//	count[k][q] = Σ_a count[k-1][δ(q, a)]
//
// the answer for length n is count[n][q0]. Each generation costs
// O(|Q|·|Σ|) big-integer additions and only two generations are kept.
// Counts are math/big integers, so long inputs over large alphabets never
// overflow.
package counter

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/coregx/fsa/dfa"
	"github.com/coregx/fsa/internal/conv"
)

// Common counter errors
var (
	// ErrNegativeLength indicates a negative string length was requested
	ErrNegativeLength = errors.New("string length must be non-negative")

	// ErrInvalidConfig indicates invalid configuration was provided
	ErrInvalidConfig = errors.New("invalid counter configuration")
)

// Counter answers "how many accepted strings of length n" for one DFA.
//
// The DFA's transition table is copied into a dense array once, at New, and
// every query runs against that array. Queries keep their generations in
// per-call buffers, so a Counter is safe for concurrent use.
type Counter struct {
	states  int
	symbols int

	// targets[q*symbols+i] is the target state index of q on symbol i
	targets []uint32
	final   []bool
	start   uint32

	workers int
}

// New builds a Counter for d.
// The DFA must satisfy its structural invariants (see dfa.DFA.Validate);
// a DFA with a missing or dangling transition is rejected.
func New(d *dfa.DFA, config Config) (*Counter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("counter: %w", err)
	}

	alphabet := d.Alphabet()
	states := d.StateCount()
	c := &Counter{
		states:  states,
		symbols: len(alphabet),
		targets: make([]uint32, 0, states*len(alphabet)),
		final:   make([]bool, states),
		start:   uint32(d.Start()),
		workers: config.Workers,
	}

	for q := 0; q < states; q++ {
		id := dfa.StateID(conv.IntToUint32(q))
		c.final[q] = d.IsMatch(id)
		for _, a := range alphabet {
			next, err := d.Next(id, a)
			if err != nil {
				return nil, fmt.Errorf("counter: %w", err)
			}
			c.targets = append(c.targets, uint32(next))
		}
	}
	return c, nil
}

// States returns the number of DFA states the counter works over
func (c *Counter) States() int {
	return c.states
}

// Count returns the number of accepted strings of exactly length n.
// For n = 0 this is 1 if the start state is final, else 0.
func (c *Counter) Count(n int) (*big.Int, error) {
	return c.CountContext(context.Background(), n)
}

// CountContext is Count with cancellation checked between generations.
func (c *Counter) CountContext(ctx context.Context, n int) (*big.Int, error) {
	var result *big.Int
	err := c.run(ctx, n, func(k int, gen []*big.Int) {
		if k == n {
			result = new(big.Int).Set(gen[c.start])
		}
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Series returns the accepted-string counts for every length 0..n, computed
// in a single pass.
func (c *Counter) Series(ctx context.Context, n int) ([]*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeLength, n)
	}
	out := make([]*big.Int, 0, n+1)
	err := c.run(ctx, n, func(_ int, gen []*big.Int) {
		out = append(out, new(big.Int).Set(gen[c.start]))
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// run evaluates generations 0..n, calling visit after each one. The slice
// handed to visit is reused by the next generation.
func (c *Counter) run(ctx context.Context, n int, visit func(k int, gen []*big.Int)) error {
	if n < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeLength, n)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	curr := make([]*big.Int, c.states)
	next := make([]*big.Int, c.states)
	for q := 0; q < c.states; q++ {
		curr[q] = new(big.Int)
		if c.final[q] {
			curr[q].SetInt64(1)
		}
		next[q] = new(big.Int)
	}
	visit(0, curr)

	for k := 1; k <= n; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.step(ctx, curr, next); err != nil {
			return err
		}
		// next now holds generation k in full; curr (k-1) becomes scratch.
		curr, next = next, curr
		visit(k, curr)
	}
	return nil
}

// step computes one whole generation into next from curr.
func (c *Counter) step(ctx context.Context, curr, next []*big.Int) error {
	if c.workers <= 1 || c.states < 2 {
		c.stepRange(curr, next, 0, c.states)
		return nil
	}

	// Each state's value depends only on the previous generation, so chunks
	// run independently; Wait is the generation barrier.
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	chunk := (c.states + c.workers - 1) / c.workers
	for lo := 0; lo < c.states; lo += chunk {
		hi := min(lo+chunk, c.states)
		g.Go(func() error {
			c.stepRange(curr, next, lo, hi)
			return nil
		})
	}
	return g.Wait()
}

func (c *Counter) stepRange(curr, next []*big.Int, lo, hi int) {
	for q := lo; q < hi; q++ {
		sum := next[q].SetInt64(0)
		for _, t := range c.targets[q*c.symbols : (q+1)*c.symbols] {
			sum.Add(sum, curr[t])
		}
	}
}
