package dfa

import "fmt"

// Order selects the worklist discipline of subset construction.
//
// The order only affects the numbering of DFA states: every order
// discovers the same subsets with the same transitions, so DFAs built
// with different orders are Equal.
type Order uint8

const (
	// OrderFIFO processes subsets breadth-first (queue)
	OrderFIFO Order = iota

	// OrderLIFO processes subsets depth-first (stack)
	OrderLIFO
)

// String returns the order name
func (o Order) String() string {
	switch o {
	case OrderFIFO:
		return "fifo"
	case OrderLIFO:
		return "lifo"
	default:
		return fmt.Sprintf("Order(%d)", o)
	}
}

// ParseOrder parses "fifo" or "lifo".
func ParseOrder(s string) (Order, error) {
	switch s {
	case "fifo", "bfs":
		return OrderFIFO, nil
	case "lifo", "dfs":
		return OrderLIFO, nil
	default:
		return 0, &DFAError{
			Kind:    InvalidConfig,
			Message: fmt.Sprintf("unknown worklist order %q (want fifo or lifo)", s),
		}
	}
}

// Config configures subset construction.
type Config struct {
	// MaxStates bounds the number of reachable subsets materialized.
	// Construction fails with ErrStateLimitExceeded beyond it.
	//
	// Default: 100,000 states
	// The theoretical worst case is 2^|Q_NFA| subsets; this bound keeps a
	// pathological NFA from exhausting memory.
	MaxStates int

	// Order is the worklist discipline.
	//
	// Default: OrderFIFO
	Order Order
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxStates: 100_000,
		Order:     OrderFIFO,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxStates <= 0 {
		return &DFAError{
			Kind:    InvalidConfig,
			Message: "MaxStates must be > 0",
		}
	}
	if c.Order != OrderFIFO && c.Order != OrderLIFO {
		return &DFAError{
			Kind:    InvalidConfig,
			Message: fmt.Sprintf("unknown worklist order %d", c.Order),
		}
	}
	return nil
}

// WithMaxStates returns a new config with the specified max states
func (c Config) WithMaxStates(maxStates int) Config {
	c.MaxStates = maxStates
	return c
}

// WithOrder returns a new config with the specified worklist order
func (c Config) WithOrder(order Order) Config {
	c.Order = order
	return c
}
