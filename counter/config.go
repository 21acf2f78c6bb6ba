package counter

import (
	"fmt"
	"runtime"
)

// Config configures a Counter.
type Config struct {
	// Workers is the number of goroutines computing one generation.
	// 1 runs every generation inline.
	//
	// Default: 1
	// Fan-out pays off only when |Q|·|Σ| is large; each generation ends
	// with a barrier.
	Workers int
}

// DefaultConfig returns the sequential configuration.
func DefaultConfig() Config {
	return Config{Workers: 1}
}

// ParallelConfig returns a configuration using one worker per CPU.
func ParallelConfig() Config {
	return Config{Workers: runtime.GOMAXPROCS(0)}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: Workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// WithWorkers returns a new config with the specified worker count
func (c Config) WithWorkers(workers int) Config {
	c.Workers = workers
	return c
}
