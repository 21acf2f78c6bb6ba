// Package conv provides safe integer conversion helpers for state numbering.
//
// These functions perform bounds checking before narrowing integer conversions
// to prevent silent overflow. They panic on overflow since this indicates a
// programming error (e.g., an automaton too large for 32-bit state IDs).
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

// UintToInt converts a bitset index back to int.
// Panics if n does not fit in an int.
func UintToInt(n uint) int {
	if n > math.MaxInt {
		panic("integer overflow: uint value out of int range")
	}
	return int(n)
}
