package definition

import (
	"fmt"
	"strconv"
)

// Divisibility generates the residue automaton for numbers written in the
// given base: state qi is the value read so far modulo m, and digit d moves
// qi to q((base*i + d) mod m). Start and only final state is q0, so the
// automaton accepts the base-b strings (leading zeros and the empty string
// included) whose value is divisible by m. Digits above 9 are written as
// lower-case letters.
func Divisibility(base, m int) (*Definition, error) {
	if base < 2 || base > 36 {
		return nil, fmt.Errorf("base must be in [2, 36], got %d", base)
	}
	if m < 1 {
		return nil, fmt.Errorf("modulus must be >= 1, got %d", m)
	}

	def := &Definition{
		Start:       "q0",
		Final:       []string{"q0"},
		Transitions: make(map[string]map[string][]string, m),
	}
	for i := 0; i < m; i++ {
		row := make(map[string][]string, base)
		for d := 0; d < base; d++ {
			row[strconv.FormatInt(int64(d), base)] = []string{fmt.Sprintf("q%d", (base*i+d)%m)}
		}
		def.Transitions[fmt.Sprintf("q%d", i)] = row
	}
	return def, nil
}
