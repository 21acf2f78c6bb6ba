package nfa

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/coregx/fsa/internal/conv"
)

// StateSet is a set of NFA states backed by a bit vector.
//
// Membership is what identifies a set: two StateSets holding the same states
// are equal and have the same Key no matter in which order the states were
// added or how large the underlying bit vectors grew. The zero value is an
// empty set ready for use.
type StateSet struct {
	bits *bitset.BitSet
}

// NewStateSet creates a set holding the given states.
func NewStateSet(ids ...StateID) *StateSet {
	s := &StateSet{}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// newStateSetWithCapacity creates an empty set sized for states below n.
func newStateSetWithCapacity(n int) *StateSet {
	if n <= 0 {
		return &StateSet{}
	}
	return &StateSet{bits: bitset.New(uint(n))}
}

// Add inserts a state into the set.
func (s *StateSet) Add(id StateID) {
	if s.bits == nil {
		s.bits = bitset.New(uint(id) + 1)
	}
	s.bits.Set(uint(id))
}

// Contains returns true if the state is in the set
func (s *StateSet) Contains(id StateID) bool {
	if s == nil || s.bits == nil {
		return false
	}
	return s.bits.Test(uint(id))
}

// Len returns the number of states in the set
func (s *StateSet) Len() int {
	if s == nil || s.bits == nil {
		return 0
	}
	return conv.UintToInt(s.bits.Count())
}

// IsEmpty returns true if the set holds no states
func (s *StateSet) IsEmpty() bool {
	return s.Len() == 0
}

// Union adds every member of other to s.
func (s *StateSet) Union(other *StateSet) {
	if other == nil || other.bits == nil {
		return
	}
	if s.bits == nil {
		s.bits = other.bits.Clone()
		return
	}
	s.bits.InPlaceUnion(other.bits)
}

// Intersects returns true if s and other share at least one state.
func (s *StateSet) Intersects(other *StateSet) bool {
	if s == nil || other == nil || s.bits == nil || other.bits == nil {
		return false
	}
	return s.bits.IntersectionCardinality(other.bits) > 0
}

// Equal reports whether s and other hold exactly the same states.
func (s *StateSet) Equal(other *StateSet) bool {
	n := s.Len()
	if n != other.Len() {
		return false
	}
	if n == 0 {
		return true
	}
	return conv.UintToInt(s.bits.IntersectionCardinality(other.bits)) == n
}

// Clone returns an independent copy of the set.
func (s *StateSet) Clone() *StateSet {
	if s == nil || s.bits == nil {
		return &StateSet{}
	}
	return &StateSet{bits: s.bits.Clone()}
}

// Values returns the members in ascending order.
func (s *StateSet) Values() []StateID {
	if s == nil || s.bits == nil {
		return nil
	}
	out := make([]StateID, 0, s.Len())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, StateID(conv.IntToUint32(conv.UintToInt(i))))
	}
	return out
}

// Key returns the canonical encoding of the set: the ascending member IDs,
// four little-endian bytes each. Equal sets have equal keys, so the key can
// index a map of discovered subsets.
func (s *StateSet) Key() string {
	ids := s.Values()
	var b strings.Builder
	b.Grow(4 * len(ids))
	for _, id := range ids {
		b.WriteByte(byte(id))
		b.WriteByte(byte(id >> 8))
		b.WriteByte(byte(id >> 16))
		b.WriteByte(byte(id >> 24))
	}
	return b.String()
}

// String returns the members as "{0, 3, 7}".
func (s *StateSet) String() string {
	ids := s.Values()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
