// Package sparse provides a sparse set of dense state indices.
//
// A sparse set supports O(1) insertion, membership testing and clearing while
// keeping the members in insertion order. It backs the reachability walks
// over DFA state tables, where the universe of possible values (the number
// of states) is known up front.
package sparse

// SparseSet is a set of uint32 values in the range [0, capacity).
// The sparse array maps a value to its position in the dense array; the
// dense array holds the members in insertion order.
type SparseSet struct {
	sparse []uint32 // value -> index in dense
	dense  []uint32 // members, in insertion order
}

// NewSparseSet creates an empty set able to hold values below capacity.
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set and reports whether it was newly added.
// Panics if value >= capacity.
func (s *SparseSet) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.sparse[value] = uint32(len(s.dense)) //nolint:gosec // len(dense) < capacity
	s.dense = append(s.dense, value)
	return true
}

// Contains returns true if value is in the set.
func (s *SparseSet) Contains(value uint32) bool {
	if uint64(value) >= uint64(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return uint64(idx) < uint64(len(s.dense)) && s.dense[idx] == value
}

// Clear removes all elements in O(1).
func (s *SparseSet) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of elements in the set.
func (s *SparseSet) Len() int {
	return len(s.dense)
}

// Capacity returns the exclusive upper bound on storable values.
func (s *SparseSet) Capacity() int {
	return len(s.sparse)
}

// Values returns the members in insertion order.
// The returned slice is valid until the next mutation.
func (s *SparseSet) Values() []uint32 {
	return s.dense
}
