// Package factset provides a dense, bitset-backed set type for dataflow
// fact values (definition sites, variable names). A Universe assigns each
// distinct item a stable integer index in first-seen order; a Set is a
// bitset over that index space, giving Union/Intersect/Equal in O(words)
// instead of O(n) map operations.
//
// This package backs both the reaching-definitions and live-variables
// builders with *bitset.BitSet keyed by an index into a slice of fact
// values, generalized to an arbitrary comparable item type via a shared
// Universe, using github.com/bits-and-blooms/bitset.
package factset

import "github.com/bits-and-blooms/bitset"

// Universe assigns stable indices to items of type T in first-seen order.
// Every Set sharing a Universe can be combined with Union/Intersect; sets
// built from different Universes must not be mixed.
type Universe[T comparable] struct {
	index map[T]uint
	items []T
}

// NewUniverse returns an empty item universe.
func NewUniverse[T comparable]() *Universe[T] {
	return &Universe[T]{index: make(map[T]uint)}
}

// Intern returns item's stable index, assigning a new one in first-seen
// order if it has not been seen before.
func (u *Universe[T]) Intern(item T) uint {
	if i, ok := u.index[item]; ok {
		return i
	}
	i := uint(len(u.items))
	u.index[item] = i
	u.items = append(u.items, item)
	return i
}

// Lookup returns item's index without interning it.
func (u *Universe[T]) Lookup(item T) (uint, bool) {
	i, ok := u.index[item]
	return i, ok
}

// At returns the item at index i, as assigned by Intern.
func (u *Universe[T]) At(i uint) T {
	return u.items[i]
}

// Len reports how many distinct items have been interned.
func (u *Universe[T]) Len() int {
	return len(u.items)
}

// Set is a bitset of items drawn from a shared Universe.
type Set[T comparable] struct {
	universe *Universe[T]
	bits     *bitset.BitSet
}

// NewSet returns an empty set over universe.
func NewSet[T comparable](universe *Universe[T]) *Set[T] {
	return &Set[T]{universe: universe, bits: bitset.New(0)}
}

// Add interns item in the shared universe and sets its bit.
func (s *Set[T]) Add(item T) {
	s.bits.Set(s.universe.Intern(item))
}

// Remove clears item's bit, a no-op if item was never interned.
func (s *Set[T]) Remove(item T) {
	if i, ok := s.universe.Lookup(item); ok {
		s.bits.Clear(i)
	}
}

// Has reports whether item's bit is set.
func (s *Set[T]) Has(item T) bool {
	i, ok := s.universe.Lookup(item)
	return ok && s.bits.Test(i)
}

// Len reports the number of items currently in the set.
func (s *Set[T]) Len() int {
	return int(s.bits.Count())
}

// Clone returns an independent copy of s.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{universe: s.universe, bits: s.bits.Clone()}
}

// Union returns the union of s and other, which must share s's universe.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	return &Set[T]{universe: s.universe, bits: s.bits.Union(other.bits)}
}

// Intersect returns the intersection of s and other.
func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	return &Set[T]{universe: s.universe, bits: s.bits.Intersection(other.bits)}
}

// Difference returns the items in s but not in other.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	return &Set[T]{universe: s.universe, bits: s.bits.Difference(other.bits)}
}

// Equal reports whether s and other contain exactly the same items.
func (s *Set[T]) Equal(other *Set[T]) bool {
	// bitset.Equal also compares bit lengths, so two sets with the same
	// members but different high-water marks would compare unequal.
	return s.bits.SymmetricDifferenceCardinality(other.bits) == 0
}

// Each calls fn once per item in the set, in ascending universe-index
// order. Since a Universe assigns indices in first-seen order rather than
// a canonical sort, callers that need a stable rendering (pretty-printing,
// snapshot tests) should sort the collected items themselves by a
// canonical key for deterministic output.
func (s *Set[T]) Each(fn func(item T)) {
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		fn(s.universe.At(i))
	}
}

// Items returns the set's members in ascending universe-index order.
func (s *Set[T]) Items() []T {
	items := make([]T, 0, s.Len())
	s.Each(func(item T) { items = append(items, item) })
	return items
}

// Union computes the union of a list of sets sharing universe, returning
// an empty set (the meet identity) when values is empty. This is the
// shape dataflow.Analysis.Meet needs for both reaching-definitions and
// live-variables, where meet is set union.
func Union[T comparable](universe *Universe[T], values []*Set[T]) *Set[T] {
	result := NewSet(universe)
	for _, v := range values {
		result = result.Union(v)
	}
	return result
}
