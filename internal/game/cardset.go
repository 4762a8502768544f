package game

import (
	"fmt"
	"math/bits"
	"strings"
)

// CardSet is a fixed-capacity bitset over card IDs 0..127, parameterized by
// the zone-view ID type it holds. Iteration order is always lowest ID to
// highest. The zero value is the empty set, and sets copy by value, which is
// what makes cloning a whole battle cheap.
type CardSet[T ~int] struct {
	lo, hi uint64
}

// SetOf returns a set containing the given IDs.
func SetOf[T ~int](ids ...T) CardSet[T] {
	var s CardSet[T]
	for _, id := range ids {
		s.Insert(id)
	}
	return s
}

// SetOfMaybe returns a one-element set, or the empty set for a nil ID.
func SetOfMaybe[T ~int](id *T) CardSet[T] {
	var s CardSet[T]
	if id != nil {
		s.Insert(*id)
	}
	return s
}

func setMask[T ~int](id T) (bit uint64, hi bool) {
	pos := int(id)
	if pos < 0 || pos >= MaxCards {
		panic(fmt.Sprintf("card set only supports card IDs 0-127, got %d", pos))
	}
	if pos < 64 {
		return 1 << uint(pos), false
	}
	return 1 << uint(pos-64), true
}

// Insert adds an ID and reports whether it was newly added.
func (s *CardSet[T]) Insert(id T) bool {
	bit, hi := setMask(id)
	if hi {
		present := s.hi&bit != 0
		s.hi |= bit
		return !present
	}
	present := s.lo&bit != 0
	s.lo |= bit
	return !present
}

// Remove deletes an ID and reports whether it was present.
func (s *CardSet[T]) Remove(id T) bool {
	bit, hi := setMask(id)
	if hi {
		present := s.hi&bit != 0
		s.hi &^= bit
		return present
	}
	present := s.lo&bit != 0
	s.lo &^= bit
	return present
}

// Contains reports whether the set holds the given ID.
func (s CardSet[T]) Contains(id T) bool {
	bit, hi := setMask(id)
	if hi {
		return s.hi&bit != 0
	}
	return s.lo&bit != 0
}

// Len returns the number of IDs in the set.
func (s CardSet[T]) Len() int {
	return bits.OnesCount64(s.lo) + bits.OnesCount64(s.hi)
}

// IsEmpty reports whether the set holds no IDs.
func (s CardSet[T]) IsEmpty() bool {
	return s.lo == 0 && s.hi == 0
}

// Clear removes every ID.
func (s *CardSet[T]) Clear() {
	s.lo, s.hi = 0, 0
}

// All returns the IDs in ascending order.
func (s CardSet[T]) All() []T {
	out := make([]T, 0, s.Len())
	for w, word := range [2]uint64{s.lo, s.hi} {
		base := w * 64
		for word != 0 {
			pos := bits.TrailingZeros64(word)
			out = append(out, T(base+pos))
			word &= word - 1
		}
	}
	return out
}

// GetAtIndex returns the index-th lowest ID, or false when out of range.
func (s CardSet[T]) GetAtIndex(index int) (T, bool) {
	if index < 0 || index >= s.Len() {
		var zero T
		return zero, false
	}
	for w, word := range [2]uint64{s.lo, s.hi} {
		count := bits.OnesCount64(word)
		if index >= count {
			index -= count
			continue
		}
		base := w * 64
		for word != 0 {
			pos := bits.TrailingZeros64(word)
			if index == 0 {
				return T(base + pos), true
			}
			word &= word - 1
			index--
		}
	}
	var zero T
	return zero, false
}

// UnionWith adds every ID in other to this set.
func (s *CardSet[T]) UnionWith(other CardSet[T]) {
	s.lo |= other.lo
	s.hi |= other.hi
}

// IntersectWith keeps only IDs present in both sets.
func (s *CardSet[T]) IntersectWith(other CardSet[T]) {
	s.lo &= other.lo
	s.hi &= other.hi
}

// DifferenceWith removes every ID in other from this set.
func (s *CardSet[T]) DifferenceWith(other CardSet[T]) {
	s.lo &^= other.lo
	s.hi &^= other.hi
}

// Reinterpret converts the set to a different zone-view ID type. All ID
// types share the same dense representation, so this is free.
func Reinterpret[U, T ~int](s CardSet[T]) CardSet[U] {
	return CardSet[U]{lo: s.lo, hi: s.hi}
}

func (s CardSet[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, id := range s.All() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", int(id))
	}
	b.WriteByte('}')
	return b.String()
}
