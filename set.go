package strongflags

import (
	"iter"
	"strings"
)

// Set is a set of the flags declared by D, stored in the fixed-width
// container C.
//
// Set offers the same algebra as Flags for declarations whose storage is a
// bit container instead of an integer. The zero value has no flags set and
// bits at or above D's size are never set.
type Set[D Declaration, C Container[C]] struct {
	_    [0]D
	bits C
}

// ValidateSet reports whether C can hold every flag declared by D.
func ValidateSet[D Declaration, C Container[C]]() error {
	var c C
	return validateSize(sizeOf[D](), c.Len(), MaxFlags)
}

func truncate[D Declaration, C Container[C]](c C) C {
	return c.Truncate(sizeOf[D]())
}

// FromContainer returns the flag set holding c. Bits of c at or above D's
// size are silently dropped. Call ValidateSet once for hand-written
// declarations; FromContainer does not.
func FromContainer[D Declaration, C Container[C]](c C) Set[D, C] {
	return Set[D, C]{bits: truncate[D](c)}
}

// SetFromBit returns the flag set with only bit set.
// It panics with *ErrBitOutOfRange if bit is not below D's size, and with the
// ValidateSet error if C cannot hold D.
func SetFromBit[D Declaration, C Container[C]](bit uint) Set[D, C] {
	if err := ValidateSet[D, C](); err != nil {
		panic(err)
	}
	checkBit[D](bit)
	var c C
	return FromContainer[D](c.Set(bit))
}

// Container returns a copy of the storage.
func (s Set[D, C]) Container() C { return s.bits }

// Size returns the number of declared flags.
func (Set[D, C]) Size() uint { return sizeOf[D]() }

// Test reports whether bit is set.
func (s Set[D, C]) Test(bit uint) bool {
	checkBit[D](bit)
	return s.bits.Test(bit)
}

// TestAny reports whether s and o share at least one flag.
func (s Set[D, C]) TestAny(o Set[D, C]) bool { return s.bits.Intersection(o.bits).Any() }

// TestAll reports whether every flag of o is set in s.
func (s Set[D, C]) TestAll(o Set[D, C]) bool { return s.bits.IsSuperSet(o.bits) }

// Any reports whether at least one flag is set.
func (s Set[D, C]) Any() bool { return s.bits.Any() }

// None reports whether no flag is set.
func (s Set[D, C]) None() bool { return !s.bits.Any() }

// Count returns the number of set flags.
func (s Set[D, C]) Count() int { return int(s.bits.Count()) }

// Equal reports whether s and o hold the same flags.
func (s Set[D, C]) Equal(o Set[D, C]) bool { return s.bits == o.bits }

// Union returns s | o.
func (s Set[D, C]) Union(o Set[D, C]) Set[D, C] {
	return Set[D, C]{bits: s.bits.Union(o.bits)}
}

// Intersection returns s & o.
func (s Set[D, C]) Intersection(o Set[D, C]) Set[D, C] {
	return Set[D, C]{bits: s.bits.Intersection(o.bits)}
}

// SymmetricDifference returns s ^ o.
func (s Set[D, C]) SymmetricDifference(o Set[D, C]) Set[D, C] {
	return Set[D, C]{bits: s.bits.SymmetricDifference(o.bits)}
}

// Difference returns the flags of s that are not in o.
func (s Set[D, C]) Difference(o Set[D, C]) Set[D, C] {
	return Set[D, C]{bits: s.bits.Difference(o.bits)}
}

// Complement returns ~s restricted to the declared flags.
func (s Set[D, C]) Complement() Set[D, C] {
	return Set[D, C]{bits: truncate[D](s.bits.Complement())}
}

// InPlaceUnion sets s to s | o and returns s.
func (s *Set[D, C]) InPlaceUnion(o Set[D, C]) *Set[D, C] {
	s.bits = s.bits.Union(o.bits)
	return s
}

// InPlaceIntersection sets s to s & o and returns s.
func (s *Set[D, C]) InPlaceIntersection(o Set[D, C]) *Set[D, C] {
	s.bits = s.bits.Intersection(o.bits)
	return s
}

// InPlaceSymmetricDifference sets s to s ^ o and returns s.
func (s *Set[D, C]) InPlaceSymmetricDifference(o Set[D, C]) *Set[D, C] {
	s.bits = s.bits.SymmetricDifference(o.bits)
	return s
}

// SetBit sets bit and returns s.
func (s *Set[D, C]) SetBit(bit uint) *Set[D, C] {
	checkBit[D](bit)
	s.bits = s.bits.Set(bit)
	return s
}

// ClearBit clears bit and returns s.
func (s *Set[D, C]) ClearBit(bit uint) *Set[D, C] {
	checkBit[D](bit)
	s.bits = s.bits.Clear(bit)
	return s
}

// ToggleBit flips bit and returns s.
func (s *Set[D, C]) ToggleBit(bit uint) *Set[D, C] {
	checkBit[D](bit)
	s.bits = s.bits.Flip(bit)
	return s
}

// Set sets every flag of o and returns s.
func (s *Set[D, C]) Set(o Set[D, C]) *Set[D, C] { return s.InPlaceUnion(o) }

// Clear clears every flag of o and returns s.
func (s *Set[D, C]) Clear(o Set[D, C]) *Set[D, C] {
	s.bits = s.bits.Difference(o.bits)
	return s
}

// Toggle flips every flag of o and returns s.
func (s *Set[D, C]) Toggle(o Set[D, C]) *Set[D, C] { return s.InPlaceSymmetricDifference(o) }

// Bits iterates over the indexes of the set flags in ascending order.
func (s Set[D, C]) Bits() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
			if !yield(i) {
				return
			}
		}
	}
}

// String returns the flags as binary digits, highest bit first, one digit per
// declared flag.
func (s Set[D, C]) String() string {
	n := sizeOf[D]()
	var b strings.Builder
	b.Grow(int(n))
	for i := n; i > 0; i-- {
		if s.bits.Test(i - 1) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
