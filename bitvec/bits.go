package bitvec

// Bits128 is a 128-bit container.
type Bits128 [2]uint64

// Len returns 128.
func (b Bits128) Len() uint { return 128 }

// Test reports whether bit i is set.
func (b Bits128) Test(i uint) bool { return testBit(b[:], i) }

// Set returns b with bit i set.
func (b Bits128) Set(i uint) Bits128 {
	setBit(b[:], i)
	return b
}

// Clear returns b with bit i cleared.
func (b Bits128) Clear(i uint) Bits128 {
	clearBit(b[:], i)
	return b
}

// Flip returns b with bit i flipped.
func (b Bits128) Flip(i uint) Bits128 {
	flipBit(b[:], i)
	return b
}

// Union returns b | o.
func (b Bits128) Union(o Bits128) Bits128 {
	union(b[:], o[:])
	return b
}

// Intersection returns b & o.
func (b Bits128) Intersection(o Bits128) Bits128 {
	intersection(b[:], o[:])
	return b
}

// SymmetricDifference returns b ^ o.
func (b Bits128) SymmetricDifference(o Bits128) Bits128 {
	symmetricDifference(b[:], o[:])
	return b
}

// Difference returns b &^ o.
func (b Bits128) Difference(o Bits128) Bits128 {
	difference(b[:], o[:])
	return b
}

// Complement returns ^b.
func (b Bits128) Complement() Bits128 {
	complement(b[:])
	return b
}

// Truncate returns b with every bit at or above n cleared.
func (b Bits128) Truncate(n uint) Bits128 {
	truncate(b[:], n)
	return b
}

// Any reports whether at least one bit is set.
func (b Bits128) Any() bool { return anySet(b[:]) }

// IsSuperSet reports whether every bit of o is set in b.
func (b Bits128) IsSuperSet(o Bits128) bool { return isSuperSet(b[:], o[:]) }

// Count returns the number of set bits.
func (b Bits128) Count() uint { return count(b[:]) }

// NextSet returns the first set bit at or after i.
func (b Bits128) NextSet(i uint) (uint, bool) { return nextSet(b[:], i) }

// Bits256 is a 256-bit container.
type Bits256 [4]uint64

// Len returns 256.
func (b Bits256) Len() uint { return 256 }

// Test reports whether bit i is set.
func (b Bits256) Test(i uint) bool { return testBit(b[:], i) }

// Set returns b with bit i set.
func (b Bits256) Set(i uint) Bits256 {
	setBit(b[:], i)
	return b
}

// Clear returns b with bit i cleared.
func (b Bits256) Clear(i uint) Bits256 {
	clearBit(b[:], i)
	return b
}

// Flip returns b with bit i flipped.
func (b Bits256) Flip(i uint) Bits256 {
	flipBit(b[:], i)
	return b
}

// Union returns b | o.
func (b Bits256) Union(o Bits256) Bits256 {
	union(b[:], o[:])
	return b
}

// Intersection returns b & o.
func (b Bits256) Intersection(o Bits256) Bits256 {
	intersection(b[:], o[:])
	return b
}

// SymmetricDifference returns b ^ o.
func (b Bits256) SymmetricDifference(o Bits256) Bits256 {
	symmetricDifference(b[:], o[:])
	return b
}

// Difference returns b &^ o.
func (b Bits256) Difference(o Bits256) Bits256 {
	difference(b[:], o[:])
	return b
}

// Complement returns ^b.
func (b Bits256) Complement() Bits256 {
	complement(b[:])
	return b
}

// Truncate returns b with every bit at or above n cleared.
func (b Bits256) Truncate(n uint) Bits256 {
	truncate(b[:], n)
	return b
}

// Any reports whether at least one bit is set.
func (b Bits256) Any() bool { return anySet(b[:]) }

// IsSuperSet reports whether every bit of o is set in b.
func (b Bits256) IsSuperSet(o Bits256) bool { return isSuperSet(b[:], o[:]) }

// Count returns the number of set bits.
func (b Bits256) Count() uint { return count(b[:]) }

// NextSet returns the first set bit at or after i.
func (b Bits256) NextSet(i uint) (uint, bool) { return nextSet(b[:], i) }

// Bits512 is a 512-bit container.
type Bits512 [8]uint64

// Len returns 512.
func (b Bits512) Len() uint { return 512 }

// Test reports whether bit i is set.
func (b Bits512) Test(i uint) bool { return testBit(b[:], i) }

// Set returns b with bit i set.
func (b Bits512) Set(i uint) Bits512 {
	setBit(b[:], i)
	return b
}

// Clear returns b with bit i cleared.
func (b Bits512) Clear(i uint) Bits512 {
	clearBit(b[:], i)
	return b
}

// Flip returns b with bit i flipped.
func (b Bits512) Flip(i uint) Bits512 {
	flipBit(b[:], i)
	return b
}

// Union returns b | o.
func (b Bits512) Union(o Bits512) Bits512 {
	union(b[:], o[:])
	return b
}

// Intersection returns b & o.
func (b Bits512) Intersection(o Bits512) Bits512 {
	intersection(b[:], o[:])
	return b
}

// SymmetricDifference returns b ^ o.
func (b Bits512) SymmetricDifference(o Bits512) Bits512 {
	symmetricDifference(b[:], o[:])
	return b
}

// Difference returns b &^ o.
func (b Bits512) Difference(o Bits512) Bits512 {
	difference(b[:], o[:])
	return b
}

// Complement returns ^b.
func (b Bits512) Complement() Bits512 {
	complement(b[:])
	return b
}

// Truncate returns b with every bit at or above n cleared.
func (b Bits512) Truncate(n uint) Bits512 {
	truncate(b[:], n)
	return b
}

// Any reports whether at least one bit is set.
func (b Bits512) Any() bool { return anySet(b[:]) }

// IsSuperSet reports whether every bit of o is set in b.
func (b Bits512) IsSuperSet(o Bits512) bool { return isSuperSet(b[:], o[:]) }

// Count returns the number of set bits.
func (b Bits512) Count() uint { return count(b[:]) }

// NextSet returns the first set bit at or after i.
func (b Bits512) NextSet(i uint) (uint, bool) { return nextSet(b[:], i) }
