package strongflags

// Container is the capability a fixed-width bit container must provide to
// back a Set. C is the container type itself; every method works on a copy and
// returns the result, so containers keep value semantics.
//
// Indexes at or beyond Len are ignored by Set, Clear and Flip and read as
// unset by Test.
type Container[C any] interface {
	comparable

	// Len returns the fixed number of bits the container holds.
	Len() uint
	Test(i uint) bool
	Set(i uint) C
	Clear(i uint) C
	Flip(i uint) C
	Union(o C) C
	Intersection(o C) C
	SymmetricDifference(o C) C
	Difference(o C) C
	// Complement flips all Len bits.
	Complement() C
	// Truncate clears every bit at or above n.
	Truncate(n uint) C
	Any() bool
	// IsSuperSet reports whether every bit of o is set.
	IsSuperSet(o C) bool
	Count() uint
	// NextSet returns the first set bit at or after i.
	NextSet(i uint) (uint, bool)
}
