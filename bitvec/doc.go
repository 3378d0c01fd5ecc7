// Package bitvec provides fixed-width bit containers with value semantics.
//
// Bits128, Bits256 and Bits512 are plain uint64 arrays: copying one copies
// the bits, and the zero value is empty. They satisfy strongflags.Container
// and back flag sets with more than 64 flags:
//
//	type Caps = strongflags.Set[capsDecl, bitvec.Bits128]
//
// Word-level operations run on github.com/bits-and-blooms/bitset views of
// the array, so no operation allocates storage of its own.
package bitvec
