package bitvec

import (
	"github.com/bits-and-blooms/bitset"
)

// view wraps w without copying; mutations through the view write to w.
func view(w []uint64) *bitset.BitSet {
	return bitset.From(w)
}

func width(w []uint64) uint {
	return uint(len(w)) * 64
}

func testBit(w []uint64, i uint) bool {
	return view(w).Test(i)
}

// setBit, clearBit and flipBit ignore out-of-range indexes: the bitset would grow
// into a fresh slice and detach from w.
func setBit(w []uint64, i uint) {
	if i < width(w) {
		view(w).Set(i)
	}
}

func clearBit(w []uint64, i uint) {
	if i < width(w) {
		view(w).Clear(i)
	}
}

func flipBit(w []uint64, i uint) {
	if i < width(w) {
		view(w).Flip(i)
	}
}

func union(w, o []uint64) {
	view(w).InPlaceUnion(view(o))
}

func intersection(w, o []uint64) {
	view(w).InPlaceIntersection(view(o))
}

func symmetricDifference(w, o []uint64) {
	view(w).InPlaceSymmetricDifference(view(o))
}

func difference(w, o []uint64) {
	view(w).InPlaceDifference(view(o))
}

func complement(w []uint64) {
	view(w).FlipRange(0, width(w))
}

func truncate(w []uint64, n uint) {
	v := view(w)
	for i, ok := v.NextSet(n); ok; i, ok = v.NextSet(i + 1) {
		v.Clear(i)
	}
}

func anySet(w []uint64) bool {
	return view(w).Any()
}

func isSuperSet(w, o []uint64) bool {
	return view(w).IsSuperSet(view(o))
}

func count(w []uint64) uint {
	return view(w).Count()
}

func nextSet(w []uint64, i uint) (uint, bool) {
	if i >= width(w) {
		return 0, false
	}
	return view(w).NextSet(i)
}
