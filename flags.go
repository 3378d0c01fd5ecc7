package strongflags

import (
	"iter"
	"math/bits"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Flags is a set of the flags declared by D, stored in the integer U.
//
// The zero value has no flags set. Bits at or above D's size are never set by
// any operation. Flags values are comparable with == and copy like the
// integer they wrap; unsafe.Sizeof(Flags[D, U]{}) equals unsafe.Sizeof(U(0)).
type Flags[D Declaration, U constraints.Integer] struct {
	_    [0]D
	bits U
}

// Validate reports whether U can hold every flag declared by D.
func Validate[D Declaration, U constraints.Integer]() error {
	var u U
	return validateSize(sizeOf[D](), uint(unsafe.Sizeof(u))*8, MaxIntegerFlags)
}

// mustValidate panics if U cannot hold D.
func mustValidate[D Declaration, U constraints.Integer]() {
	if err := Validate[D, U](); err != nil {
		panic(err)
	}
}

// mask returns the value with all declared bits set. It does not validate D;
// FromBit does, and generated declarations carry a compile-time guard.
func mask[D Declaration, U constraints.Integer]() U {
	return U(lowBits(sizeOf[D]()))
}

// lowBits returns a word with the n low-order bits set.
func lowBits(n uint) uint64 {
	if n == 0 {
		return 0
	}
	return ^uint64(0) >> (MaxIntegerFlags - n)
}

// FromUnderlying returns the flag set holding v. Bits of v at or above D's
// size are silently dropped. Call Validate once for hand-written declarations;
// FromUnderlying does not.
func FromUnderlying[D Declaration, U constraints.Integer](v U) Flags[D, U] {
	return Flags[D, U]{bits: v & mask[D, U]()}
}

// FromBit returns the flag set with only bit set.
// It panics with *ErrBitOutOfRange if bit is not below D's size, and with the
// Validate error if U cannot hold D.
func FromBit[D Declaration, U constraints.Integer](bit uint) Flags[D, U] {
	mustValidate[D, U]()
	checkBit[D](bit)
	return FromUnderlying[D, U](U(1) << bit)
}

// Underlying returns the raw storage.
func (f Flags[D, U]) Underlying() U { return f.bits }

// Size returns the number of declared flags.
func (Flags[D, U]) Size() uint { return sizeOf[D]() }

// Test reports whether bit is set.
func (f Flags[D, U]) Test(bit uint) bool {
	checkBit[D](bit)
	return f.bits&(U(1)<<bit) != 0
}

// TestAny reports whether f and o share at least one flag.
func (f Flags[D, U]) TestAny(o Flags[D, U]) bool { return f.bits&o.bits != 0 }

// TestAll reports whether every flag of o is set in f.
func (f Flags[D, U]) TestAll(o Flags[D, U]) bool { return f.bits&o.bits == o.bits }

// Any reports whether at least one flag is set.
func (f Flags[D, U]) Any() bool { return f.bits != 0 }

// None reports whether no flag is set.
func (f Flags[D, U]) None() bool { return f.bits == 0 }

// Count returns the number of set flags.
func (f Flags[D, U]) Count() int { return bits.OnesCount64(f.word()) }

// Equal reports whether f and o hold the same flags.
func (f Flags[D, U]) Equal(o Flags[D, U]) bool { return f.bits == o.bits }

// Union returns f | o.
func (f Flags[D, U]) Union(o Flags[D, U]) Flags[D, U] {
	return Flags[D, U]{bits: f.bits | o.bits}
}

// Intersection returns f & o.
func (f Flags[D, U]) Intersection(o Flags[D, U]) Flags[D, U] {
	return Flags[D, U]{bits: f.bits & o.bits}
}

// SymmetricDifference returns f ^ o.
func (f Flags[D, U]) SymmetricDifference(o Flags[D, U]) Flags[D, U] {
	return Flags[D, U]{bits: f.bits ^ o.bits}
}

// Difference returns the flags of f that are not in o.
func (f Flags[D, U]) Difference(o Flags[D, U]) Flags[D, U] {
	return Flags[D, U]{bits: f.bits &^ o.bits}
}

// Complement returns ~f restricted to the declared flags.
func (f Flags[D, U]) Complement() Flags[D, U] {
	return Flags[D, U]{bits: ^f.bits & mask[D, U]()}
}

// InPlaceUnion sets f to f | o and returns f.
func (f *Flags[D, U]) InPlaceUnion(o Flags[D, U]) *Flags[D, U] {
	f.bits |= o.bits
	return f
}

// InPlaceIntersection sets f to f & o and returns f.
func (f *Flags[D, U]) InPlaceIntersection(o Flags[D, U]) *Flags[D, U] {
	f.bits &= o.bits
	return f
}

// InPlaceSymmetricDifference sets f to f ^ o and returns f.
func (f *Flags[D, U]) InPlaceSymmetricDifference(o Flags[D, U]) *Flags[D, U] {
	f.bits ^= o.bits
	return f
}

// SetBit sets bit and returns f.
func (f *Flags[D, U]) SetBit(bit uint) *Flags[D, U] {
	checkBit[D](bit)
	f.bits |= U(1) << bit
	return f
}

// ClearBit clears bit and returns f.
func (f *Flags[D, U]) ClearBit(bit uint) *Flags[D, U] {
	checkBit[D](bit)
	f.bits &^= U(1) << bit
	return f
}

// ToggleBit flips bit and returns f.
func (f *Flags[D, U]) ToggleBit(bit uint) *Flags[D, U] {
	checkBit[D](bit)
	f.bits ^= U(1) << bit
	return f
}

// Set sets every flag of o and returns f.
func (f *Flags[D, U]) Set(o Flags[D, U]) *Flags[D, U] { return f.InPlaceUnion(o) }

// Clear clears every flag of o and returns f.
func (f *Flags[D, U]) Clear(o Flags[D, U]) *Flags[D, U] {
	f.bits &^= o.bits
	return f
}

// Toggle flips every flag of o and returns f.
func (f *Flags[D, U]) Toggle(o Flags[D, U]) *Flags[D, U] { return f.InPlaceSymmetricDifference(o) }

// Bits iterates over the indexes of the set flags in ascending order.
func (f Flags[D, U]) Bits() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for w := f.word(); w != 0; w &= w - 1 {
			if !yield(uint(bits.TrailingZeros64(w))) {
				return
			}
		}
	}
}

// String returns the flags as binary digits, highest bit first, padded to the
// declared size.
func (f Flags[D, U]) String() string {
	s := strconv.FormatUint(f.word(), 2)
	if n := int(sizeOf[D]()); len(s) < n {
		s = strings.Repeat("0", n-len(s)) + s
	}
	return s
}

// word returns the storage as an unsigned word without sign extension.
func (f Flags[D, U]) word() uint64 {
	return uint64(f.bits) & lowBits(sizeOf[D]())
}
