package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits128_ValueSemantics(t *testing.T) {
	var a Bits128
	b := a.Set(3)

	assert.Equal(t, Bits128{}, a)
	assert.Equal(t, Bits128{1 << 3, 0}, b)

	c := b
	c = c.Set(64)
	assert.Equal(t, Bits128{1 << 3, 0}, b)
	assert.Equal(t, Bits128{1 << 3, 1}, c)
}

func TestBits128_Operations(t *testing.T) {
	a := Bits128{0b1100, 1}
	b := Bits128{0b1010, 0}

	assert.Equal(t, Bits128{0b1110, 1}, a.Union(b))
	assert.Equal(t, Bits128{0b1000, 0}, a.Intersection(b))
	assert.Equal(t, Bits128{0b0110, 1}, a.SymmetricDifference(b))
	assert.Equal(t, Bits128{0b0100, 1}, a.Difference(b))
	assert.Equal(t, Bits128{^uint64(0b1100), ^uint64(1)}, a.Complement())

	// Operands are untouched.
	assert.Equal(t, Bits128{0b1100, 1}, a)
	assert.Equal(t, Bits128{0b1010, 0}, b)
}

func TestBits128_Bits(t *testing.T) {
	a := Bits128{}.Set(0).Set(127)

	assert.True(t, a.Test(0))
	assert.True(t, a.Test(127))
	assert.False(t, a.Test(64))
	assert.Equal(t, uint(2), a.Count())
	assert.True(t, a.Any())
	assert.False(t, Bits128{}.Any())

	a = a.Flip(127).Flip(64).Clear(0)
	assert.Equal(t, Bits128{0, 1}, a)
}

func TestBits128_OutOfRangeIgnored(t *testing.T) {
	var a Bits128

	assert.Equal(t, Bits128{}, a.Set(128))
	assert.Equal(t, Bits128{}, a.Flip(1000))
	assert.Equal(t, Bits128{}, a.Clear(128))
	assert.False(t, a.Complement().Test(128))
	assert.Equal(t, uint(128), a.Len())
}

func TestBits128_Truncate(t *testing.T) {
	all := Bits128{}.Complement()

	assert.Equal(t, Bits128{^uint64(0), 1<<6 - 1}, all.Truncate(70))
	assert.Equal(t, Bits128{1<<3 - 1, 0}, all.Truncate(3))
	assert.Equal(t, all, all.Truncate(128))
	assert.Equal(t, Bits128{}, all.Truncate(0))
}

func TestBits128_NextSet(t *testing.T) {
	a := Bits128{}.Set(5).Set(70)

	i, ok := a.NextSet(0)
	assert.True(t, ok)
	assert.Equal(t, uint(5), i)

	i, ok = a.NextSet(6)
	assert.True(t, ok)
	assert.Equal(t, uint(70), i)

	_, ok = a.NextSet(71)
	assert.False(t, ok)

	_, ok = a.NextSet(500)
	assert.False(t, ok)
}

func TestBits128_IsSuperSet(t *testing.T) {
	a := Bits128{0b111, 1}

	assert.True(t, a.IsSuperSet(Bits128{0b101, 0}))
	assert.True(t, a.IsSuperSet(Bits128{}))
	assert.False(t, a.IsSuperSet(Bits128{0b1000, 0}))
}

func TestBits256(t *testing.T) {
	a := Bits256{}.Set(200).Set(1)

	assert.Equal(t, uint(256), a.Len())
	assert.Equal(t, Bits256{2, 0, 0, 1 << 8}, a)
	assert.Equal(t, uint(254), a.Complement().Count())
	assert.Equal(t, Bits256{2, 0, 0, 0}, a.Truncate(200))
	assert.Equal(t, Bits256{0, 0, 0, 1 << 8}, a.Difference(Bits256{2}))
	assert.Equal(t, Bits256{}, a.Intersection(Bits256{1}))

	i, ok := a.NextSet(2)
	assert.True(t, ok)
	assert.Equal(t, uint(200), i)
}

func TestBits512(t *testing.T) {
	a := Bits512{}.Set(511)

	assert.Equal(t, uint(512), a.Len())
	assert.True(t, a.Test(511))
	assert.Equal(t, uint64(1)<<63, a[7])
	assert.Equal(t, uint(511), a.Complement().Count())
	assert.Equal(t, Bits512{}, a.Truncate(511))
	assert.Equal(t, Bits512{}, a.SymmetricDifference(a))
	assert.True(t, a.Union(Bits512{1}).IsSuperSet(a))
}
