// Package strongflags provides strongly typed bit flag sets.
//
// A flag set is declared once, usually through the strongflags generator, and
// yields a value type that is distinct from every other declaration even when
// the storage and the flag count are identical. Values support the complete
// set algebra (union, intersection, symmetric difference, complement), subset
// and intersection tests, and single-bit mutation, at the cost of the native
// integer or word operations underneath.
//
// # Declaring
//
// With go:generate:
//
//	//go:generate go run github.com/hupe1980/strongflags/cmd/strongflags generate -t Perm -s uint8 Read Write Exec
//
// produces
//
//	type Perm = strongflags.Flags[permDecl, uint8]
//
//	const (
//		PermReadBit  = 2
//		PermWriteBit = 1
//		PermExecBit  = 0
//	)
//
//	var (
//		PermRead  = PermFromBit(PermReadBit)
//		PermWrite = PermFromBit(PermWriteBit)
//		PermExec  = PermFromBit(PermExecBit)
//	)
//
// A declaration is nothing more than a zero-size tag type implementing
// Declaration, so hand-written declarations work the same way:
//
//	type modeDecl struct{}
//
//	func (modeDecl) Size() uint { return 3 }
//
//	type Mode = strongflags.Flags[modeDecl, uint16]
//
// # Storage
//
// Flags stores up to 64 flags in any Go integer type. Set stores flags in a
// fixed-width value container such as bitvec.Bits256. Both keep bits at or
// above the declared size cleared, including after Complement.
//
// # Usage
//
//	p := PermRead.Union(PermWrite)
//	p.TestAll(PermRead)            // true
//	p.TestAny(PermExec)            // false
//	p.Complement() == PermExec     // true
//	p.ToggleBit(PermExecBit)       // p is now Read|Write|Exec
//
// The generated flag values are package variables, since Go has no struct
// constants. Values copy like integers, so work on a copy:
//
//	p := PermRead
//	p.SetBit(PermExecBit)          // PermRead is unchanged
//	PermRead.SetBit(PermExecBit)   // changes PermRead for every caller
//
// Bit indexes at or beyond the declared size cause a panic with an
// *ErrBitOutOfRange; use ValidateBit to check untrusted indexes first.
package strongflags
