package strongflags

// MaxFlags is the largest number of flags a single declaration may hold.
// Integer storage is further limited to the width of the integer and never
// exceeds MaxIntegerFlags.
const MaxFlags = 512

// MaxIntegerFlags is the largest number of flags integer storage can hold.
const MaxIntegerFlags = 64

// Declaration identifies one flag-set declaration.
//
// Implementations are zero-size tag types; the tag makes every declaration a
// distinct Go type. Size reports the number of declared flags N and must
// return the same value on every call.
type Declaration interface {
	Size() uint
}

// sizeOf returns N for the declaration D.
func sizeOf[D Declaration]() uint {
	var d D
	return d.Size()
}

// validateSize checks a declared size against the storage width.
func validateSize(size, width, limit uint) error {
	switch {
	case size == 0:
		return ErrNoFlags
	case size > limit:
		return ErrTooManyFlags
	case size > width:
		return &ErrStorageTooSmall{Size: size, Width: width}
	}
	return nil
}

// ValidateBit reports whether bit is a valid index for the declaration D.
func ValidateBit[D Declaration](bit uint) error {
	if n := sizeOf[D](); bit >= n {
		return &ErrBitOutOfRange{Bit: bit, Size: n}
	}
	return nil
}

func checkBit[D Declaration](bit uint) {
	if err := ValidateBit[D](bit); err != nil {
		panic(err)
	}
}
