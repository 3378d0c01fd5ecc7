package strongflags

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFlags is returned when a declaration reports zero flags.
	ErrNoFlags = errors.New("flag set declares no flags")

	// ErrTooManyFlags is returned when a declaration reports more flags than
	// the engine supports.
	ErrTooManyFlags = errors.New("flag set declares too many flags")
)

// ErrBitOutOfRange indicates a bit index outside [0, Size) of a flag set.
//
// Value operations panic with this error; ValidateBit returns it.
type ErrBitOutOfRange struct {
	Bit  uint
	Size uint
}

func (e *ErrBitOutOfRange) Error() string {
	return fmt.Sprintf("bit %d out of range for flag set of size %d", e.Bit, e.Size)
}

// ErrStorageTooSmall indicates storage that cannot hold every declared flag.
type ErrStorageTooSmall struct {
	Size  uint
	Width uint
}

func (e *ErrStorageTooSmall) Error() string {
	return fmt.Sprintf("storage of %d bits too small for %d flags", e.Width, e.Size)
}
