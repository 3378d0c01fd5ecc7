package codegen

import "errors"

var (
	// ErrUnknownStorage is returned for storage types the generator does not know.
	ErrUnknownStorage = errors.New("unknown storage type")

	// ErrInvalidIdentifier is returned for names that are not Go identifiers.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrDuplicateFlag is returned when a flag name appears twice in one declaration.
	ErrDuplicateFlag = errors.New("duplicate flag")

	// ErrNameCollision is returned when two generated identifiers coincide.
	ErrNameCollision = errors.New("generated identifier collision")

	// ErrInvalidOrder is returned for an unknown bit order.
	ErrInvalidOrder = errors.New("invalid bit order")

	// ErrNoPackage is returned when no package name is known for a file.
	ErrNoPackage = errors.New("missing package name")

	// ErrNoFlagSets is returned for a file without declarations.
	ErrNoFlagSets = errors.New("no flag sets declared")
)
