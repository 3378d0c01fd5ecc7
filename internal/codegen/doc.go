// Package codegen turns flag-set declarations into Go source.
//
// A declaration names a value type, its storage and an ordered list of flags.
// For every declaration the generated file holds a zero-size tag type, an
// alias of the matching strongflags engine type, a bit-index constant and a
// value variable per flag, and FromBit / FromUnderlying (or FromContainer)
// constructors. Declarations are validated before any source is produced;
// an invalid declaration never yields a file.
//
// Declarations come either from command-line flags or from TOML files:
//
//	package = "perms"
//	output  = "perm_flags.go"
//
//	[[flagset]]
//	name    = "Perm"
//	storage = "uint8"
//	flags   = ["Read", "Write", "Exec"]
package codegen
