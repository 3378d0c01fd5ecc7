package codegen

import (
	"fmt"
	"sort"
	"strconv"
)

// Kind distinguishes the two storage strategies.
type Kind int

const (
	// KindInteger stores flags in a Go integer type (strongflags.Flags).
	KindInteger Kind = iota
	// KindContainer stores flags in a bitvec container (strongflags.Set).
	KindContainer
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindContainer:
		return "container"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Storage describes a storage type usable in a declaration.
type Storage struct {
	// Name is the Go type expression written into generated code.
	Name   string
	Kind   Kind
	Width  uint
	Signed bool
}

// Capacity returns the largest flag count the storage can hold.
func (s Storage) Capacity() uint {
	return min(s.Width, s.limit())
}

// limit is the engine's flag limit for the storage kind.
func (s Storage) limit() uint {
	if s.Kind == KindInteger {
		return maxIntegerFlags
	}
	return maxFlags
}

var storages = map[string]Storage{
	"uint8":   {Name: "uint8", Kind: KindInteger, Width: 8},
	"byte":    {Name: "byte", Kind: KindInteger, Width: 8},
	"uint16":  {Name: "uint16", Kind: KindInteger, Width: 16},
	"uint32":  {Name: "uint32", Kind: KindInteger, Width: 32},
	"uint64":  {Name: "uint64", Kind: KindInteger, Width: 64},
	"uint":    {Name: "uint", Kind: KindInteger, Width: strconv.IntSize},
	"uintptr": {Name: "uintptr", Kind: KindInteger, Width: strconv.IntSize},
	"int8":    {Name: "int8", Kind: KindInteger, Width: 8, Signed: true},
	"int16":   {Name: "int16", Kind: KindInteger, Width: 16, Signed: true},
	"int32":   {Name: "int32", Kind: KindInteger, Width: 32, Signed: true},
	"int64":   {Name: "int64", Kind: KindInteger, Width: 64, Signed: true},
	"int":     {Name: "int", Kind: KindInteger, Width: strconv.IntSize, Signed: true},

	"bitvec.Bits128": {Name: "bitvec.Bits128", Kind: KindContainer, Width: 128},
	"bitvec.Bits256": {Name: "bitvec.Bits256", Kind: KindContainer, Width: 256},
	"bitvec.Bits512": {Name: "bitvec.Bits512", Kind: KindContainer, Width: 512},
}

// LookupStorage returns the storage registered under name.
func LookupStorage(name string) (Storage, error) {
	s, ok := storages[name]
	if !ok {
		return Storage{}, fmt.Errorf("%w: %q", ErrUnknownStorage, name)
	}
	return s, nil
}

// StorageNames returns the known storage names in sorted order.
func StorageNames() []string {
	names := make([]string, 0, len(storages))
	for name := range storages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
