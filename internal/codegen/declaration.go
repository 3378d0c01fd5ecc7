package codegen

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
	"unicode"

	"github.com/hupe1980/strongflags"
)

const (
	maxFlags        = strongflags.MaxFlags
	maxIntegerFlags = strongflags.MaxIntegerFlags
)

// Order selects how bit indexes are assigned to the listed flags.
type Order string

const (
	// Descending gives the first listed flag bit N-1 and the last bit 0.
	Descending Order = "descending"
	// Ascending gives the first listed flag bit 0 and the last bit N-1.
	Ascending Order = "ascending"
)

// ParseOrder validates s as an Order. The empty string yields Descending.
func ParseOrder(s string) (Order, error) {
	switch o := Order(strings.ToLower(s)); o {
	case "":
		return Descending, nil
	case Descending, Ascending:
		return o, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOrder, s)
	}
}

// FlagSet is one flag-set declaration.
type FlagSet struct {
	// Name of the generated value type.
	Name string `toml:"name"`
	// Storage names an entry of the storage catalog, e.g. "uint16" or "bitvec.Bits256".
	Storage string `toml:"storage"`
	// Flags lists the flag names in declaration order.
	Flags []string `toml:"flags"`
	// Order overrides the generator's default bit order.
	Order Order `toml:"order,omitempty"`
	// Prefix of the generated flag identifiers; defaults to Name.
	Prefix string `toml:"prefix,omitempty"`
	// Doc replaces the generated doc comment of the value type.
	Doc string `toml:"doc,omitempty"`
}

// Bit returns the bit index of the flag at position k under order o.
func (fs FlagSet) Bit(k int, o Order) uint {
	if o == Ascending {
		return uint(k)
	}
	return uint(len(fs.Flags) - 1 - k)
}

func (fs FlagSet) prefix() string {
	if fs.Prefix != "" {
		return fs.Prefix
	}
	return fs.Name
}

// Tag returns the name of the generated declaration tag type.
func (fs FlagSet) Tag() string {
	return lowerFirst(fs.Name) + "Decl"
}

// Validate checks the declaration. The returned error wraps one of the
// strongflags or codegen sentinel errors.
func (fs FlagSet) Validate() error {
	if err := fs.validate(); err != nil {
		if fs.Name == "" {
			return fmt.Errorf("flag set: %w", err)
		}
		return fmt.Errorf("flag set %s: %w", fs.Name, err)
	}
	return nil
}

func (fs FlagSet) validate() error {
	if !isIdentifier(fs.Name) {
		return fmt.Errorf("%w: type name %q", ErrInvalidIdentifier, fs.Name)
	}
	if fs.Prefix != "" && !isIdentifier(fs.Prefix) {
		return fmt.Errorf("%w: prefix %q", ErrInvalidIdentifier, fs.Prefix)
	}
	if fs.Order != "" {
		if _, err := ParseOrder(string(fs.Order)); err != nil {
			return err
		}
	}

	storage, err := LookupStorage(fs.Storage)
	if err != nil {
		return err
	}

	n := uint(len(fs.Flags))
	switch {
	case n == 0:
		return strongflags.ErrNoFlags
	case n > storage.Capacity():
		if limit := storage.limit(); n > limit {
			return fmt.Errorf("%w: %d > %d for %s storage", strongflags.ErrTooManyFlags, n, limit, storage.Kind)
		}
		return &strongflags.ErrStorageTooSmall{Size: n, Width: storage.Width}
	}

	seen := make(map[string]struct{}, len(fs.Flags))
	for _, f := range fs.Flags {
		if !isIdentifier(f) {
			return fmt.Errorf("%w: flag %q", ErrInvalidIdentifier, f)
		}
		if _, ok := seen[f]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateFlag, f)
		}
		seen[f] = struct{}{}
	}

	_, err = collectIdents(importNames([]FlagSet{fs}), fs)
	return err
}

// Identifiers returns every package-level identifier the declaration generates.
func (fs FlagSet) Identifiers() []string {
	ids := []string{fs.Name, fs.Tag(), fs.Name + "FromBit", fs.Name + fs.constructor()}
	p := fs.prefix()
	for _, f := range fs.Flags {
		ids = append(ids, p+f, p+f+"Bit")
	}
	return ids
}

func (fs FlagSet) constructor() string {
	if s, err := LookupStorage(fs.Storage); err == nil && s.Kind == KindContainer {
		return "FromContainer"
	}
	return "FromUnderlying"
}

// importNames returns the package names the generated file for sets imports,
// owned by the pseudo declaration "import".
func importNames(sets []FlagSet) map[string]string {
	seen := map[string]string{"strongflags": importOwner}
	for _, fs := range sets {
		if s, err := LookupStorage(fs.Storage); err == nil && s.Kind == KindContainer {
			seen["bitvec"] = importOwner
			break
		}
	}
	return seen
}

const importOwner = "import"

// collectIdents adds the identifiers of fs to seen, failing on the first
// identifier that is already present.
func collectIdents(seen map[string]string, fs FlagSet) (map[string]string, error) {
	if seen == nil {
		seen = make(map[string]string)
	}
	for _, id := range fs.Identifiers() {
		if owner, ok := seen[id]; ok {
			if owner == importOwner {
				return seen, fmt.Errorf("%w: %s shadows an imported package", ErrNameCollision, id)
			}
			if owner == fs.Name {
				return seen, fmt.Errorf("%w: %s", ErrNameCollision, id)
			}
			return seen, fmt.Errorf("%w: %s also declared by %s", ErrNameCollision, id, owner)
		}
		seen[id] = fs.Name
	}
	return seen, nil
}

// ValidateAll validates every declaration and checks that their generated
// identifiers do not collide within one package.
func ValidateAll(sets []FlagSet) error {
	var errs []error
	for _, fs := range sets {
		if err := fs.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	var err error
	seen := importNames(sets)
	for _, fs := range sets {
		if seen, err = collectIdents(seen, fs); err != nil {
			return fmt.Errorf("flag set %s: %w", fs.Name, err)
		}
	}
	return nil
}

func isIdentifier(s string) bool {
	return s != "_" && token.IsIdentifier(s)
}

// lowerFirst lowercases the leading upper-case run of s, keeping the last
// letter of a run that starts a new word: "Perm" -> "perm", "HTTPMode" -> "httpMode".
func lowerFirst(s string) string {
	r := []rune(s)
	i := 0
	for i < len(r) && unicode.IsUpper(r[i]) {
		i++
	}
	if i > 1 && i < len(r) && unicode.IsLower(r[i]) {
		i--
	}
	for j := 0; j < i; j++ {
		r[j] = unicode.ToLower(r[j])
	}
	return string(r)
}
