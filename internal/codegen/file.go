package codegen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// File is a declaration file: one generated Go file holding several flag sets.
type File struct {
	// Package of the generated file.
	Package string `toml:"package"`
	// Output path of the generated file, relative to the declaration file.
	Output string `toml:"output,omitempty"`
	// Order is the default bit order of the file's flag sets.
	Order    Order     `toml:"order,omitempty"`
	FlagSets []FlagSet `toml:"flagset"`

	path string
}

// LoadFile reads and decodes the TOML declaration file at path. Unknown keys
// are rejected.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file: %w", err)
	}
	f, err := ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.path = path
	return f, nil
}

// ParseFile decodes a TOML declaration file.
func ParseFile(data []byte) (*File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode declaration file: %w", err)
	}
	return &f, nil
}

// Path returns the path the file was loaded from, if any.
func (f *File) Path() string { return f.path }

// OutputPath returns where the generated source is written: Output resolved
// against the declaration file's directory, or "<name>_flags.go" next to it.
func (f *File) OutputPath() string {
	dir := filepath.Dir(f.path)
	if f.Output != "" {
		if filepath.IsAbs(f.Output) {
			return f.Output
		}
		return filepath.Join(dir, f.Output)
	}
	base := strings.TrimSuffix(filepath.Base(f.path), filepath.Ext(f.path))
	if f.path == "" {
		base = "strongflags"
	}
	return filepath.Join(dir, base+"_flags.go")
}

// Validate checks the file and all of its declarations.
func (f *File) Validate() error {
	if f.Package == "" {
		return ErrNoPackage
	}
	if !isIdentifier(f.Package) {
		return fmt.Errorf("%w: package %q", ErrInvalidIdentifier, f.Package)
	}
	if len(f.FlagSets) == 0 {
		return ErrNoFlagSets
	}
	if f.Order != "" {
		if _, err := ParseOrder(string(f.Order)); err != nil {
			return err
		}
	}
	return ValidateAll(f.FlagSets)
}

// Render returns the generated source for the file. def applies to flag sets
// when neither they nor the file name an order.
func (f *File) Render(def Order) ([]byte, error) {
	if f.Order != "" {
		def = f.Order
	}
	return Render(f.Package, f.FlagSets, def)
}
