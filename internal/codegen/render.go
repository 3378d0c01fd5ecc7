package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

const (
	enginePath = "github.com/hupe1980/strongflags"
	bitvecPath = "github.com/hupe1980/strongflags/bitvec"
)

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by strongflags. DO NOT EDIT.

package {{.Package}}

import (
	"{{.EnginePath}}"
{{- if .UsesBitvec}}
	"{{.BitvecPath}}"
{{- end}}
)
{{range .Sets}}{{$name := .Name}}
// {{.Tag}} declares the {{.Name}} flag set.
type {{.Tag}} struct{}

// Size returns the number of {{.Name}} flags.
func ({{.Tag}}) Size() uint { return {{.Size}} }

// {{.Doc}}
type {{.Name}} = strongflags.{{.Engine}}[{{.Tag}}, {{.Storage}}]
{{- if not .Container}}

// {{.Storage}} must hold all {{.Size}} {{.Name}} flags.
const _ {{.Storage}} = {{if .Signed}}-1{{else}}1{{end}} << ({{.Size}} - 1)
{{- end}}

// Bit indexes of the {{.Name}} flags.
const (
{{- range .Flags}}
	{{.BitIdent}} = {{.Bit}}
{{- end}}
)

// {{.Name}} flags, each with a single bit set. They are shared variables:
// copy one before calling a pointer method on it.
var (
{{- range .Flags}}
	{{.Ident}} = {{$name}}FromBit({{.BitIdent}})
{{- end}}
)

// {{.Name}}FromBit returns the {{.Name}} value with only bit set.
// It panics if bit is not a {{.Name}} bit index.
func {{.Name}}FromBit(bit uint) {{.Name}} {
	return strongflags.{{.FromBit}}[{{.Tag}}, {{.Storage}}](bit)
}
{{if .Container}}
// {{.Name}}FromContainer returns the {{.Name}} value holding c.
// Bits beyond the declared flags are dropped.
func {{.Name}}FromContainer(c {{.Storage}}) {{.Name}} {
	return strongflags.FromContainer[{{.Tag}}](c)
}
{{else}}
// {{.Name}}FromUnderlying returns the {{.Name}} value holding v.
// Bits beyond the declared flags are dropped.
func {{.Name}}FromUnderlying(v {{.Storage}}) {{.Name}} {
	return strongflags.FromUnderlying[{{.Tag}}](v)
}
{{end}}{{end}}`))

type fileData struct {
	Package    string
	EnginePath string
	BitvecPath string
	UsesBitvec bool
	Sets       []setData
}

type setData struct {
	Name      string
	Tag       string
	Doc       string
	Storage   string
	Engine    string
	FromBit   string
	Size      int
	Container bool
	Signed    bool
	Flags     []flagData
}

type flagData struct {
	Ident    string
	BitIdent string
	Bit      uint
}

// Render validates the declarations and returns the formatted Go source of
// the file declaring them in package pkg. Declarations without an explicit
// order use def.
func Render(pkg string, sets []FlagSet, def Order) ([]byte, error) {
	if !isIdentifier(pkg) {
		if pkg == "" {
			return nil, ErrNoPackage
		}
		return nil, fmt.Errorf("%w: package %q", ErrInvalidIdentifier, pkg)
	}
	if len(sets) == 0 {
		return nil, ErrNoFlagSets
	}
	if err := ValidateAll(sets); err != nil {
		return nil, err
	}

	data := fileData{
		Package:    pkg,
		EnginePath: enginePath,
		BitvecPath: bitvecPath,
	}
	for _, fs := range sets {
		sd, err := newSetData(fs, def)
		if err != nil {
			return nil, err
		}
		data.UsesBitvec = data.UsesBitvec || sd.Container
		data.Sets = append(data.Sets, sd)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func newSetData(fs FlagSet, def Order) (setData, error) {
	storage, err := LookupStorage(fs.Storage)
	if err != nil {
		return setData{}, err
	}
	order := fs.Order
	if order == "" {
		order = def
	}
	if order, err = ParseOrder(string(order)); err != nil {
		return setData{}, err
	}

	sd := setData{
		Name:      fs.Name,
		Tag:       fs.Tag(),
		Doc:       strings.ReplaceAll(strings.TrimSpace(fs.Doc), "\n", "\n// "),
		Storage:   storage.Name,
		Engine:    "Flags",
		FromBit:   "FromBit",
		Size:      len(fs.Flags),
		Container: storage.Kind == KindContainer,
		Signed:    storage.Signed,
	}
	if sd.Doc == "" {
		sd.Doc = fmt.Sprintf("%s is a set of %s flags.", fs.Name, fs.Name)
	}
	if sd.Container {
		sd.Engine = "Set"
		sd.FromBit = "SetFromBit"
	}

	p := fs.prefix()
	for k, f := range fs.Flags {
		sd.Flags = append(sd.Flags, flagData{
			Ident:    p + f,
			BitIdent: p + f + "Bit",
			Bit:      fs.Bit(k, order),
		})
	}
	return sd, nil
}
