package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parsed collects the top-level declarations of a generated file.
type parsed struct {
	file    *ast.File
	types   map[string]string
	consts  map[string]string
	vars    []string
	funcs   []string
	imports []string
}

func parse(t *testing.T, src []byte) parsed {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.ParseComments)
	require.NoError(t, err)

	p := parsed{file: f, types: map[string]string{}, consts: map[string]string{}}
	for _, imp := range f.Imports {
		p.imports = append(p.imports, strings.Trim(imp.Path.Value, `"`))
	}
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				p.funcs = append(p.funcs, d.Name.Name)
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					kind := "type"
					if s.Assign.IsValid() {
						kind = "alias"
					}
					p.types[s.Name.Name] = kind
				case *ast.ValueSpec:
					for i, n := range s.Names {
						if d.Tok == token.VAR {
							p.vars = append(p.vars, n.Name)
							continue
						}
						if lit, ok := s.Values[i].(*ast.BasicLit); ok {
							p.consts[n.Name] = lit.Value
						}
					}
				}
			}
		}
	}
	return p
}

func TestRender_Integer(t *testing.T) {
	src, err := Render("perms", []FlagSet{{
		Name:    "Perm",
		Storage: "uint8",
		Flags:   []string{"Read", "Write", "Exec"},
	}}, Descending)
	require.NoError(t, err)

	p := parse(t, src)
	assert.Equal(t, "perms", p.file.Name.Name)
	assert.Equal(t, []string{enginePath}, p.imports)
	assert.Equal(t, map[string]string{"permDecl": "type", "Perm": "alias"}, p.types)
	assert.Equal(t, map[string]string{"PermReadBit": "2", "PermWriteBit": "1", "PermExecBit": "0"}, p.consts)
	assert.Equal(t, []string{"PermRead", "PermWrite", "PermExec"}, p.vars)
	assert.Equal(t, []string{"PermFromBit", "PermFromUnderlying"}, p.funcs)

	s := string(src)
	assert.True(t, strings.HasPrefix(s, "// Code generated by strongflags. DO NOT EDIT.\n"))
	assert.Contains(t, s, "type Perm = strongflags.Flags[permDecl, uint8]")
	assert.Contains(t, s, "func (permDecl) Size() uint { return 3 }")
	assert.Contains(t, s, "// Perm is a set of Perm flags.")
	assert.Contains(t, s, "const _ uint8 = 1 << (3 - 1)")
}

func TestRender_Ascending(t *testing.T) {
	src, err := Render("perms", []FlagSet{{
		Name:    "Perm",
		Storage: "uint8",
		Flags:   []string{"Read", "Write", "Exec"},
	}}, Ascending)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"PermReadBit": "0", "PermWriteBit": "1", "PermExecBit": "2"}, parse(t, src).consts)

	// The declaration's own order wins over the default.
	src, err = Render("perms", []FlagSet{{
		Name:    "Perm",
		Storage: "uint8",
		Order:   Descending,
		Flags:   []string{"Read", "Write", "Exec"},
	}}, Ascending)
	require.NoError(t, err)
	assert.Equal(t, "2", parse(t, src).consts["PermReadBit"])
}

func TestRender_Signed(t *testing.T) {
	src, err := Render("p", []FlagSet{{Name: "Mode", Storage: "int16", Flags: []string{"A"}}}, Descending)
	require.NoError(t, err)
	assert.Contains(t, string(src), "const _ int16 = -1 << (1 - 1)")
}

func TestRender_Container(t *testing.T) {
	src, err := Render("caps", []FlagSet{{
		Name:    "Caps",
		Prefix:  "Cap",
		Storage: "bitvec.Bits128",
		Flags:   names("C", 70),
		Doc:     "Caps lists capabilities.\nIt spans two words.",
	}}, Descending)
	require.NoError(t, err)

	p := parse(t, src)
	assert.Equal(t, []string{enginePath, bitvecPath}, p.imports)
	assert.Equal(t, []string{"CapsFromBit", "CapsFromContainer"}, p.funcs)
	assert.Equal(t, "69", p.consts["CapC000Bit"])
	assert.Equal(t, "0", p.consts["CapC069Bit"])
	assert.Len(t, p.vars, 70)

	s := string(src)
	assert.Contains(t, s, "type Caps = strongflags.Set[capsDecl, bitvec.Bits128]")
	assert.Contains(t, s, "strongflags.SetFromBit[capsDecl, bitvec.Bits128](bit)")
	assert.Contains(t, s, "// Caps lists capabilities.\n// It spans two words.\ntype Caps")
	assert.NotContains(t, s, "const _ bitvec")
}

func TestRender_MultipleSets(t *testing.T) {
	src, err := Render("p", []FlagSet{
		{Name: "Perm", Storage: "uint8", Flags: []string{"Read"}},
		{Name: "Role", Storage: "uint64", Flags: []string{"Admin"}},
	}, Descending)
	require.NoError(t, err)

	p := parse(t, src)
	assert.Equal(t, []string{enginePath}, p.imports)
	assert.Len(t, p.types, 4)
	assert.Equal(t, []string{"PermRead", "RoleAdmin"}, p.vars)
}

func TestRender_Errors(t *testing.T) {
	valid := []FlagSet{{Name: "Perm", Storage: "uint8", Flags: []string{"Read"}}}

	_, err := Render("", valid, Descending)
	assert.ErrorIs(t, err, ErrNoPackage)

	_, err = Render("my-pkg", valid, Descending)
	assert.ErrorIs(t, err, ErrInvalidIdentifier)

	_, err = Render("p", nil, Descending)
	assert.ErrorIs(t, err, ErrNoFlagSets)

	_, err = Render("p", append(valid, valid...), Descending)
	assert.ErrorIs(t, err, ErrNameCollision)

	// The generated file would not compile: the flag hides the import.
	_, err = Render("p", []FlagSet{{Name: "Perm", Prefix: "strong", Storage: "uint8", Flags: []string{"flags", "other"}}}, Descending)
	assert.ErrorIs(t, err, ErrNameCollision)

	_, err = Render("p", valid, Order("zigzag"))
	assert.ErrorIs(t, err, ErrInvalidOrder)
}
