package codegen

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/strongflags"
)

func TestNew_Defaults(t *testing.T) {
	g := New(WithOrder("bogus"), WithConcurrency(-3), WithLogger(nil))

	assert.Equal(t, Descending, g.opts.order)
	assert.Positive(t, g.opts.concurrency)
	assert.NotNil(t, g.opts.logger)

	g = New(WithOrder(Ascending), WithConcurrency(2))
	assert.Equal(t, Ascending, g.opts.order)
	assert.Equal(t, 2, g.opts.concurrency)
}

func TestGenerator_Generate(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "perm_flags.go")
	f := &File{Package: "perms", FlagSets: []FlagSet{{Name: "Perm", Storage: "uint8", Flags: []string{"Read", "Write"}}}}

	var buf bytes.Buffer
	g := New(WithLogger(NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))

	require.NoError(t, g.Generate(context.Background(), f, out))
	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "PermReadBit  = 1")
	assert.Contains(t, buf.String(), `"msg":"generated flag sets"`)

	// Unchanged output is not rewritten.
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(out, old, old))
	buf.Reset()
	require.NoError(t, g.Generate(context.Background(), f, out))
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.WithinDuration(t, old, info.ModTime(), time.Second)
	assert.Contains(t, buf.String(), `"msg":"output up to date"`)
}

func TestGenerator_GenerateInvalid(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.go")
	f := &File{Package: "p", FlagSets: []FlagSet{{Name: "Empty", Storage: "uint8"}}}

	err := New().Generate(context.Background(), f, out)
	assert.ErrorIs(t, err, strongflags.ErrNoFlags)
	assert.NoFileExists(t, out)
}

func TestGenerator_GenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &File{Package: "p", FlagSets: []FlagSet{{Name: "A", Storage: "uint8", Flags: []string{"X"}}}}
	assert.ErrorIs(t, New().Generate(ctx, f, filepath.Join(t.TempDir(), "a.go")), context.Canceled)
}

func TestGenerator_GenerateFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a", "b", "c", "d"} {
		paths = append(paths, writeFile(t, dir, name+".toml",
			"package = \"p\"\n[[flagset]]\nname = \"T"+name+"\"\nstorage = \"uint16\"\nflags = [\"X\", \"Y\"]\n"))
	}

	require.NoError(t, New(WithConcurrency(2)).GenerateFiles(context.Background(), paths...))
	for _, name := range []string{"a", "b", "c", "d"} {
		src, err := os.ReadFile(filepath.Join(dir, name+"_flags.go"))
		require.NoError(t, err)
		assert.Contains(t, string(src), "type T"+name+" = strongflags.Flags[t"+name+"Decl, uint16]")
	}

	bad := writeFile(t, dir, "bad.toml", "package = \"p\"\nunknown = 1\n")
	assert.Error(t, New().GenerateFiles(context.Background(), paths[0], bad))
}

func TestGenerator_Check(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.toml", permsTOML)
	empty := writeFile(t, dir, "empty.toml", "package = \"p\"\n[[flagset]]\nname = \"E\"\nstorage = \"uint8\"\nflags = []\n")
	small := writeFile(t, dir, "small.toml", "package = \"p\"\n[[flagset]]\nname = \"S\"\nstorage = \"uint8\"\nflags = [\"A\",\"B\",\"C\",\"D\",\"E\",\"F\",\"G\",\"H\",\"I\"]\n")

	g := New()
	require.NoError(t, g.Check(context.Background(), good))

	err := g.Check(context.Background(), good, empty, small, filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, strongflags.ErrNoFlags)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var tooSmall *strongflags.ErrStorageTooSmall
	assert.ErrorAs(t, err, &tooSmall)
	assert.Contains(t, err.Error(), small)

	// Check never writes.
	assert.NoFileExists(t, filepath.Join(dir, "good_flags.go"))
}

func TestGenerator_GenerateFilesCreatesOutputDir(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "nested.toml",
		"package = \"gen\"\noutput = \"gen/deep/x_flags.go\"\n[[flagset]]\nname = \"X\"\nstorage = \"uint8\"\nflags = [\"A\"]\n")

	require.NoError(t, New().GenerateFiles(context.Background(), path))
	assert.FileExists(t, filepath.Join(dir, "gen", "deep", "x_flags.go"))
}

// The checked-in fixtures must be exactly what the generator produces.
func TestGenerator_CheckedInOutputUpToDate(t *testing.T) {
	for _, decl := range []string{
		filepath.Join("..", "testflags", "flags.toml"),
		filepath.Join("..", "..", "examples", "permissions", "flags.toml"),
	} {
		t.Run(decl, func(t *testing.T) {
			f, err := LoadFile(decl)
			require.NoError(t, err)

			want, err := f.Render(Descending)
			require.NoError(t, err)

			got, err := os.ReadFile(f.OutputPath())
			require.NoError(t, err)
			assert.Equal(t, string(want), string(got), "run go generate for %s", decl)
		})
	}
}
