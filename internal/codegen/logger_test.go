package codegen

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).WithFile("perms.toml")
	ctx := context.Background()

	l.LogFlagSet(ctx, FlagSet{Name: "Perm", Storage: "uint8", Flags: []string{"Read"}})
	assert.Contains(t, buf.String(), "file=perms.toml")
	assert.Contains(t, buf.String(), "name=Perm storage=uint8 flags=1")

	buf.Reset()
	l.LogGenerate(ctx, "out.go", 2, true, nil)
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "output=out.go flag_sets=2")

	buf.Reset()
	l.LogGenerate(ctx, "out.go", 2, false, errors.New("boom"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")

	buf.Reset()
	l.LogCheck(ctx, "perms.toml", nil)
	assert.Contains(t, buf.String(), `msg="declaration valid"`)
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.LogCheck(context.Background(), "x", errors.New("ignored"))
}
