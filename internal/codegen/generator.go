package codegen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Generator renders declaration files and writes the results.
type Generator struct {
	opts options
}

// New creates a Generator.
func New(optFns ...Option) *Generator {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.concurrency <= 0 {
		opts.concurrency = defaultOptions().concurrency
	}
	if _, err := ParseOrder(string(opts.order)); err != nil {
		opts.order = Descending
	}
	return &Generator{opts: opts}
}

// Generate renders f and writes it to output. The file is left untouched when
// its content would not change.
func (g *Generator) Generate(ctx context.Context, f *File, output string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := g.opts.logger
	if f.path != "" {
		log = log.WithFile(f.path)
	}

	src, err := f.Render(g.opts.order)
	if err != nil {
		log.LogGenerate(ctx, output, len(f.FlagSets), false, err)
		return err
	}
	for _, fs := range f.FlagSets {
		log.LogFlagSet(ctx, fs)
	}

	changed, err := writeIfChanged(output, src)
	log.LogGenerate(ctx, output, len(f.FlagSets), changed, err)
	return err
}

// GenerateFiles loads every declaration file in paths and generates their
// outputs concurrently. The first failure cancels the remaining work.
func (g *Generator) GenerateFiles(ctx context.Context, paths ...string) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.concurrency)

	for _, path := range paths {
		eg.Go(func() error {
			f, err := LoadFile(path)
			if err != nil {
				g.opts.logger.LogCheck(ctx, path, err)
				return err
			}
			return g.Generate(ctx, f, f.OutputPath())
		})
	}
	return eg.Wait()
}

// Check loads and validates every declaration file in paths without writing
// anything. All failures are reported, joined.
func (g *Generator) Check(ctx context.Context, paths ...string) error {
	var errs []error
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		f, err := LoadFile(path)
		if err == nil {
			if err = f.Validate(); err != nil {
				err = fmt.Errorf("%s: %w", path, err)
			}
		}
		g.opts.logger.LogCheck(ctx, path, err)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// writeIfChanged writes src to path unless path already holds it, creating
// missing parent directories.
func writeIfChanged(path string, src []byte) (bool, error) {
	old, err := os.ReadFile(path)
	if err == nil && bytes.Equal(old, src) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}
