package codegen

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with generator-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithFile adds a declaration file field to the logger.
func (l *Logger) WithFile(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("file", path),
	}
}

// LogGenerate logs the generation of one output file.
func (l *Logger) LogGenerate(ctx context.Context, output string, sets int, changed bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "generate failed",
			"output", output,
			"error", err,
		)
		return
	}
	if !changed {
		l.DebugContext(ctx, "output up to date",
			"output", output,
			"flag_sets", sets,
		)
		return
	}
	l.InfoContext(ctx, "generated flag sets",
		"output", output,
		"flag_sets", sets,
	)
}

// LogFlagSet logs the bit assignment of one declaration.
func (l *Logger) LogFlagSet(ctx context.Context, fs FlagSet) {
	l.DebugContext(ctx, "flag set",
		"name", fs.Name,
		"storage", fs.Storage,
		"flags", len(fs.Flags),
	)
}

// LogCheck logs the validation of one declaration file.
func (l *Logger) LogCheck(ctx context.Context, path string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "declaration invalid",
			"file", path,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "declaration valid",
		"file", path,
	)
}
