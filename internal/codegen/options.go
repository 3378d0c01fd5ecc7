package codegen

import "runtime"

type options struct {
	logger      *Logger
	order       Order
	concurrency int
}

// Option configures a Generator.
type Option func(*options)

// WithLogger configures the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithOrder sets the bit order for declarations that do not choose one.
//
// Default: Descending.
func WithOrder(order Order) Option {
	return func(o *options) {
		o.order = order
	}
}

// WithConcurrency limits how many declaration files are generated at once.
// Values <= 0 select runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

func defaultOptions() options {
	return options{
		logger:      NoopLogger(),
		order:       Descending,
		concurrency: runtime.GOMAXPROCS(0),
	}
}
