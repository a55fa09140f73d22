package wordvec

import "log/slog"

type options struct {
	logger    *Logger
	strict    bool
	normalize bool
}

// Option configures loading behavior.
type Option func(*options)

// WithLogger configures structured logging for load and query operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithStrictRecords makes a record with an empty word fail the whole load
// with modelfile.ErrMalformedRecord. The default policy consumes the
// record's vector bytes, drops the entry and logs a warning, keeping the
// stream aligned for the records that follow.
func WithStrictRecords() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithNormalize L2-normalizes every vector at load time. Use this for model
// files that are not pre-normalized, so that ranking scores read as cosine
// similarity. Zero vectors are stored unchanged.
func WithNormalize() Option {
	return func(o *options) {
		o.normalize = true
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
