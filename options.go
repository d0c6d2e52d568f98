package svmlight

import "log/slog"

// ZeroBased selects how on-disk column indices are interpreted on load.
type ZeroBased int

const (
	// ZeroBasedAuto shifts all indices down by one only when the smallest
	// index observed in the file is greater than zero, i.e. the file is
	// assumed one-based unless a zero index proves otherwise.
	ZeroBasedAuto ZeroBased = iota

	// ZeroBasedTrue takes indices as stored; no shift is applied.
	ZeroBasedTrue

	// ZeroBasedFalse treats the file as one-based and always shifts
	// indices down by one.
	ZeroBasedFalse
)

type options struct {
	bufferMB         int
	numFeatures      uint64
	pinNumFeatures   bool
	zeroBased        ZeroBased
	comments         bool
	concurrency      int
	oneBasedOutput   bool
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures Load and Dump behavior.
type Option func(*options)

// WithBufferMB sets the read/CSR buffer budget hint in megabytes.
// Values below 1 are raised to 1. The default is 40.
func WithBufferMB(mb int) Option {
	return func(o *options) {
		if mb < 1 {
			mb = 1
		}
		o.bufferMB = mb
	}
}

// WithNumFeatures pins the dataset width instead of inferring it from the
// maximum observed column index. Useful when loading several files that are
// slices of one bigger dataset: a slice may lack examples of the highest
// features, so its inferred width can differ from the others. Load fails
// with *ErrFeatureCountTooSmall when the file needs more columns than n.
func WithNumFeatures(n uint64) Option {
	return func(o *options) {
		o.numFeatures = n
		o.pinNumFeatures = true
	}
}

// WithZeroBased pins or auto-detects the index base of the input file.
// The default is ZeroBasedAuto.
func WithZeroBased(zb ZeroBased) Option {
	return func(o *options) {
		o.zeroBased = zb
	}
}

// WithComments enables capture of per-row trailing comments on load.
func WithComments(enabled bool) Option {
	return func(o *options) {
		o.comments = enabled
	}
}

// WithConcurrency bounds the number of files LoadFiles parses at once.
// Values below 1 fall back to GOMAXPROCS. Parsing of a single file is
// always sequential.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithOneBasedOutput makes Dump write one-based column indices. By default
// indices are written exactly as stored (zero-based).
func WithOneBasedOutput() Option {
	return func(o *options) {
		o.oneBasedOutput = true
	}
}

// WithLogger configures structured logging for operations.
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

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// defaultBufferMB mirrors the conventional 40 MB parse buffer used by
// svmlight tooling.
const defaultBufferMB = 40

func applyOptions(optFns []Option) options {
	o := options{
		bufferMB:         defaultBufferMB,
		zeroBased:        ZeroBasedAuto,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
