package topk

import (
	"log/slog"

	"github.com/hupe1980/topk/model"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	ties             model.TieBreak
}

// Option configures selector construction.
type Option func(*options)

// WithTieBreak configures how hits with equal scores are ranked.
//
// The default, TiesUnspecified, consults the score only: which of several
// equally scored hits ends up in the result depends on input order. Use
// TiesByDocAsc when results must be reproducible across input permutations.
func WithTieBreak(ties model.TieBreak) Option {
	return func(o *options) {
		o.ties = ties
	}
}

// WithMetricsCollector configures a metrics collector that observes every
// TopK call. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &topk.BasicMetricsCollector{}
//	sel, _ := topk.New(topk.StrategyBuffered, 10, topk.WithMetricsCollector(metrics))
//	// ... use sel ...
//	stats := metrics.GetStats()
//	fmt.Printf("Calls: %d, Avg latency: %dns\n", stats.SelectCount, stats.SelectAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging. Selections are logged at debug
// level. Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := topk.NewJSONLogger(slog.LevelDebug)
//	sel, _ := topk.New(topk.StrategyHeap, 10, topk.WithLogger(logger))
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

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		ties:             model.TiesUnspecified,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
