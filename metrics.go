package topk

import (
	"context"
	"sync/atomic"
	"time"
)

// SelectStats describes one completed TopK call.
type SelectStats struct {
	Strategy Strategy
	K        int

	// Scanned is the number of hits the stream yielded.
	Scanned int
	// Accepted is the number of hits that passed the threshold test after
	// the first k (heap root replacements or buffer appends).
	Accepted int
	// Retained is the number of hits written to the output, min(k, Scanned).
	Retained int
	// Compactions is the number of selection passes run over the buffer.
	// Always zero for the heap strategy.
	Compactions int

	Duration time.Duration
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; package
// prom ships a Prometheus implementation.
type MetricsCollector interface {
	// RecordSelect is called after each TopK call of an instrumented selector.
	RecordSelect(stats SelectStats)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSelect(SelectStats) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SelectCount      atomic.Int64
	SelectTotalNanos atomic.Int64
	ScannedHits      atomic.Int64
	AcceptedHits     atomic.Int64
	RetainedHits     atomic.Int64
	Compactions      atomic.Int64
}

// RecordSelect implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSelect(stats SelectStats) {
	b.SelectCount.Add(1)
	b.SelectTotalNanos.Add(stats.Duration.Nanoseconds())
	b.ScannedHits.Add(int64(stats.Scanned))
	b.AcceptedHits.Add(int64(stats.Accepted))
	b.RetainedHits.Add(int64(stats.Retained))
	b.Compactions.Add(int64(stats.Compactions))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SelectCount:    b.SelectCount.Load(),
		SelectAvgNanos: b.getAvgSelectNanos(),
		ScannedHits:    b.ScannedHits.Load(),
		AcceptedHits:   b.AcceptedHits.Load(),
		RetainedHits:   b.RetainedHits.Load(),
		Compactions:    b.Compactions.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSelectNanos() int64 {
	count := b.SelectCount.Load()
	if count == 0 {
		return 0
	}
	return b.SelectTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SelectCount    int64
	SelectAvgNanos int64
	ScannedHits    int64
	AcceptedHits   int64
	RetainedHits   int64
	Compactions    int64
}

// observer reports finished selections to the configured logger and
// metrics collector. When neither would record anything it is disabled and
// selectors skip timing entirely.
type observer struct {
	logger  *Logger
	metrics MetricsCollector
	enabled bool
}

func newObserver(o options, s Strategy, k int) observer {
	_, noop := o.metricsCollector.(NoopMetricsCollector)
	return observer{
		logger:  o.logger.WithStrategy(s).WithK(k),
		metrics: o.metricsCollector,
		enabled: !noop || o.logger.debugEnabled(),
	}
}

func (ob *observer) start() time.Time {
	if !ob.enabled {
		return time.Time{}
	}
	return time.Now()
}

func (ob *observer) finish(started time.Time, stats SelectStats) {
	if !ob.enabled {
		return
	}
	stats.Duration = time.Since(started)
	ob.metrics.RecordSelect(stats)
	ob.logger.LogSelect(context.Background(), stats)
}
