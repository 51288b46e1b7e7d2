// Package prom exports selector metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	c, _ := prom.NewCollector(reg, "search")
//	sel, _ := topk.New(topk.StrategyBuffered, 10, topk.WithMetricsCollector(c))
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/topk"
)

// Compile time check to ensure Collector satisfies the MetricsCollector interface.
var _ topk.MetricsCollector = (*Collector)(nil)

// Collector implements topk.MetricsCollector on top of Prometheus metrics.
// All metrics carry a "strategy" label.
type Collector struct {
	latency     *prometheus.HistogramVec
	selects     *prometheus.CounterVec
	scanned     *prometheus.CounterVec
	accepted    *prometheus.CounterVec
	retained    *prometheus.CounterVec
	compactions *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
// namespace prefixes every metric name and may be empty.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	labels := []string{"strategy"}

	c := &Collector{
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "topk",
			Name:      "select_duration_seconds",
			Help:      "Latency of top-k selections",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, labels),
		selects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "topk",
			Name:      "selects_total",
			Help:      "Total top-k selections",
		}, labels),
		scanned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "topk",
			Name:      "scanned_hits_total",
			Help:      "Total hits consumed from input streams",
		}, labels),
		accepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "topk",
			Name:      "accepted_hits_total",
			Help:      "Total hits that beat the running threshold",
		}, labels),
		retained: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "topk",
			Name:      "retained_hits_total",
			Help:      "Total hits returned to callers",
		}, labels),
		compactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "topk",
			Name:      "compactions_total",
			Help:      "Total quickselect passes over selection buffers",
		}, labels),
	}

	for _, m := range []prometheus.Collector{c.latency, c.selects, c.scanned, c.accepted, c.retained, c.compactions} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordSelect implements topk.MetricsCollector.
func (c *Collector) RecordSelect(stats topk.SelectStats) {
	strategy := stats.Strategy.String()

	c.latency.WithLabelValues(strategy).Observe(stats.Duration.Seconds())
	c.selects.WithLabelValues(strategy).Inc()
	c.scanned.WithLabelValues(strategy).Add(float64(stats.Scanned))
	c.accepted.WithLabelValues(strategy).Add(float64(stats.Accepted))
	c.retained.WithLabelValues(strategy).Add(float64(stats.Retained))
	c.compactions.WithLabelValues(strategy).Add(float64(stats.Compactions))
}
