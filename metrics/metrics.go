// Package metrics records crucible search outcomes as Prometheus metrics.
//
// A Collector registers its vectors on the Registerer it is given, so tests
// and the CLI each use a private registry rather than the global default.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/crucible/crucible"
)

// Namespace prefixes every metric name.
const Namespace = "crucible"

// statusError labels searches that returned an error (invalid options,
// cancellation) instead of a Result.
const statusError = "error"

// Collector holds the Prometheus vectors for search outcomes.
type Collector struct {
	searches *prometheus.CounterVec
	duration *prometheus.HistogramVec
	expanded *prometheus.HistogramVec
	pathCost *prometheus.GaugeVec
}

// NewCollector creates the collector and registers it on reg.
// It panics if the metrics are already registered on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		searches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "searches_total",
				Help:      "Total number of searches by profile and outcome",
			},
			[]string{"profile", "status"},
		),

		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "search_duration_seconds",
				Help:      "Wall time of one search in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs to ~26s
			},
			[]string{"profile"},
		),

		expanded: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "expanded_states",
				Help:      "Number of search states expanded per search",
				Buckets:   prometheus.ExponentialBuckets(1, 8, 9), // 1 to ~16M
			},
			[]string{"profile"},
		),

		pathCost: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "path_cost",
				Help:      "Minimal cost found by the most recent successful search",
			},
			[]string{"profile"},
		),
	}
}

// RecordSearch records one finished search.
func (c *Collector) RecordSearch(profile string, res crucible.Result, elapsed time.Duration) {
	c.searches.WithLabelValues(profile, res.Status.String()).Inc()
	c.duration.WithLabelValues(profile).Observe(elapsed.Seconds())
	c.expanded.WithLabelValues(profile).Observe(float64(res.Expanded))
	if res.Found() {
		c.pathCost.WithLabelValues(profile).Set(float64(res.Cost))
	}
}

// RecordError records a search that ended with an error.
func (c *Collector) RecordError(profile string, elapsed time.Duration) {
	c.searches.WithLabelValues(profile, statusError).Inc()
	c.duration.WithLabelValues(profile).Observe(elapsed.Seconds())
}
