// Package metrics holds weaver's Prometheus instruments.
//
// Instruments live on a private registry so every Solver, and every test,
// gets an isolated set. The CLI has no server to scrape; it writes the
// registry in text exposition format on exit when metrics.textfile is set,
// ready for node_exporter's textfile collector.
//
// All operations are safe for concurrent use.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "weaver"

// Search result labels.
const (
	ResultFound       = "found"
	ResultUnreachable = "unreachable"
	ResultError       = "error"
)

// Metrics holds every weaver instrument.
type Metrics struct {
	Registry *prometheus.Registry

	// BuildSeconds is the duration of the last graph build.
	BuildSeconds prometheus.Gauge

	// Vertices and Edges describe the built graph.
	Vertices prometheus.Gauge
	Edges    prometheus.Gauge

	// SearchSeconds measures shortest-path latency.
	SearchSeconds prometheus.Histogram

	// SearchVisited counts vertices discovered per search.
	SearchVisited prometheus.Histogram

	// SearchesTotal counts searches by result (found, unreachable, error).
	SearchesTotal *prometheus.CounterVec
}

// New creates the instruments on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		BuildSeconds: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_build_seconds",
			Help:      "Duration of the last word graph build in seconds",
		}),
		Vertices: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_vertices",
			Help:      "Number of words in the graph",
		}),
		Edges: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Number of one-letter links in the graph",
		}),
		SearchSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_seconds",
			Help:      "Shortest-path search duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
		SearchVisited: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_visited",
			Help:      "Vertices discovered per search",
			Buckets:   []float64{1, 10, 50, 100, 500, 1000, 5000},
		}),
		SearchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Searches by result",
		}, []string{"result"}),
	}
}

// ObserveBuild records a finished graph build.
func (m *Metrics) ObserveBuild(d time.Duration, vertices, edges int) {
	m.BuildSeconds.Set(d.Seconds())
	m.Vertices.Set(float64(vertices))
	m.Edges.Set(float64(edges))
}

// ObserveSearch records one search. visited is ignored for ResultError.
func (m *Metrics) ObserveSearch(d time.Duration, visited int, result string) {
	m.SearchesTotal.WithLabelValues(result).Inc()
	if result == ResultError {
		return
	}
	m.SearchSeconds.Observe(d.Seconds())
	m.SearchVisited.Observe(float64(visited))
}

// WriteTextfile atomically writes the registry to path in Prometheus text
// format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
