package solver

import (
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/weaver/internal/logging"
	"github.com/katalvlaran/weaver/internal/metrics"
)

// Option customizes a Solver.
type Option func(*config)

type config struct {
	workers  int
	timeout  time.Duration
	maxDepth int
	metrics  *metrics.Metrics
	progress func(done, total int)
	logger   zerolog.Logger
}

func defaultConfig() config {
	return config{
		workers: runtime.GOMAXPROCS(0),
		metrics: metrics.New(),
		logger:  logging.GetLogger("solver"),
	}
}

// WithWorkers sets the graph build parallelism. n <= 0 keeps GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithTimeout bounds every Solve and Reach call. 0 disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithMaxDepth gives up on ladders longer than n steps. 0 means unlimited.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithMetrics records build and search metrics into m instead of a private
// set.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *config) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithProgress forwards graph build progress, one call per scanned word.
func WithProgress(fn func(done, total int)) Option {
	return func(c *config) {
		c.progress = fn
	}
}

// WithLogger replaces the component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
