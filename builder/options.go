// SPDX-License-Identifier: MIT
// Package: weaver/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"context"
	"math/rand"
)

// BuilderOption customizes Build or RandomWords by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithContext sets the context checked once per scanned row.
// A nil ctx is ignored.
func WithContext(ctx context.Context) BuilderOption {
	return func(c *builderConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithWorkers scans rows on n goroutines. The resulting graph is identical
// to the sequential one. Panics if n < 1.
func WithWorkers(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithWorkers(n<1)")
	}
	return func(c *builderConfig) {
		c.workers = n
	}
}

// WithProgress registers fn(done, total), called on the building goroutine
// after each row's edges are added. Panics on nil.
func WithProgress(fn func(done, total int)) BuilderOption {
	if fn == nil {
		panic("builder: WithProgress(nil)")
	}
	return func(c *builderConfig) {
		c.progress = fn
	}
}

// WithRand provides an explicit RNG for RandomWords. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
