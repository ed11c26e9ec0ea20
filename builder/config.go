// SPDX-License-Identifier: MIT
// Package: weaver/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • ctx      = context.Background()
//   • workers  = 1              (sequential scan)
//   • progress = no-op
//   • rng      = nil            (RandomWords requires WithSeed/WithRand)

package builder

import (
	"context"
	"math/rand"
)

// defaultWorkers keeps Build single-threaded unless asked otherwise.
const defaultWorkers = 1

// builderConfig aggregates all knobs used by Build and RandomWords.
// It is passed by value.
type builderConfig struct {
	ctx      context.Context
	workers  int
	progress func(done, total int)
	rng      *rand.Rand
}

// newBuilderConfig applies opts over the defaults, last one wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		ctx:      context.Background(),
		workers:  defaultWorkers,
		progress: func(int, int) {},
		rng:      nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
