// SPDX-License-Identifier: MIT
// Package: weaver/builder
//
// api.go - Build, the single entry point from dictionary to graph.
//
// Design contract:
//   - Pure function of the dictionary: same words in the same order give the
//     same graph, including adjacency order, for any option set.
//   - Every dictionary index becomes a vertex.
//   - The returned graph is frozen; on error no graph is returned.

package builder

import (
	"fmt"

	"github.com/katalvlaran/weaver/core"
	"github.com/katalvlaran/weaver/dictionary"
	"golang.org/x/sync/errgroup"
)

const methodBuild = "Build"

// Build constructs the one-letter-difference graph over dict.
//
// Steps:
//  1. Resolve options.
//  2. Allocate N isolated vertices.
//  3. Scan pairs (sequentially, or by rows on WithWorkers goroutines).
//  4. Freeze and return.
//
// An empty dictionary yields an empty graph and no error.
//
// Errors: ErrDictionaryNil, or the context error wrapped as "Build: ...".
func Build(dict *dictionary.Dictionary, opts ...BuilderOption) (*core.Graph, error) {
	if dict == nil {
		return nil, ErrDictionaryNil
	}
	cfg := newBuilderConfig(opts...)

	words := dict.Words()
	g := core.NewGraph(len(words))

	var err error
	if cfg.workers > 1 && len(words) > 1 {
		err = scanParallel(cfg, words, g)
	} else {
		err = scanSequential(cfg, words, g)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	return g.Freeze(), nil
}

// scanSequential is the reference pair loop: i ascending, j > i ascending.
func scanSequential(cfg builderConfig, words []string, g *core.Graph) error {
	n := len(words)
	for i := 0; i < n; i++ {
		if err := cfg.ctx.Err(); err != nil {
			return err
		}
		for j := i + 1; j < n; j++ {
			if !OneLetterApart(words[i], words[j]) {
				continue
			}
			if err := g.AddEdge(i, j); err != nil {
				return err
			}
		}
		cfg.progress(i+1, n)
	}
	return nil
}

// scanParallel hands rows to cfg.workers goroutines, each recording the
// ascending j > i matches of its rows, then merges rows in ascending i so
// the AddEdge sequence equals scanSequential's.
func scanParallel(cfg builderConfig, words []string, g *core.Graph) error {
	n := len(words)
	matches := make([][]int, n)

	eg, ctx := errgroup.WithContext(cfg.ctx)
	rows := make(chan int)

	eg.Go(func() error {
		defer close(rows)
		for i := 0; i < n; i++ {
			select {
			case rows <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < cfg.workers; w++ {
		eg.Go(func() error {
			for i := range rows {
				if err := ctx.Err(); err != nil {
					return err
				}
				matches[i] = scanRow(words, i)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	// errgroup cancels its derived ctx on Wait; re-check the caller's.
	if err := cfg.ctx.Err(); err != nil {
		return err
	}

	for i, row := range matches {
		for _, j := range row {
			if err := g.AddEdge(i, j); err != nil {
				return err
			}
		}
		cfg.progress(i+1, n)
	}
	return nil
}

// scanRow returns every j > i with OneLetterApart(words[i], words[j]).
func scanRow(words []string, i int) []int {
	var row []int
	for j := i + 1; j < len(words); j++ {
		if OneLetterApart(words[i], words[j]) {
			row = append(row, j)
		}
	}
	return row
}
