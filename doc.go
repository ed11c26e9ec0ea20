// Package weaver solves Weaver word ladders: given two words of equal length,
// find the shortest chain of dictionary words between them in which each step
// changes exactly one letter.
//
// The module is organised as small flat packages around one index graph:
//
//	dictionary/ - embedded word list, file loading, word ↔ index lookup
//	core/       - frozen index adjacency graph ([][]int), safe for concurrent reads
//	builder/    - one-letter-difference graph construction (sequential or parallel)
//	bfs/        - breadth-first search with predecessor-array path reconstruction
//	dfs/        - iterative depth-first search and connected components
//	solver/     - text boundary: normalise, validate, search, map indices to words
//
// Ambient concerns live under internal/ (logging, errors, config, metrics, ui,
// cli) and the executable under cmd/weaver.
//
// Quick example:
//
//	s, err := solver.New(ctx, dictionary.Default())
//	if err != nil {
//		return err
//	}
//	sol, err := s.Solve(ctx, "cold", "warm")
//	if err != nil {
//		return err
//	}
//	fmt.Println(strings.Join(sol.Words, " -> "))
package weaver
