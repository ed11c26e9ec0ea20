// Package builder turns a dictionary.Dictionary into the one-letter-difference
// core.Graph that the bfs and dfs packages traverse.
//
// What
//
//   - OneLetterApart(a, b):   true iff a and b have equal length and differ in
//     exactly one position (Hamming distance 1).
//   - HammingDistance(a, b):  full mismatch count for equal-length words.
//   - Build(dict, opts...):   examines every unordered pair (i, j), i < j, and
//     records an undirected edge for each one-letter pair. Every index is a
//     vertex, isolated words included. The result is frozen.
//   - RandomWords(n, L, Σ):   seeded synthetic word lists for tests and
//     benchmarks.
//
// Edge order
//
//	Pairs are visited with i ascending and, for each i, j ascending. When (i, j)
//	qualifies, j is appended to i's list and i to j's list at that moment.
//	Breadth-first search scans neighbours in this order, so it decides which
//	of several equally short ladders is returned. WithWorkers parallelises the
//	scan but merges rows in the same order, so the graph is identical for any
//	worker count.
//
// Options
//
//   - WithContext(ctx):    cancellation, checked once per row.
//   - WithWorkers(n):      scan rows on n goroutines (n ≥ 1, default 1).
//   - WithProgress(fn):    fn(done, total) after each row is merged.
//   - WithSeed / WithRand: RNG for RandomWords.
//
// Option constructors panic on meaningless values (WithWorkers(0),
// WithRand(nil), WithProgress(nil)); Build itself never panics.
//
// Complexity (N = words, L = word length)
//
//   - Time:   O(N²·L) comparisons, early exit on the second mismatch.
//   - Memory: O(N + E) for the graph; the parallel scan holds per-row match
//     lists until merge, also O(E).
//
// Errors
//
//   - ErrDictionaryNil      dict == nil.
//   - ErrBadSize            RandomWords with n < 0 or L < 1.
//   - ErrNeedRandSource     RandomWords without WithSeed/WithRand.
//   - ErrConstructFailed    RandomWords asked for more words than Σ^L allows.
//   - ErrOptionViolation    RandomWords alphabet not made of distinct a-z.
//   - context errors        wrapped with "Build: ".
package builder
