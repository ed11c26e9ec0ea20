// Package dfs implements iterative depth-first search (single-source and
// forest) on core.Graph, and connected-component partitioning built on it.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//   - Components(g): dense component IDs with Same, Members, Sizes, Largest, Isolated
//
// A word ladder exists between two words exactly when they share a
// component, so a Partition answers reachability for every pair after one
// O(V+E) pass.
//
// Complexity:
//
//   - Time:   O(V + E), plus overhead of hooks and filters.
//   - Memory: O(V) for the explicit stack and result slices.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is out of range (single-source mode).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
