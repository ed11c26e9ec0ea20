// Package bfs provides breadth-first search over a frozen core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - BFS explores every vertex reachable from a start index, in
//     non-decreasing distance (edge count), and returns a BFSResult:
//   - Order: visit sequence
//   - Depth: index → distance from start, -1 if unreached
//   - Parent: index → predecessor in the BFS tree, -1 if unreached
//   - ShortestPath stops the moment the target is discovered and returns a
//     PathResult whose Path() is the fewest-hop route, or Found == false
//     when the target is unreachable. "No path" is a result, not an error.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a vertex is discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Predecessor array
//
//	Parent is a dense []int sized to the graph. The start vertex is its own
//	parent, which terminates path reconstruction and makes start == end a
//	one-element path with zero hops.
//
// Determinism
//
//	Neighbors are scanned in adjacency-list order, which the builder fixes
//	by ascending index. Among several shortest paths the one discovered
//	first in that order is returned, and repeated runs return the same path.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E) worst case; ShortestPath often far less
//   - Memory: O(V) for queue, Depth and Parent
//
// Usage
//
//	res, err := bfs.ShortestPath(g, start, end, bfs.WithContext(ctx))
//	if err != nil {
//	    // ErrGraphNil, ErrVertexOutOfRange, ErrOptionViolation, ctx.Err()
//	}
//	if !res.Found {
//	    // end is unreachable from start
//	}
//	path := res.Path() // [start ... end]
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrVertexOutOfRange  if start or end is not in [0, g.Order()).
//   - ErrOptionViolation   if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors         if the graph fails to list a vertex's neighbors.
//   - Wrapped user-supplied hook errors from OnVisit.
//   - The context error on cancellation.
//
// Concurrency
//
//	All search state lives in a per-call walker, so any number of searches
//	may run concurrently over one frozen graph.
package bfs
