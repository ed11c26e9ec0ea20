// File: methods.go
// Role: mutation (AddEdge, Freeze) and read-only queries on Graph.
// Determinism:
//   - Neighbors(v) preserves AddEdge call order.
//   - Edges() walks u ascending, then u's adjacency order.
// Concurrency:
//   - AddEdge/Freeze are single-writer.
//   - All other methods are lock-free reads, safe after Freeze.

package core

import "fmt"

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of undirected edges.
func (g *Graph) Size() int { return g.edges }

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool { return g.frozen }

// HasVertex reports whether v is a valid vertex index.
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < len(g.adj)
}

// AddEdge records the undirected edge u–v by appending v to u's adjacency
// list and u to v's.
//
// Duplicate detection is left to the caller: the builder examines every
// unordered pair exactly once, so a membership scan here would only add
// O(d) per call.
//
// Errors:
//   - ErrFrozen:         after Freeze.
//   - ErrVertexNotFound: u or v outside [0, Order()).
//   - ErrLoopNotAllowed: u == v.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if g.frozen {
		return ErrFrozen
	}
	if !g.HasVertex(u) {
		return fmt.Errorf("AddEdge(%d,%d): from: %w", u, v, ErrVertexNotFound)
	}
	if !g.HasVertex(v) {
		return fmt.Errorf("AddEdge(%d,%d): to: %w", u, v, ErrVertexNotFound)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges++

	return nil
}

// Freeze marks the graph read-only and returns it for chaining.
// Freezing twice is a no-op.
func (g *Graph) Freeze() *Graph {
	g.frozen = true
	return g
}

// Neighbors returns the adjacency list of v in insertion order.
//
// The returned slice shares storage with the graph; it is capped so that an
// append by the caller reallocates instead of overwriting a neighbour, but
// its elements must be treated as read-only.
//
// Complexity: O(1).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexNotFound)
	}
	nbrs := g.adj[v]

	return nbrs[:len(nbrs):len(nbrs)], nil
}

// Degree returns the number of neighbours of v.
func (g *Graph) Degree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexNotFound)
	}
	return len(g.adj[v]), nil
}

// HasEdge reports whether u–v is an edge. Out-of-range indices yield false.
// Complexity: O(min(deg u, deg v)).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	// scan the shorter list
	a, b := u, v
	if len(g.adj[a]) > len(g.adj[b]) {
		a, b = b, a
	}
	for _, w := range g.adj[a] {
		if w == b {
			return true
		}
	}
	return false
}

// Edges returns every undirected edge once as a pair {u, v} with u < v,
// ordered by u ascending and then by u's adjacency order.
// Complexity: O(V+E).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.edges)
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	return out
}

// AdjacencyList returns a deep copy of the adjacency lists.
// Complexity: O(V+E).
func (g *Graph) AdjacencyList() [][]int {
	out := make([][]int, len(g.adj))
	for v, nbrs := range g.adj {
		out[v] = append([]int(nil), nbrs...)
	}
	return out
}

// Validate checks the structural invariants: no self-loops and every u→v
// has a mirror v→u with matching multiplicity.
// Complexity: O(Σ deg(v)²) in the worst case; cheap for word graphs.
func (g *Graph) Validate() error {
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if v == u {
				return fmt.Errorf("Validate: vertex %d: %w", u, ErrLoopNotAllowed)
			}
			if !g.HasVertex(v) {
				return fmt.Errorf("Validate: %d→%d: %w", u, v, ErrVertexNotFound)
			}
			if count(g.adj[u], v) != count(g.adj[v], u) {
				return fmt.Errorf("Validate: %d→%d: %w", u, v, ErrAsymmetric)
			}
		}
	}
	return nil
}

// count returns the number of occurrences of x in s.
func count(s []int, x int) int {
	n := 0
	for _, y := range s {
		if y == x {
			n++
		}
	}
	return n
}
