// Package core provides the index-based adjacency Graph shared by the
// builder, bfs and dfs packages.
//
// Vertices are dense integers 0..Order()-1, mirroring the positions of words
// in a dictionary.Dictionary. Every vertex owns an adjacency list ([]int) whose
// order is exactly the order in which AddEdge was called; traversals rely on
// that order for deterministic tie-breaking.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected only: AddEdge(u,v) appends v to u's list and u to v's list.
//   - Unweighted only: one-letter substitutions all cost one hop.
//   - No self-loops: AddEdge(v,v) → ErrLoopNotAllowed.
//   - Fixed vertex set: Order() is chosen at NewGraph and never changes.
//
// Lifecycle:
//
//	g := core.NewGraph(n)    // n isolated vertices, mutable
//	g.AddEdge(0, 1)          // O(1) amortized
//	g.Freeze()               // read-only from here on
//	nbrs, _ := g.Neighbors(0)
//
// Concurrency:
//
//	A Graph is NOT safe for concurrent mutation. Once Freeze returns, every
//	read method is safe for any number of concurrent goroutines without
//	locking, and AddEdge fails with ErrFrozen.
//
// Core Methods:
//
//	Order() int                       // O(1) vertex count
//	Size() int                        // O(1) undirected edge count
//	HasVertex(v int) bool             // O(1)
//	AddEdge(u, v int) error           // O(1) amortized
//	HasEdge(u, v int) bool            // O(min(deg u, deg v))
//	Neighbors(v int) ([]int, error)   // O(1), shared read-only slice
//	Degree(v int) (int, error)        // O(1)
//	Edges() [][2]int                  // O(V+E), pairs with u < v
//	AdjacencyList() [][]int           // O(V+E), deep copy
//	Validate() error                  // O(V·d²), symmetry and loop check
//
// Errors:
//
//	ErrVertexNotFound  - vertex index outside [0, Order()).
//	ErrLoopNotAllowed  - AddEdge(v, v).
//	ErrFrozen          - mutation after Freeze.
//	ErrAsymmetric      - Validate found u→v without v→u.
package core
