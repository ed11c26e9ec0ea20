package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced an index outside [0, Order()).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrFrozen indicates a mutation was attempted after Freeze.
	ErrFrozen = errors.New("core: graph is frozen")

	// ErrAsymmetric indicates an edge u→v exists without its mirror v→u.
	ErrAsymmetric = errors.New("core: adjacency is not symmetric")
)

// Graph is an undirected, unweighted adjacency-list graph over dense
// integer vertices.
//
// adj[v] lists the neighbours of v in insertion order. edges counts
// undirected edges (each stored twice in adj). Once frozen is set the
// Graph is immutable.
type Graph struct {
	adj    [][]int
	edges  int
	frozen bool
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *graphConfig)

// graphConfig holds construction-time knobs only.
type graphConfig struct {
	degreeHint int
}

// WithDegreeHint preallocates every adjacency list with capacity d.
// Values < 0 are ignored.
func WithDegreeHint(d int) GraphOption {
	return func(c *graphConfig) {
		if d > 0 {
			c.degreeHint = d
		}
	}
}

// NewGraph creates a Graph with n isolated vertices 0..n-1.
// A negative n is treated as 0.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{adj: make([][]int, n)}
	if cfg.degreeHint > 0 {
		for v := range g.adj {
			g.adj[v] = make([]int, 0, cfg.degreeHint)
		}
	}

	return g
}
