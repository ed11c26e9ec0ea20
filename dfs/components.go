package dfs

import (
	"slices"

	"github.com/katalvlaran/weaver/core"
)

// Partition labels every vertex of a graph with its connected component.
// Component IDs are dense, 0..Count()-1, numbered in order of each
// component's smallest vertex index.
//
// Two words are connected by some ladder exactly when Same reports true,
// which lets callers reject a search before running it.
type Partition struct {
	of      []int
	members [][]int
}

// Components partitions g into connected components with a single
// full-forest DFS. Only WithContext is meaningful among opts; traversal
// hooks and limits are overridden.
// Complexity: O(V + E).
func Components(g *core.Graph, opts ...Option) (*Partition, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// pre-order places every parent before its children and roots in
	// ascending index order
	pre := make([]int, 0, g.Order())
	all := append(append([]Option(nil), opts...),
		WithFullTraversal(),
		WithMaxDepth(-1),
		WithFilterNeighbor(nil),
		WithOnExit(nil),
		WithOnVisit(func(v int) error {
			pre = append(pre, v)
			return nil
		}),
	)
	res, err := DFS(g, 0, all...)
	if err != nil {
		return nil, err
	}

	p := &Partition{of: make([]int, g.Order())}
	for _, v := range pre {
		var id int
		if parent := res.Parent[v]; parent == v {
			id = len(p.members)
			p.members = append(p.members, nil)
		} else {
			id = p.of[parent]
		}
		p.of[v] = id
		p.members[id] = append(p.members[id], v)
	}
	for _, m := range p.members {
		slices.Sort(m)
	}

	return p, nil
}

// Of returns the component ID of v, or -1 if v is out of range.
func (p *Partition) Of(v int) int {
	if v < 0 || v >= len(p.of) {
		return -1
	}
	return p.of[v]
}

// Count returns the number of components.
func (p *Partition) Count() int { return len(p.members) }

// Same reports whether u and v lie in one component.
func (p *Partition) Same(u, v int) bool {
	cu := p.Of(u)
	return cu >= 0 && cu == p.Of(v)
}

// Members returns the vertices of component id in ascending order, or nil
// for an unknown id. The slice is a copy.
func (p *Partition) Members(id int) []int {
	if id < 0 || id >= len(p.members) {
		return nil
	}
	return append([]int(nil), p.members[id]...)
}

// Sizes returns the size of every component, indexed by component ID.
func (p *Partition) Sizes() []int {
	out := make([]int, len(p.members))
	for id, m := range p.members {
		out[id] = len(m)
	}
	return out
}

// Largest returns the ID and size of the biggest component; ties go to the
// lower ID. An empty graph yields (-1, 0).
func (p *Partition) Largest() (id, size int) {
	id = -1
	for i, m := range p.members {
		if len(m) > size {
			id, size = i, len(m)
		}
	}
	return id, size
}

// Isolated returns, in ascending order (component IDs follow each
// component's smallest vertex), every vertex that is alone in its
// component: words with no one-letter neighbor.
func (p *Partition) Isolated() []int {
	var out []int
	for _, m := range p.members {
		if len(m) == 1 {
			out = append(out, m[0])
		}
	}
	return out
}
