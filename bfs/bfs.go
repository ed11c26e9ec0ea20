package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/weaver/core"
)

// noTarget disables early termination.
const noTarget = -1

// walker encapsulates the mutable state of one search. Nothing in it is
// shared with other searches, so concurrent calls over one graph are safe.
type walker struct {
	graph  *core.Graph
	opts   BFSOptions
	ctx    context.Context
	queue  []int
	head   int
	depth  []int
	parent []int
	order  []int
	target int
	found  bool
}

// BFS runs a full breadth-first traversal of g from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrVertexOutOfRange for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any user-supplied hook error.
// On a hook or context error the partial result is returned with the error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	w, err := newWalker(g, start, noTarget, opts)
	if err != nil {
		return nil, err
	}
	w.order = make([]int, 0, g.Order())

	w.enqueue(start, 0, start)
	err = w.loop()

	return &BFSResult{
		Start:  start,
		Order:  w.order,
		Depth:  w.depth,
		Parent: w.parent,
	}, err
}

// ShortestPath searches g from start and stops the moment end is
// discovered. Under unweighted BFS the first discovery is along a shortest
// path, so the result's Path() is minimal by edge count. Among several
// shortest paths the one found first in adjacency order wins.
//
// An unreachable end is not an error: the result has Found == false.
// start == end returns Found with the single-vertex path and no traversal.
//
// Errors mirror BFS; on error no result is returned.
func ShortestPath(g *core.Graph, start, end int, opts ...Option) (*PathResult, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(end) {
		return nil, fmt.Errorf("%w: end %d not in [0,%d)", ErrVertexOutOfRange, end, g.Order())
	}

	w.enqueue(start, 0, start)
	if start == end {
		w.found = true
	} else if err = w.loop(); err != nil {
		return nil, err
	}

	res := &PathResult{
		Start:   start,
		End:     end,
		Found:   w.found,
		Hops:    unvisited,
		Visited: len(w.queue),
		Parent:  w.parent,
	}
	if w.found {
		res.Hops = w.depth[end]
	}
	return res, nil
}

// newWalker validates input, resolves options and allocates per-search state.
func newWalker(g *core.Graph, start, target int, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %d not in [0,%d)", ErrVertexOutOfRange, start, g.Order())
	}

	n := g.Order()
	w := &walker{
		graph:  g,
		opts:   o,
		ctx:    o.Ctx,
		queue:  make([]int, 0, n),
		depth:  make([]int, n),
		parent: make([]int, n),
		target: target,
	}
	for v := 0; v < n; v++ {
		w.depth[v] = unvisited
		w.parent[v] = unvisited
	}
	return w, nil
}

// enqueue marks v discovered at depth d, records its parent, calls
// OnEnqueue and appends it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.depth[v] = d
	w.parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, target found, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.dequeue()
		if err := w.visit(v); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(v); err != nil {
			return err
		}
		if w.found {
			return nil
		}
	}
	return nil
}

// dequeue pops the front vertex and invokes OnDequeue. The queue slice is
// not resliced, so Visited can be read from its length afterwards.
func (w *walker) dequeue() int {
	v := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(v, w.depth[v])
	return v
}

// visit records the vertex in Order (full traversals only) and calls OnVisit.
func (w *walker) visit(v int) error {
	if w.order != nil {
		w.order = append(w.order, v)
	}
	if err := w.opts.OnVisit(v, w.depth[v]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
	}
	return nil
}

// enqueueNeighbors scans v's adjacency list in order, applies filtering
// and MaxDepth, and enqueues each undiscovered neighbour. Discovering the
// target sets found and stops the scan.
func (w *walker) enqueueNeighbors(v int) error {
	neighbors, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, v, err)
	}
	nextDepth := w.depth[v] + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if w.depth[nbr] != unvisited {
			continue
		}
		if !w.opts.FilterNeighbor(v, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, v)
		if nbr == w.target {
			w.found = true
			return nil
		}
	}
	return nil
}
