package dfs

import (
	"fmt"

	"github.com/katalvlaran/weaver/core"
)

// frame is one entry of the explicit DFS stack: the vertex and the position
// of the next neighbor to examine.
type frame struct {
	v    int
	next int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	opts    DFSOptions
	res     *DFSResult
	stack   []frame
	skipped int
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from start.
// The traversal is iterative, so deep word chains cannot overflow the
// goroutine stack. Neighbors are explored in adjacency order.
// Returns the partial DFSResult alongside any context or hook error.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.Order()
	res := &DFSResult{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v] = unvisited
		res.Parent[v] = unvisited
	}

	w := &dfsWalker{graph: g, opts: dopts, res: res}

	var err error
	if dopts.FullTraversal {
		for v := 0; v < n && err == nil; v++ {
			if res.Depth[v] == unvisited {
				err = w.traverse(v)
			}
		}
	} else {
		err = w.traverse(start)
	}
	res.SkippedNeighbors = w.skipped

	return res, err
}

// traverse explores the tree rooted at root.
func (w *dfsWalker) traverse(root int) error {
	w.stack = w.stack[:0]
	if err := w.discover(root, root, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		nbs, err := w.graph.Neighbors(top.v)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%d): %w", top.v, err)
		}

		depth := w.res.Depth[top.v]
		descend := w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth

		pushed := false
		for descend && top.next < len(nbs) {
			nid := nbs[top.next]
			top.next++
			if w.res.Depth[nid] != unvisited {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.skipped++
				continue
			}
			// top is invalidated by the append inside discover
			if err = w.discover(nid, top.v, depth+1); err != nil {
				return err
			}
			pushed = true
			break
		}
		if pushed {
			continue
		}

		// all neighbors done: post-order
		v := top.v
		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err = w.opts.OnExit(v); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
			}
		}
		w.res.Order = append(w.res.Order, v)
	}

	return nil
}

// discover marks v reached from parent at depth, runs the pre-order hook
// and pushes v onto the stack.
func (w *dfsWalker) discover(v, parent, depth int) error {
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}
	w.stack = append(w.stack, frame{v: v})

	return nil
}
