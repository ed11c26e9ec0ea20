package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/weaver/bfs"
	"github.com/katalvlaran/weaver/core"
)

// chain builds 0–1–…–(n-1).
func chain(n int) *core.Graph {
	g := core.NewGraph(n)
	for i := 0; i+1 < n; i++ {
		_ = g.AddEdge(i, i+1)
	}
	return g.Freeze()
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := bfs.ShortestPath(nil, 0, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start out of range
	g := core.NewGraph(2)
	for _, start := range []int{-1, 2} {
		if _, err := bfs.BFS(g, start); !errors.Is(err, bfs.ErrVertexOutOfRange) {
			t.Errorf("start %d: want ErrVertexOutOfRange, got %v", start, err)
		}
	}
	// end out of range
	if _, err := bfs.ShortestPath(g, 0, 5); !errors.Is(err, bfs.ErrVertexOutOfRange) {
		t.Errorf("end 5: want ErrVertexOutOfRange, got %v", err)
	}
	// empty graph has no vertex 0
	if _, err := bfs.ShortestPath(core.NewGraph(0), 0, 0); !errors.Is(err, bfs.ErrVertexOutOfRange) {
		t.Errorf("empty graph: want ErrVertexOutOfRange, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	res, err := bfs.BFS(core.NewGraph(1), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[0]; d != 0 {
		t.Errorf("Depth[0] = %d; want 0", d)
	}
	if p := res.Parent[0]; p != 0 {
		t.Errorf("Parent[0] = %d; want self", p)
	}
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// 0–1–2–3–0 cycle
	g := core.NewGraph(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(3, 0)

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 2, 1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph(4)
	_ = g.AddEdge(0, 1) // component 1
	_ = g.AddEdge(2, 3) // component 2

	res, _ := bfs.BFS(g, 0)
	if !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("From 0: got %v; want [0 1]", res.Order)
	}
	if res.Reached(2) || res.Depth[3] != -1 || res.Parent[3] != -1 {
		t.Errorf("other component must stay unvisited: depth=%v parent=%v", res.Depth, res.Parent)
	}
	if _, ok := res.PathTo(3); ok {
		t.Errorf("PathTo unreachable: want ok=false")
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(3)
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("MaxDepth=1: got %v; want [0 1]", res.Order)
	}
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=0: got %v; want [0 1 2]", res.Order)
	}
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=10: got %v; want [0 1 2]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := chain(3)
	res, _ := bfs.BFS(g, 0,
		bfs.WithFilterNeighbor(func(curr, nbr int) bool {
			return !(curr == 1 && nbr == 2)
		}),
	)
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := chain(3)

	var enq, deq, vis []string
	makeEntry := func(prefix string, v, d int) string {
		return prefix + ":" + strconv.Itoa(v) + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS(
		g, 0,
		bfs.WithOnEnqueue(func(v, d int) { enq = append(enq, makeEntry("e", v, d)) }),
		bfs.WithOnDequeue(func(v, d int) { deq = append(deq, makeEntry("d", v, d)) }),
		bfs.WithOnVisit(func(v, d int) error { vis = append(vis, makeEntry("v", v, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	wantDepths := []string{"0@0", "1@1", "2@2"}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

// TestBFS_OnVisitError stops the traversal and wraps the hook error.
func TestBFS_OnVisitError(t *testing.T) {
	stop := errors.New("stop")
	res, err := bfs.BFS(chain(5), 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped hook error, got %v", err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("partial Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_PathTo covers both trivial (start→start) and reachable targets.
func TestBFS_PathTo(t *testing.T) {
	res, _ := bfs.BFS(chain(4), 0)
	if path, ok := res.PathTo(0); !ok || !reflect.DeepEqual(path, []int{0}) {
		t.Errorf("PathTo start: got %v,%v; want [0],true", path, ok)
	}
	if path, ok := res.PathTo(3); !ok || !reflect.DeepEqual(path, []int{0, 1, 2, 3}) {
		t.Errorf("PathTo 3: got %v,%v; want [0 1 2 3],true", path, ok)
	}
	if _, ok := res.PathTo(7); ok {
		t.Errorf("PathTo out of range: want ok=false")
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := chain(100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("BFS: want context.Canceled, got %v", err)
	}
	if res, err := bfs.ShortestPath(g, 0, 99, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) || res != nil {
		t.Errorf("ShortestPath: want nil, context.Canceled; got %v, %v", res, err)
	}
}

// TestBFS_ConcurrentSafety ensures concurrent searches on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := chain(64)
	const runs = 16
	errs := make(chan error, runs)
	for i := 0; i < runs; i++ {
		go func(end int) {
			res, err := bfs.ShortestPath(g, 0, end)
			if err == nil && res.Hops != end {
				err = errors.New("wrong hop count " + strconv.Itoa(res.Hops))
			}
			errs <- err
		}(i * 4)
	}
	for i := 0; i < runs; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
