package dfs_test

import (
	"testing"

	"github.com/katalvlaran/weaver/builder"
	"github.com/katalvlaran/weaver/dfs"
	"github.com/katalvlaran/weaver/dictionary"
)

// BenchmarkDFS_Chain10000 measures DFS on a linear chain graph of 10,000 vertices.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(10000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkComponents_Default partitions the embedded dictionary graph.
func BenchmarkComponents_Default(b *testing.B) {
	g, err := builder.Build(dictionary.Default())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Components(g)
	}
}
