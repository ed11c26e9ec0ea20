package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/weaver/internal/metrics"
)

func TestObserveBuild(t *testing.T) {
	m := metrics.New()
	m.ObserveBuild(250*time.Millisecond, 1773, 4200)

	assert.Equal(t, 0.25, testutil.ToFloat64(m.BuildSeconds))
	assert.Equal(t, 1773.0, testutil.ToFloat64(m.Vertices))
	assert.Equal(t, 4200.0, testutil.ToFloat64(m.Edges))
}

func TestObserveSearch(t *testing.T) {
	m := metrics.New()
	m.ObserveSearch(time.Millisecond, 40, metrics.ResultFound)
	m.ObserveSearch(time.Millisecond, 2, metrics.ResultUnreachable)
	m.ObserveSearch(time.Millisecond, 9, metrics.ResultFound)
	m.ObserveSearch(0, 0, metrics.ResultError)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues(metrics.ResultFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues(metrics.ResultUnreachable)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues(metrics.ResultError)))

	// errors do not feed the histograms
	assert.Equal(t, 1, testutil.CollectAndCount(m.SearchSeconds))
	expected := `
# HELP weaver_search_visited Vertices discovered per search
# TYPE weaver_search_visited histogram
weaver_search_visited_bucket{le="1"} 0
weaver_search_visited_bucket{le="10"} 2
weaver_search_visited_bucket{le="50"} 3
weaver_search_visited_bucket{le="100"} 3
weaver_search_visited_bucket{le="500"} 3
weaver_search_visited_bucket{le="1000"} 3
weaver_search_visited_bucket{le="5000"} 3
weaver_search_visited_bucket{le="+Inf"} 3
weaver_search_visited_sum 51
weaver_search_visited_count 3
`
	require.NoError(t, testutil.CollectAndCompare(m.SearchVisited, strings.NewReader(expected)))
}

func TestRegistriesAreIsolated(t *testing.T) {
	a, b := metrics.New(), metrics.New()
	a.ObserveSearch(time.Millisecond, 1, metrics.ResultFound)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.SearchesTotal.WithLabelValues(metrics.ResultFound)))
}

func TestWriteTextfile(t *testing.T) {
	m := metrics.New()
	m.ObserveBuild(time.Second, 5, 4)
	m.ObserveSearch(time.Millisecond, 5, metrics.ResultFound)

	path := filepath.Join(t.TempDir(), "weaver.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "weaver_graph_vertices 5")
	assert.Contains(t, string(data), `weaver_searches_total{result="found"} 1`)
}
