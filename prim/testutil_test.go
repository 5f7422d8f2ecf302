package prim_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/graph"
)

// uedge is an undirected edge used to build fixtures and oracles.
type uedge struct {
	u, v int
	w    int64
}

// buildUndirected returns an adjacency list with every uedge mirrored.
func buildUndirected(t testing.TB, n int, edges []uedge) *graph.AdjacencyList {
	t.Helper()
	g, err := graph.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddUndirectedEdge(e.u, e.v, e.w))
	}

	return g
}

// fiveVertex is the reference graph with known MST {0-1, 1-2, 1-4, 0-3}, weight 16.
func fiveVertex() []uedge {
	return []uedge{
		{0, 1, 2}, {0, 3, 6}, {1, 2, 3}, {1, 3, 8}, {1, 4, 5}, {2, 4, 7}, {3, 4, 9},
	}
}

// randomConnected builds a connected graph: a random-weight chain plus extra random edges.
func randomConnected(r *rand.Rand, n, extra int, maxW int64) []uedge {
	edges := make([]uedge, 0, n-1+extra)
	for i := 1; i < n; i++ {
		edges = append(edges, uedge{r.Intn(i), i, 1 + r.Int63n(maxW)})
	}
	for i := 0; i < extra; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		edges = append(edges, uedge{u, v, 1 + r.Int63n(maxW)})
	}

	return edges
}

// bruteForceMST enumerates every (n-1)-edge subset and returns the lightest one that
// spans all n vertices. Only usable for tiny edge sets.
func bruteForceMST(n int, edges []uedge) (int64, bool) {
	best, found := int64(0), false
	m := len(edges)
	for mask := 0; mask < 1<<m; mask++ {
		if popcount(mask) != n-1 {
			continue
		}
		parent := make([]int, n)
		for i := range parent {
			parent[i] = i
		}
		var find func(int) int
		find = func(x int) int {
			for parent[x] != x {
				x = parent[x]
			}
			return x
		}
		var total int64
		acyclic := true
		for i := 0; i < m && acyclic; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			a, b := find(edges[i].u), find(edges[i].v)
			if a == b {
				acyclic = false
				break
			}
			parent[a] = b
			total += edges[i].w
		}
		// n-1 acyclic edges over n vertices always span.
		if acyclic && (!found || total < best) {
			best, found = total, true
		}
	}

	return best, found
}

func popcount(x int) int {
	c := 0
	for ; x != 0; x &= x - 1 {
		c++
	}

	return c
}

// kruskalWeight is a union-find MST oracle for graphs too large to brute-force.
func kruskalWeight(n int, edges []uedge) (int64, int) {
	sorted := append([]uedge(nil), edges...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].w < sorted[j].w })

	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	var total int64
	count := 0
	for _, e := range sorted {
		ru, rv := find(e.u), find(e.v)
		if ru == rv {
			continue
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		total += e.w
		count++
	}

	return total, count
}
