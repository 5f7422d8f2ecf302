package graph

import (
	"fmt"
	"strings"
)

// New creates a graph with n isolated vertices 0..n-1.
func New(n int) (*AdjacencyList, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, n)
	}

	return &AdjacencyList{adj: make([][]Edge, n)}, nil
}

// VertexCount returns the number of vertices. A nil graph has none.
func (g *AdjacencyList) VertexCount() int {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of directed edges; an undirected edge counts twice.
func (g *AdjacencyList) EdgeCount() int {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// AddEdge appends the directed edge from → to with weight w to from's list.
// Parallel edges and self-loops are kept as given.
func (g *AdjacencyList) AddEdge(from, to int, w int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.check(from, to, w); err != nil {
		return err
	}
	g.adj[from] = append(g.adj[from], Edge{From: from, To: to, Weight: w})
	g.edges++

	return nil
}

// AddUndirectedEdge appends u → v and v → u, both with weight w.
// Either both edges are added or neither is.
func (g *AdjacencyList) AddUndirectedEdge(u, v int, w int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.check(u, v, w); err != nil {
		return err
	}
	g.adj[u] = append(g.adj[u], Edge{From: u, To: v, Weight: w})
	g.adj[v] = append(g.adj[v], Edge{From: v, To: u, Weight: w})
	g.edges += 2

	return nil
}

// Neighbors returns a copy of v's outgoing edges in insertion order.
func (g *AdjacencyList) Neighbors(v int) ([]Edge, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: %d (empty graph)", ErrVertexOutOfRange, v)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adj) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, len(g.adj))
	}
	out := make([]Edge, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Edges returns every directed edge, grouped by source vertex in id order.
func (g *AdjacencyList) Edges() []Edge {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges)
	for _, list := range g.adj {
		out = append(out, list...)
	}

	return out
}

// String renders "N vertices, M edges" followed by one adjacency line per vertex.
func (g *AdjacencyList) String() string {
	if g == nil {
		return "graph(nil)"
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Number of vertices: %d. Number of edges: %d.\n", len(g.adj), g.edges)
	for v, list := range g.adj {
		fmt.Fprintf(&b, "%d:", v)
		for _, e := range list {
			fmt.Fprintf(&b, " (%d -- %d, %d)", e.From, e.To, e.Weight)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// check validates endpoints and weight. Caller holds mu.
func (g *AdjacencyList) check(from, to int, w int64) error {
	n := len(g.adj)
	if from < 0 || from >= n {
		return fmt.Errorf("%w: from=%d not in [0,%d)", ErrVertexOutOfRange, from, n)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("%w: to=%d not in [0,%d)", ErrVertexOutOfRange, to, n)
	}
	if w < 0 {
		return fmt.Errorf("%w: %d→%d weight=%d", ErrNegativeWeight, from, to, w)
	}

	return nil
}
