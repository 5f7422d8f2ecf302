package prim

import (
	"fmt"

	"github.com/katalvlaran/spantree/graph"
	"github.com/katalvlaran/spantree/internal/records"
)

// MST computes the minimum spanning tree reachable from start.
//
// Returns the tree edges in discovery order (From = child, To = parent) and their total
// weight. On any error the edge slice is nil.
//
// Steps:
//  1. Validate graph, start and options; scan for negative weights.
//  2. Initialize records (heap seeded with every vertex).
//  3. Extract, emit the tree edge, relax neighbors by edge weight; repeat until empty.
//  4. Hand the records' output buffer to the caller.
//
// Complexity: O((V + E) log V) time, O(V) memory.
func MST(g graph.View, start int, opts ...Option) ([]graph.Edge, int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, 0, ErrNilGraph
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, 0, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}
	if e, found, err := records.FirstNegative(g); err != nil {
		return nil, 0, fmt.Errorf("prim: %w", err)
	} else if found {
		return nil, 0, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
	}

	r, err := records.New(g, start)
	if err != nil {
		return nil, 0, fmt.Errorf("prim: %w", err)
	}

	for {
		u, key, ok := r.Next()
		if !ok {
			break
		}

		parent, hasParent := r.Predecessor(u)
		if !hasParent {
			// Either the start, or a vertex no tree edge ever reached.
			if u != start {
				continue
			}
		} else {
			r.AddTreeEdge(graph.Edge{From: u, To: parent, Weight: key})
		}

		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, 0, fmt.Errorf("prim: neighbors of %d: %w", u, err)
		}
		for _, e := range nbrs {
			// Relax ignores finished vertices and non-improving weights.
			r.Relax(e.To, u, e.Weight)
		}
	}

	if cfg.RequireConnected && r.TreeLen() < n-1 {
		return nil, 0, fmt.Errorf("%w: %d of %d vertices reached from %d",
			ErrDisconnected, r.TreeLen()+1, n, start)
	}

	tree := r.TakeTree()

	return tree, TotalWeight(tree), nil
}
