// Package dijkstra implements Dijkstra's shortest-path tree on dense integer graphs.
//
// Every vertex is seeded into an indexed min-heap (start at 0, the rest at +∞). The
// loop repeatedly finishes the closest vertex and relaxes its outgoing edges by
// cumulative distance, lowering heap priorities in place instead of pushing duplicates.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - A candidate distance above MaxDistance is never recorded.
//   - A vertex extracted while still unreached is finished without relaxing its edges,
//     so +∞ never takes part in an addition. Sums that would overflow int64 are dropped.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spantree/graph"
	"github.com/katalvlaran/spantree/internal/records"
)

// DistanceTree computes the shortest-path tree of g rooted at start.
//
// The returned tree holds one Entry per vertex: (pred, v, dist) for every reached v,
// (start, start, 0) for the start, and Reached == false for the rest.
//
// Preconditions and validation (in order):
//  1. Options are valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. g is non-nil (ErrNilGraph).
//  3. start is a vertex of g (ErrStartOutOfRange).
//  4. No edge has a negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func DistanceTree(g graph.View, start int, opts ...Option) (*Tree, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}
	if e, found, err := records.FirstNegative(g); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	} else if found {
		return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
	}

	r, err := records.New(g, start)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	entries := make([]Entry, n)
	for v := range entries {
		entries[v].Vertex = v
	}

	run := &runner{g: g, options: cfg, records: r, entries: entries}
	if err = run.process(); err != nil {
		return nil, err
	}

	// The start is its own parent so path reconstruction terminates on it.
	entries[start] = Entry{Pred: start, Vertex: start, Dist: 0, Reached: true}

	return &Tree{start: start, entries: entries}, nil
}

// runner holds the mutable state for a single DistanceTree execution.
type runner struct {
	g       graph.View
	options Options
	records *records.Records
	entries []Entry
}

// process extracts vertices until the heap is empty, relaxing from every reached one.
func (r *runner) process() error {
	for {
		u, _, ok := r.records.Next()
		if !ok {
			return nil
		}

		du, reached := r.records.Distance(u)
		if !reached {
			continue
		}
		if err := r.relax(u, du); err != nil {
			return err
		}
	}
}

// relax examines each edge leaving u (at final distance du) and records every strict
// improvement in both the records and the tree.
func (r *runner) relax(u int, du int64) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, e := range neighbors {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		if e.Weight > math.MaxInt64-du {
			continue
		}
		candidate := du + e.Weight
		if candidate > r.options.MaxDistance {
			continue
		}
		if r.records.Relax(e.To, u, candidate) {
			r.entries[e.To] = Entry{Pred: u, Vertex: e.To, Dist: candidate, Reached: true}
		}
	}

	return nil
}
