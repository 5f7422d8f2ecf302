package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/spantree/graph"
)

// MakePath reconstructs the shortest path from start to target recorded in t.
//
// The predecessor chain is walked backwards from target; each hop's weight is the
// difference between consecutive cumulative distances (the start contributes 0).
// The hops are then reversed, so the result runs start → target with every edge
// oriented pred → vertex. A path to the start itself is empty.
//
// On any error the returned slice is nil; nothing partially built escapes.
func MakePath(t *Tree, target, start int) ([]graph.Edge, error) {
	if err := t.check(target); err != nil {
		return nil, err
	}
	if err := t.check(start); err != nil {
		return nil, err
	}
	if start != t.start {
		return nil, fmt.Errorf("%w: got %d, tree is rooted at %d", ErrStartMismatch, start, t.start)
	}
	if target == start {
		return []graph.Edge{}, nil
	}
	if !t.entries[target].Reached {
		return nil, fmt.Errorf("%w: %d from %d", ErrUnreachable, target, start)
	}

	n := len(t.entries)
	var path []graph.Edge
	for cur := target; cur != start; {
		// A simple path has at most n-1 hops; more means the chain loops.
		if len(path) >= n-1 {
			return nil, fmt.Errorf("%w: cycle while walking back from %d", ErrBrokenChain, target)
		}
		e := t.entries[cur]
		if !e.Reached || e.Pred < 0 || e.Pred >= n {
			return nil, fmt.Errorf("%w: vertex %d has no predecessor", ErrBrokenChain, cur)
		}

		var predDist int64
		if e.Pred != start {
			p := t.entries[e.Pred]
			if !p.Reached {
				return nil, fmt.Errorf("%w: predecessor %d of %d is unreached", ErrBrokenChain, e.Pred, cur)
			}
			predDist = p.Dist
		}

		path = append(path, graph.Edge{From: e.Pred, To: cur, Weight: e.Dist - predDist})
		cur = e.Pred
	}
	slices.Reverse(path)

	return path, nil
}

// ShortestPaths reconstructs the path from start to every other reached vertex.
//
// The result is indexed by vertex id; the start and unreached vertices hold nil.
// The call is all-or-nothing: if any reconstruction fails, the paths built so far are
// dropped and only the error is returned.
func ShortestPaths(t *Tree, vertexCount, start int) ([][]graph.Edge, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	if vertexCount != len(t.entries) {
		return nil, fmt.Errorf("%w: vertexCount %d, tree covers %d", ErrVertexOutOfRange, vertexCount, len(t.entries))
	}
	if err := t.check(start); err != nil {
		return nil, err
	}
	if start != t.start {
		return nil, fmt.Errorf("%w: got %d, tree is rooted at %d", ErrStartMismatch, start, t.start)
	}

	paths := make([][]graph.Edge, vertexCount)
	for v := 0; v < vertexCount; v++ {
		if v == start || !t.entries[v].Reached {
			continue
		}
		p, err := MakePath(t, v, start)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: path to %d: %w", v, err)
		}
		paths[v] = p
	}

	return paths, nil
}
