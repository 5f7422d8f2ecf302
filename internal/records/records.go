// Package records holds the per-run scratch state shared by the prim and dijkstra
// traversals: the indexed heap, one state record per vertex, and the output edge buffer.
//
// A Records value is created at the start of a traversal, owned exclusively by it, and
// dropped at the end after the output buffer has been handed over with TakeTree.
//
// Distances and predecessors are optional per vertex. "Not reached yet" and "no
// predecessor" are explicit flags rather than sentinel numbers, so an unreached
// distance can never take part in arithmetic.
package records

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/spantree/graph"
	"github.com/katalvlaran/spantree/minheap"
)

// Infinity is the heap priority of every vertex that has not been reached.
// It is larger than any distance a traversal will record.
const Infinity int64 = math.MaxInt64

var (
	// ErrNilGraph indicates that no graph was supplied.
	ErrNilGraph = errors.New("records: graph is nil")

	// ErrStartOutOfRange indicates a start vertex outside [0, VertexCount()).
	ErrStartOutOfRange = errors.New("records: start vertex out of range")

	// ErrVertexOutOfRange indicates a vertex id outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("records: vertex out of range")
)

// vertexState is everything a traversal knows about one vertex.
type vertexState struct {
	finished bool
	reached  bool  // dist is meaningful
	dist     int64 // best known priority; final once finished
	hasPred  bool
	pred     int
}

// Records is the state of one traversal.
type Records struct {
	start    int
	heap     *minheap.Heap
	vertices []vertexState
	tree     []graph.Edge
}

// New seeds a heap with every vertex of g (priority 0 for start, Infinity otherwise)
// and returns fresh records. On error nothing is returned.
//
// The output buffer is pre-sized for a spanning tree: VertexCount()-1 edges.
func New(g graph.View, start int) (*Records, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	h, err := minheap.New(n)
	if err != nil {
		return nil, err
	}
	vertices := make([]vertexState, n)
	for v := 0; v < n; v++ {
		priority := Infinity
		if v == start {
			priority = 0
			vertices[v] = vertexState{reached: true, dist: 0}
		}
		if err = h.Insert(priority, v); err != nil {
			return nil, fmt.Errorf("records: seed vertex %d: %w", v, err)
		}
	}

	return &Records{
		start:    start,
		heap:     h,
		vertices: vertices,
		tree:     make([]graph.Edge, 0, n-1),
	}, nil
}

// Start returns the start vertex.
func (r *Records) Start() int { return r.start }

// VertexCount returns the number of vertices tracked.
func (r *Records) VertexCount() int { return len(r.vertices) }

// Pending returns the number of vertices still in the heap.
func (r *Records) Pending() int { return r.heap.Len() }

// Next extracts the minimum-priority vertex, marks it finished and returns it with
// its extracted priority. ok is false once every vertex has been finished.
func (r *Records) Next() (u int, priority int64, ok bool) {
	n, err := r.heap.ExtractMin()
	if err != nil {
		return 0, 0, false
	}
	r.vertices[n.ID].finished = true

	return n.ID, n.Priority, true
}

// Relax records candidate as the new distance of v via predecessor `via` when v is
// unfinished and candidate is strictly smaller than v's current distance.
// It reports whether anything changed.
func (r *Records) Relax(v, via int, candidate int64) bool {
	s, err := r.vertex(v)
	if err != nil || s.finished {
		return false
	}
	if candidate >= Infinity || (s.reached && candidate >= s.dist) {
		return false
	}
	if !r.heap.DecreasePriority(v, candidate) {
		return false
	}
	s.reached = true
	s.dist = candidate
	s.hasPred = true
	s.pred = via

	return true
}

// Finished reports whether v has been extracted. Out-of-range ids report false.
func (r *Records) Finished(v int) bool {
	s, err := r.vertex(v)
	return err == nil && s.finished
}

// Reached reports whether v has a finite distance.
func (r *Records) Reached(v int) bool {
	s, err := r.vertex(v)
	return err == nil && s.reached
}

// Distance returns the best known distance of v, or false when v is unreached or out of range.
func (r *Records) Distance(v int) (int64, bool) {
	s, err := r.vertex(v)
	if err != nil || !s.reached {
		return 0, false
	}

	return s.dist, true
}

// Predecessor returns the vertex v was last relaxed from, or false when it has none.
func (r *Records) Predecessor(v int) (int, bool) {
	s, err := r.vertex(v)
	if err != nil || !s.hasPred {
		return 0, false
	}

	return s.pred, true
}

// AddTreeEdge appends e to the output buffer.
func (r *Records) AddTreeEdge(e graph.Edge) {
	r.tree = append(r.tree, e)
}

// TreeLen returns the number of edges written so far.
func (r *Records) TreeLen() int { return len(r.tree) }

// TakeTree hands the output buffer to the caller; the records forget it.
func (r *Records) TakeTree() []graph.Edge {
	t := r.tree
	r.tree = nil

	return t
}

// FirstNegative scans every edge of g and returns the first one with a negative weight.
// Traversals call it up front so relaxation never sees a negative weight.
func FirstNegative(g graph.View) (graph.Edge, bool, error) {
	for v := 0; v < g.VertexCount(); v++ {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return graph.Edge{}, false, err
		}
		for _, e := range nbrs {
			if e.Weight < 0 {
				return e, true, nil
			}
		}
	}

	return graph.Edge{}, false, nil
}

// vertex is the single range-checked accessor into the per-vertex state.
func (r *Records) vertex(v int) (*vertexState, error) {
	if v < 0 || v >= len(r.vertices) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, len(r.vertices))
	}

	return &r.vertices[v], nil
}
