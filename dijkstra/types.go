// Package dijkstra defines the sentinel errors, the functional options and the
// distance-tree type produced by DistanceTree.
//
// Options:
//
//	– MaxDistance:      optional cap; vertices whose distance would exceed it stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph is nil.
//	– ErrStartOutOfRange   if the start vertex is not in [0, VertexCount()).
//	– ErrNegativeWeight    if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance    if MaxDistance < 0.
//	– ErrBadInfThreshold   if InfEdgeThreshold <= 0.
//	– ErrNilTree           if path reconstruction is given a nil tree.
//	– ErrVertexOutOfRange  if a path target/start lies outside the tree.
//	– ErrStartMismatch     if the start passed to MakePath is not the tree's start.
//	– ErrUnreachable       if the path target was never reached.
//	– ErrBrokenChain       if the predecessor chain does not lead back to the start.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/spantree/graph"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil graph was passed to DistanceTree.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStartOutOfRange indicates a start vertex outside the graph.
	ErrStartOutOfRange = errors.New("dijkstra: start vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNilTree indicates that a nil *Tree was passed to path reconstruction.
	ErrNilTree = errors.New("dijkstra: distance tree is nil")

	// ErrVertexOutOfRange indicates a vertex id outside the tree.
	ErrVertexOutOfRange = errors.New("dijkstra: vertex out of range")

	// ErrStartMismatch indicates that the start passed to MakePath is not the tree's root.
	ErrStartMismatch = errors.New("dijkstra: start does not match the tree's start")

	// ErrUnreachable indicates that no path from the start reaches the target.
	ErrUnreachable = errors.New("dijkstra: target is unreachable")

	// ErrBrokenChain indicates a predecessor chain that stops, loops or leaves the tree
	// before reaching the start.
	ErrBrokenChain = errors.New("dijkstra: broken predecessor chain")
)

// Options configures DistanceTree.
//
// MaxDistance      – vertices whose shortest distance would exceed this stay unreached.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are never traversed.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring DistanceTree.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold. Negative values make
// DistanceTree fail with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// impassable. Zero or negative values make DistanceTree fail with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct with no cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// validate reports the first invalid field.
func (o Options) validate() error {
	if o.MaxDistance < 0 {
		return fmt.Errorf("%w: %d", ErrBadMaxDistance, o.MaxDistance)
	}
	if o.InfEdgeThreshold <= 0 {
		return fmt.Errorf("%w: %d", ErrBadInfThreshold, o.InfEdgeThreshold)
	}

	return nil
}

// Entry is one slot of a distance tree: Vertex was reached from Pred with cumulative
// distance Dist. Pred and Dist are meaningful only when Reached is true. The start's
// entry is (start, start, 0).
type Entry struct {
	Pred    int   `json:"pred" yaml:"pred"`
	Vertex  int   `json:"vertex" yaml:"vertex"`
	Dist    int64 `json:"dist" yaml:"dist"`
	Reached bool  `json:"reached" yaml:"reached"`
}

// Tree is a dense shortest-path tree indexed by vertex id.
type Tree struct {
	start   int
	entries []Entry
}

// NewTree wraps entries as a tree rooted at start. entries[i].Vertex must equal i.
// The entries are copied.
func NewTree(start int, entries []Entry) (*Tree, error) {
	if start < 0 || start >= len(entries) {
		return nil, fmt.Errorf("%w: start %d not in [0,%d)", ErrVertexOutOfRange, start, len(entries))
	}
	for i, e := range entries {
		if e.Vertex != i {
			return nil, fmt.Errorf("%w: entry %d describes vertex %d", ErrVertexOutOfRange, i, e.Vertex)
		}
	}

	return &Tree{start: start, entries: append([]Entry(nil), entries...)}, nil
}

// Start returns the root of the tree.
func (t *Tree) Start() int { return t.start }

// Len returns the number of vertices covered by the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}

	return len(t.entries)
}

// Entry returns the slot of v.
func (t *Tree) Entry(v int) (Entry, error) {
	if err := t.check(v); err != nil {
		return Entry{}, err
	}

	return t.entries[v], nil
}

// Entries returns a copy of every slot in vertex order.
func (t *Tree) Entries() []Entry {
	if t == nil {
		return nil
	}

	return append([]Entry(nil), t.entries...)
}

// Distance returns the shortest distance from the start to v, or false if v is unreached.
func (t *Tree) Distance(v int) (int64, bool) {
	if t.check(v) != nil || !t.entries[v].Reached {
		return 0, false
	}

	return t.entries[v].Dist, true
}

// Predecessor returns v's parent in the tree. The start is its own parent.
func (t *Tree) Predecessor(v int) (int, bool) {
	if t.check(v) != nil || !t.entries[v].Reached {
		return 0, false
	}

	return t.entries[v].Pred, true
}

// Path reconstructs the path from the tree's start to target. See MakePath.
func (t *Tree) Path(target int) ([]graph.Edge, error) {
	if t == nil {
		return nil, ErrNilTree
	}

	return MakePath(t, target, t.start)
}

// check validates v against the tree bounds.
func (t *Tree) check(v int) error {
	if t == nil {
		return ErrNilTree
	}
	if v < 0 || v >= len(t.entries) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, len(t.entries))
	}

	return nil
}
