package prim

import (
	"errors"

	"github.com/katalvlaran/spantree/graph"
)

// Sentinel errors returned by MST.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("prim: graph is nil")

	// ErrStartOutOfRange indicates a start vertex outside the graph.
	ErrStartOutOfRange = errors.New("prim: start vertex out of range")

	// ErrNegativeWeight indicates an edge with negative weight.
	ErrNegativeWeight = errors.New("prim: negative edge weight")

	// ErrDisconnected indicates that a spanning tree covering every vertex does not exist.
	// Only returned under WithRequireConnected.
	ErrDisconnected = errors.New("prim: graph is disconnected")
)

// Options configures MST.
type Options struct {
	// RequireConnected makes MST fail with ErrDisconnected instead of returning the
	// spanning tree of the start's component only.
	RequireConnected bool
}

// Option is a functional option for MST.
type Option func(*Options)

// WithRequireConnected rejects graphs whose vertices are not all reachable from start.
func WithRequireConnected() Option {
	return func(o *Options) {
		o.RequireConnected = true
	}
}

// DefaultOptions returns the zero configuration: partial trees are accepted.
func DefaultOptions() Options {
	return Options{RequireConnected: false}
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []graph.Edge) int64 {
	var total int64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
