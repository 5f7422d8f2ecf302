// Package graph defines the dense, integer-indexed weighted graph consumed by the
// prim and dijkstra packages.
//
// Vertices are identified by 0..N-1 where N is fixed at construction. Each vertex owns
// an ordered list of outgoing directed edges; undirected connections are stored as a
// pair of mirrored directed edges. Algorithms only read a graph, through the View
// interface.
//
// Errors:
//
//	ErrBadVertexCount   - New was called with N < 1.
//	ErrVertexOutOfRange - an endpoint or queried vertex is outside [0, N).
//	ErrNegativeWeight   - an edge weight is below zero.
//	ErrUnknownFormat    - a graph file has an unsupported format.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrBadVertexCount indicates a non-positive vertex count.
	ErrBadVertexCount = errors.New("graph: vertex count must be positive")

	// ErrVertexOutOfRange indicates a vertex id outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrUnknownFormat indicates a graph description in an unsupported format.
	ErrUnknownFormat = errors.New("graph: unknown file format")
)

// Edge is a directed weighted edge From → To.
type Edge struct {
	From   int   `json:"from" yaml:"from" toml:"from"`
	To     int   `json:"to" yaml:"to" toml:"to"`
	Weight int64 `json:"weight" yaml:"weight" toml:"weight"`
}

// View is the read-only surface the algorithms need.
type View interface {
	// VertexCount returns N; valid vertex ids are 0..N-1.
	VertexCount() int

	// EdgeCount returns the number of directed edges.
	EdgeCount() int

	// Neighbors returns the outgoing edges of v in insertion order.
	Neighbors(v int) ([]Edge, error)
}

// AdjacencyList is the default View implementation.
//
// mu guards adj and edges, so concurrent readers are safe against a concurrent writer.
type AdjacencyList struct {
	mu    sync.RWMutex
	adj   [][]Edge
	edges int
}

var _ View = (*AdjacencyList)(nil)
