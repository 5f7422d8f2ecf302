// Package prim computes a Minimum Spanning Tree with Prim's algorithm on a dense,
// integer-indexed graph.View, driven by an indexed min-heap with decrease-priority.
//
// What & Why
//
//   - Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E
//     connecting every vertex with minimum total weight.
//   - Prim grows a single tree from a start vertex: every vertex sits in the heap keyed by
//     the cheapest edge known to connect it to the tree, and the globally cheapest one is
//     committed next.
//
// Algorithm
//
//  1. Seed the heap with every vertex: 0 for start, +∞ for the rest.
//  2. Extract the minimum u and mark it finished. Unless u is the start, record the tree
//     edge (u, parent(u), key(u)).
//  3. For each outgoing edge (u → v, w) with v unfinished and w < key(v): lower key(v) to w
//     and set parent(v) = u.
//  4. Repeat until the heap is empty.
//
// Vertices outside the start's component are never reached: they get no tree edge and
// are not relaxed from. WithRequireConnected turns that situation into ErrDisconnected.
//
// The graph is read as stored. Undirected graphs must carry both directions of every
// edge (graph.AdjacencyList.AddUndirectedEdge does this).
//
// Output
//
//	Edges come back in discovery order as graph.Edge{From: child, To: parent, Weight: w}.
//	For a connected graph there are exactly VertexCount()-1 of them.
//
// Complexity
//
//   - Time:  O((V + E) log V) — V extractions, at most E decrease-priority calls.
//   - Space: O(V) for the heap and per-vertex records.
//
// Errors
//
//   - ErrNilGraph        graph is nil.
//   - ErrStartOutOfRange start ∉ [0, VertexCount()).
//   - ErrNegativeWeight  an edge with weight < 0 was found by the up-front scan.
//   - ErrDisconnected    WithRequireConnected was given and some vertex was not reached.
package prim
