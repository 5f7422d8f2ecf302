// Package spantree grows spanning trees over dense integer-indexed graphs.
//
// What is in the box?
//
//	graph/     — Edge, the read-only View interface and a fixed-size AdjacencyList,
//	             plus YAML/TOML/JSON graph description files.
//	minheap/   — an indexed binary min-heap with O(log n) decrease-priority.
//	prim/      — Prim's minimum spanning tree from a chosen start vertex.
//	dijkstra/  — Dijkstra's shortest-path tree and path reconstruction
//	             (MakePath for one target, ShortestPaths for all of them).
//	cmd/spantree — a command-line front end for both algorithms.
//
// Both algorithms share one run shape: every vertex is seeded into the heap (start at
// 0, the rest at +∞), the cheapest vertex is finished, and its neighbours' priorities
// are lowered in place. Prim keys a vertex by the single edge that attaches it to the
// tree; Dijkstra keys it by the cumulative distance from the start.
//
// Quick start:
//
//	g, _ := graph.New(3)
//	_ = g.AddUndirectedEdge(0, 1, 4)
//	_ = g.AddUndirectedEdge(1, 2, 1)
//
//	edges, total, _ := prim.MST(g, 0)          // [(1 -- 0, 4) (2 -- 1, 1)], 5
//	tree, _ := dijkstra.DistanceTree(g, 0)     // dist = [0 4 5]
//	path, _ := dijkstra.MakePath(tree, 2, 0)   // [(0 -> 1, 4) (1 -> 2, 1)]
//
// Edge weights are non-negative int64 values. Inputs are validated up front and every
// failure is reported as a wrapped sentinel error; nothing in the library panics on
// user input.
package spantree
