// Package dijkstra builds single-source shortest-path trees on graphs with
// non-negative int64 edge weights, and reconstructs explicit paths from them.
//
// Overview:
//
//   - DistanceTree computes, for every vertex, the cumulative distance from the start
//     and the predecessor on one shortest path, in O((V + E) log V) time.
//   - The priority queue is the indexed min-heap from package minheap: every vertex is
//     inserted once and improvements lower its priority in place. There are no stale
//     entries and no lazy-deletion checks.
//   - MakePath walks a tree's predecessor chain back from a target and returns the hops
//     in start → target order; ShortestPaths does so for every reached vertex.
//
// The tree:
//
//	A Tree is dense and indexed by vertex id. Entry v holds (Pred, Vertex, Dist, Reached).
//	The start's entry is (start, start, 0, true). Unreached vertices keep Reached == false
//	and are never given a fabricated predecessor or distance.
//
// Paths:
//
//	A path is a slice of graph.Edge{From: pred, To: v, Weight: hop}, where hop is
//	Dist(v) - Dist(pred). Summing the weights of the path to v gives Dist(v). The path to
//	the start is empty; asking for an unreached target yields ErrUnreachable. A chain that
//	stops early, points outside the tree or loops yields ErrBrokenChain and no partial path.
//
// Options:
//
//   - WithMaxDistance(d): vertices farther than d stay unreached.
//   - WithInfEdgeThreshold(w): edges with weight ≥ w are impassable.
//
// Invalid option values are reported as errors (ErrBadMaxDistance, ErrBadInfThreshold);
// the package never panics on user input.
//
// Complexity:
//
//   - DistanceTree: O((V + E) log V) time, O(V) space.
//   - MakePath:     O(V) time and space per path.
//   - ShortestPaths: O(V²) in the worst case (a chain), O(V · depth) in general.
//
// Example:
//
//	g, _ := graph.New(5)
//	_ = g.AddUndirectedEdge(0, 1, 2)
//	_ = g.AddUndirectedEdge(1, 2, 3)
//	tree, _ := dijkstra.DistanceTree(g, 0)
//	path, _ := dijkstra.MakePath(tree, 2, 0) // [(0 -> 1, 2) (1 -> 2, 3)]
package dijkstra
