// Package minheap provides an indexed binary min-heap over (priority, id) pairs.
//
// Overview:
//
//   - Nodes live in a 1-indexed dense slice (slot 0 is never used), so the parent of
//     position p is p/2 and its children are 2p and 2p+1.
//   - A parallel position index maps every id in [0, capacity) to the slot it currently
//     occupies, or to "absent" once it has been extracted or was never inserted.
//   - Because the position of any id is known in O(1), priorities can be lowered by id
//     (DecreasePriority) in O(log n) without searching the heap.
//
// When to use:
//
//   - Dijkstra and Prim style traversals over dense integer vertex ids, where every vertex
//     is seeded once and its tentative distance only ever shrinks.
//
// Invariants:
//
//   - Heap order: nodes[p].Priority ≤ nodes[2p].Priority and ≤ nodes[2p+1].Priority.
//   - Position index: for every resident id at slot p, pos[id] == p; for every
//     1 ≤ p ≤ Len(), pos[nodes[p].ID] == p.
//   - swap is the single place that moves nodes, and it rewrites both position entries
//     together with the slice swap.
//
// Complexity:
//
//   - Insert, ExtractMin, DecreasePriority: O(log n).
//   - Peek, Priority, Contains, Len, IsEmpty: O(1).
//   - Space: O(capacity).
//
// Errors (sentinel):
//
//   - ErrBadCapacity   if New is called with a negative capacity.
//   - ErrNilHeap       if a method is called on a nil *Heap.
//   - ErrIDOutOfRange  if an id falls outside [0, capacity).
//   - ErrDuplicateID   if Insert is called for an id that is already resident.
//   - ErrFull          if Insert is called on a heap holding capacity nodes.
//   - ErrEmpty         if ExtractMin or Peek is called on an empty heap.
//
// Thread safety:
//
//   - A Heap is not safe for concurrent use. Each traversal owns its own heap.
package minheap
