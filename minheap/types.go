package minheap

import "errors"

// Sentinel errors returned by heap operations.
var (
	// ErrBadCapacity indicates that New was called with a negative capacity.
	ErrBadCapacity = errors.New("minheap: capacity must be non-negative")

	// ErrNilHeap indicates that a method was invoked on a nil *Heap.
	ErrNilHeap = errors.New("minheap: heap is nil")

	// ErrIDOutOfRange indicates an id outside [0, capacity).
	ErrIDOutOfRange = errors.New("minheap: id out of range")

	// ErrDuplicateID indicates that Insert was called for an id already in the heap.
	ErrDuplicateID = errors.New("minheap: id already present")

	// ErrFull indicates that the heap already holds capacity nodes.
	ErrFull = errors.New("minheap: heap is full")

	// ErrEmpty indicates an extraction or peek on an empty heap.
	ErrEmpty = errors.New("minheap: heap is empty")
)

// rootIndex is the slot of the minimum node; slot 0 is unused.
const rootIndex = 1

// absent marks an id that is not resident. Valid positions start at rootIndex.
const absent = 0

// Node is one heap entry: the current priority of a single id.
type Node struct {
	// Priority is the ordering key; smaller comes out first.
	Priority int64

	// ID is the external identifier in [0, capacity).
	ID int
}

// Heap is an array-backed binary min-heap with an id → position index.
//
// The zero value is not usable; construct with New.
type Heap struct {
	nodes []Node // nodes[1..size] are live; nodes[0] is padding
	pos   []int  // pos[id] is the slot of id, or absent
	size  int
}
