package minheap

import (
	"fmt"
	"strings"
)

// New creates an empty heap able to hold ids in [0, capacity).
//
// Both backing slices are allocated once here; no operation grows them later.
// Complexity: O(capacity).
func New(capacity int) (*Heap, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}

	return &Heap{
		nodes: make([]Node, capacity+1), // +1 for the unused slot 0
		pos:   make([]int, capacity),    // zero value == absent
	}, nil
}

// Len returns the number of resident nodes.
func (h *Heap) Len() int {
	if h == nil {
		return 0
	}

	return h.size
}

// Cap returns the fixed capacity chosen at construction.
func (h *Heap) Cap() int {
	if h == nil {
		return 0
	}

	return len(h.pos)
}

// IsEmpty reports whether the heap is nil or holds no nodes.
func (h *Heap) IsEmpty() bool { return h.Len() == 0 }

// Contains reports whether id is currently resident. Out-of-range ids are never resident.
func (h *Heap) Contains(id int) bool {
	return h.position(id) != absent
}

// Priority returns the current priority of id and true, or (0, false) when id is not resident.
func (h *Heap) Priority(id int) (int64, bool) {
	p := h.position(id)
	if p == absent {
		return 0, false
	}

	return h.nodes[p].Priority, true
}

// Insert adds id with the given priority and restores heap order by floating it up.
//
// Errors: ErrNilHeap, ErrIDOutOfRange, ErrDuplicateID, ErrFull.
// Complexity: O(log n).
func (h *Heap) Insert(priority int64, id int) error {
	if h == nil {
		return ErrNilHeap
	}
	if id < 0 || id >= len(h.pos) {
		return fmt.Errorf("%w: id=%d capacity=%d", ErrIDOutOfRange, id, len(h.pos))
	}
	if h.pos[id] != absent {
		return fmt.Errorf("%w: id=%d", ErrDuplicateID, id)
	}
	// One slot per id plus the "one live entry per id" rule means this only
	// trips if the position index was corrupted.
	if h.size == len(h.pos) {
		return ErrFull
	}

	h.size++
	h.nodes[h.size] = Node{Priority: priority, ID: id}
	h.pos[id] = h.size
	h.floatUp(h.size)

	return nil
}

// Peek returns the minimum node without removing it.
func (h *Heap) Peek() (Node, error) {
	if h.IsEmpty() {
		return Node{}, ErrEmpty
	}

	return h.nodes[rootIndex], nil
}

// ExtractMin removes and returns the node with the smallest priority.
//
// The last node is moved into the root slot, the extracted id is marked absent and
// heap order is restored top-down.
// Complexity: O(log n).
func (h *Heap) ExtractMin() (Node, error) {
	if h.IsEmpty() {
		return Node{}, ErrEmpty
	}

	top := h.nodes[rootIndex]
	last := h.size

	h.nodes[rootIndex] = h.nodes[last]
	h.nodes[last] = Node{}
	h.size--
	h.pos[top.ID] = absent

	if h.size > 0 {
		h.pos[h.nodes[rootIndex].ID] = rootIndex
		h.heapifyDown(rootIndex)
	}

	return top, nil
}

// DecreasePriority lowers the priority of a resident id and floats it up.
//
// It returns false, leaving the heap untouched, when id is not resident or when
// newPriority is not strictly smaller than the current priority.
// Complexity: O(log n).
func (h *Heap) DecreasePriority(id int, newPriority int64) bool {
	p := h.position(id)
	if p == absent {
		return false
	}
	if newPriority >= h.nodes[p].Priority {
		return false
	}

	h.nodes[p].Priority = newPriority
	h.floatUp(p)

	return true
}

// String renders the live slots and the position index; intended for debugging only.
func (h *Heap) String() string {
	if h == nil {
		return "MinHeap(nil)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "MinHeap size=%d capacity=%d\n", h.size, len(h.pos))
	b.WriteString("slot: priority [id]\n")
	for i := rootIndex; i <= h.size; i++ {
		fmt.Fprintf(&b, "  %d: %d [%d]\n", i, h.nodes[i].Priority, h.nodes[i].ID)
	}
	b.WriteString("id: slot\n")
	for id, p := range h.pos {
		if p == absent {
			fmt.Fprintf(&b, "  %d: -\n", id)
			continue
		}
		fmt.Fprintf(&b, "  %d: %d\n", id, p)
	}

	return b.String()
}

// position returns the slot of id, or absent for nil heaps, out-of-range ids and
// ids that are not resident.
func (h *Heap) position(id int) int {
	if h == nil || id < 0 || id >= len(h.pos) {
		return absent
	}

	return h.pos[id]
}

// swap exchanges two slots and rewrites the position of both ids.
// Every node movement goes through here.
func (h *Heap) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.pos[h.nodes[i].ID] = i
	h.pos[h.nodes[j].ID] = j
}

// floatUp moves the node at slot p towards the root while it is strictly
// smaller than its parent.
func (h *Heap) floatUp(p int) {
	for p > rootIndex {
		parent := p / 2
		if h.nodes[p].Priority >= h.nodes[parent].Priority {
			return
		}
		h.swap(p, parent)
		p = parent
	}
}

// heapifyDown moves the node at slot p towards the leaves, always swapping with
// the smaller child. On equal child priorities the left child wins.
func (h *Heap) heapifyDown(p int) {
	// A single resident node is trivially ordered; only its position needs registering.
	if h.size == 1 {
		h.pos[h.nodes[rootIndex].ID] = rootIndex
		return
	}

	for {
		left, right := 2*p, 2*p+1
		smallest := p
		if left <= h.size && h.nodes[left].Priority < h.nodes[smallest].Priority {
			smallest = left
		}
		if right <= h.size && h.nodes[right].Priority < h.nodes[smallest].Priority {
			smallest = right
		}
		if smallest == p {
			return
		}
		h.swap(p, smallest)
		p = smallest
	}
}

// verify checks heap order and the position index. It is exposed to tests only.
func (h *Heap) verify() error {
	if h == nil {
		return ErrNilHeap
	}
	for p := rootIndex; p <= h.size; p++ {
		id := h.nodes[p].ID
		if id < 0 || id >= len(h.pos) {
			return fmt.Errorf("slot %d holds out-of-range id %d", p, id)
		}
		if h.pos[id] != p {
			return fmt.Errorf("slot %d holds id %d but pos[%d]=%d", p, id, id, h.pos[id])
		}
		for _, c := range [2]int{2 * p, 2*p + 1} {
			if c <= h.size && h.nodes[c].Priority < h.nodes[p].Priority {
				return fmt.Errorf("slot %d (priority %d) is smaller than its parent %d (priority %d)",
					c, h.nodes[c].Priority, p, h.nodes[p].Priority)
			}
		}
	}
	resident := 0
	for id, p := range h.pos {
		if p == absent {
			continue
		}
		resident++
		if p > h.size || h.nodes[p].ID != id {
			return fmt.Errorf("pos[%d]=%d does not point back at id %d", id, p, id)
		}
	}
	if resident != h.size {
		return fmt.Errorf("position index lists %d ids, heap holds %d", resident, h.size)
	}

	return nil
}
