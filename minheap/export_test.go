package minheap

// Verify exposes the invariant checker to minheap_test.
func Verify(h *Heap) error { return h.verify() }
