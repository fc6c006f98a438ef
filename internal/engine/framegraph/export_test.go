package framegraph

import "go.trai.ch/framegraph/internal/core/domain"

// SlotDirty reports whether a frame slot will be rebuilt by its next Process.
// This is exported for testing purposes only.
func (g *Graph) SlotDirty(slot int) bool {
	return g.slots.At(slot).dirty
}

// Dirty reports whether the declarations will be validated again.
// This is exported for testing purposes only.
func (g *Graph) Dirty() bool {
	return g.dirty
}

// SlotImage returns the backing image of a resource in a frame slot.
// This is exported for testing purposes only.
func (g *Graph) SlotImage(slot int, r *Resource) domain.Handle {
	return g.slots.At(slot).images[r]
}
