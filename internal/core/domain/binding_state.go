package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// MaxDescriptorSets is the number of descriptor set numbers tracked per draw.
const MaxDescriptorSets = 4

// Binding is a resource bound to one descriptor slot.
// The variants are ImageBinding, InputAttachmentBinding, BufferBinding and DynamicBufferBinding.
type Binding interface {
	isBinding()
}

// Filter is a texture sampling filter.
type Filter uint8

// Sampling filters.
const (
	FilterLinear Filter = iota
	FilterNearest
)

// ImageBinding binds a sampled image.
type ImageBinding struct {
	Image  Handle
	Filter Filter
}

// InputAttachmentBinding binds an attachment written by an earlier subpass.
type InputAttachmentBinding struct {
	Image Handle
}

// BufferBinding binds a range of a uniform buffer.
type BufferBinding struct {
	Buffer Handle
	Offset uint64
	Range  uint64
}

// DynamicBufferBinding binds a uniform buffer whose offset is supplied at bind time.
type DynamicBufferBinding struct {
	Buffer Handle
	Range  uint64
	Offset uint32
}

func (ImageBinding) isBinding()           {}
func (InputAttachmentBinding) isBinding() {}
func (BufferBinding) isBinding()          {}
func (DynamicBufferBinding) isBinding()   {}

// DescriptorTypeOf returns the descriptor type a binding is written as.
func DescriptorTypeOf(b Binding) DescriptorType {
	switch b.(type) {
	case ImageBinding:
		return DescriptorCombinedImageSampler
	case InputAttachmentBinding:
		return DescriptorInputAttachment
	case BufferBinding:
		return DescriptorUniformBuffer
	case DynamicBufferBinding:
		return DescriptorUniformBufferDynamic
	default:
		panic("domain: unknown binding variant")
	}
}

func writeBinding(h *ContentHash, slot uint32, b Binding) {
	Push(h, 32, slot)
	Push(h, 2, DescriptorTypeOf(b))
	switch v := b.(type) {
	case ImageBinding:
		PushHandle(h, v.Image)
		Push(h, 1, v.Filter)
	case InputAttachmentBinding:
		PushHandle(h, v.Image)
	case BufferBinding:
		PushHandle(h, v.Buffer)
		Push(h, 64, v.Offset)
		Push(h, 64, v.Range)
	case DynamicBufferBinding:
		PushHandle(h, v.Buffer)
		Push(h, 64, v.Range)
		Push(h, 32, v.Offset)
	}
}

// BoundResource is a binding together with its slot number.
type BoundResource struct {
	Binding uint32
	Value   Binding
}

type setBindings struct {
	bound     map[uint32]Binding
	dirty     bool
	dirtySlot []uint32
	hash      ContentHash
	key       Key
	hashValid bool
}

func (s *setBindings) markDirty(slot uint32) {
	s.dirty = true
	s.hashValid = false
	if i, found := slices.BinarySearch(s.dirtySlot, slot); !found {
		s.dirtySlot = slices.Insert(s.dirtySlot, i, slot)
	}
}

func (s *setBindings) sortedSlots() []uint32 {
	return slices.Sorted(maps.Keys(s.bound))
}

// BindingState records the resources bound to each descriptor set number and which of them
// changed since the last draw.
type BindingState struct {
	sets [MaxDescriptorSets]setBindings
}

// NewBindingState returns an empty binding state.
func NewBindingState() *BindingState {
	s := &BindingState{}
	for i := range s.sets {
		s.sets[i].bound = make(map[uint32]Binding)
	}
	return s
}

func (s *BindingState) set(set uint32) (*setBindings, error) {
	if set >= MaxDescriptorSets {
		return nil, zerr.With(ErrInvalidDescriptorSet, "set", set)
	}
	return &s.sets[set], nil
}

// Bind binds b to slot of set. Binding a value identical to the current one changes nothing.
func (s *BindingState) Bind(set, slot uint32, b Binding) error {
	sb, err := s.set(set)
	if err != nil {
		return err
	}
	if cur, ok := sb.bound[slot]; ok && cur == b {
		return nil
	}
	sb.bound[slot] = b
	sb.markDirty(slot)
	return nil
}

// Unbind removes whatever is bound to slot of set.
func (s *BindingState) Unbind(set, slot uint32) error {
	sb, err := s.set(set)
	if err != nil {
		return err
	}
	if _, ok := sb.bound[slot]; !ok {
		return nil
	}
	delete(sb.bound, slot)
	sb.markDirty(slot)
	return nil
}

// Dirty reports whether any binding of set changed since the last ClearDirty.
func (s *BindingState) Dirty(set uint32) bool {
	return set < MaxDescriptorSets && s.sets[set].dirty
}

// DirtyBindings returns the changed slot numbers of set in ascending order.
func (s *BindingState) DirtyBindings(set uint32) []uint32 {
	if set >= MaxDescriptorSets {
		return nil
	}
	return slices.Clone(s.sets[set].dirtySlot)
}

// Bound returns every binding of set ordered by slot number.
func (s *BindingState) Bound(set uint32) []BoundResource {
	if set >= MaxDescriptorSets {
		return nil
	}
	sb := &s.sets[set]
	out := make([]BoundResource, 0, len(sb.bound))
	for _, slot := range sb.sortedSlots() {
		out = append(out, BoundResource{Binding: slot, Value: sb.bound[slot]})
	}
	return out
}

// Hash returns the content hash of the bindings of set, including dynamic offsets.
// It is memoized until the set changes.
func (s *BindingState) Hash(set uint32) ContentHash {
	if set >= MaxDescriptorSets {
		return ContentHash{}
	}
	return s.refresh(set).hash.Clone()
}

func (s *BindingState) refresh(set uint32) *setBindings {
	sb := &s.sets[set]
	if !sb.hashValid {
		var h ContentHash
		slots := sb.sortedSlots()
		Push(&h, 32, len(slots))
		for _, slot := range slots {
			writeBinding(&h, slot, sb.bound[slot])
		}
		sb.hash = h
		sb.key = h.Key()
		sb.hashValid = true
	}
	return sb
}

// Key returns the comparable form of Hash(set).
func (s *BindingState) Key(set uint32) Key {
	if set >= MaxDescriptorSets {
		return ""
	}
	return s.refresh(set).key
}

// DynamicOffsets returns the offsets of the dynamic buffer bindings of set, ordered by slot.
func (s *BindingState) DynamicOffsets(set uint32) []uint32 {
	if set >= MaxDescriptorSets {
		return nil
	}
	sb := &s.sets[set]
	var offsets []uint32
	for _, slot := range sb.sortedSlots() {
		if d, ok := sb.bound[slot].(DynamicBufferBinding); ok {
			offsets = append(offsets, d.Offset)
		}
	}
	return offsets
}

// ClearDirty clears the dirty markers of every set. Bindings are kept.
func (s *BindingState) ClearDirty() {
	for i := range s.sets {
		s.sets[i].dirty = false
		s.sets[i].dirtySlot = s.sets[i].dirtySlot[:0]
	}
}

// Reset unbinds everything and marks every previously used set dirty.
func (s *BindingState) Reset() {
	for i := range s.sets {
		sb := &s.sets[i]
		for slot := range sb.bound {
			sb.markDirty(slot)
		}
		clear(sb.bound)
	}
}
