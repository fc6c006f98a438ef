package domain

import (
	"cmp"
	"slices"
)

// DescriptorType is the type of a descriptor slot in a set layout.
type DescriptorType uint8

// Descriptor types.
const (
	DescriptorCombinedImageSampler DescriptorType = iota
	DescriptorInputAttachment
	DescriptorUniformBuffer
	DescriptorUniformBufferDynamic
)

func (t DescriptorType) String() string {
	switch t {
	case DescriptorCombinedImageSampler:
		return "combined_image_sampler"
	case DescriptorInputAttachment:
		return "input_attachment"
	case DescriptorUniformBuffer:
		return "uniform_buffer"
	case DescriptorUniformBufferDynamic:
		return "uniform_buffer_dynamic"
	default:
		return "unknown"
	}
}

// LayoutBinding is one slot of a descriptor set layout.
type LayoutBinding struct {
	Binding uint32
	Type    DescriptorType
	Count   uint32
}

// SetLayout is a created descriptor set layout together with the content hash of its bindings.
// Two layouts with the same bindings hash equal and can share descriptor pools and sets.
type SetLayout struct {
	handle   Handle
	bindings []LayoutBinding
	hash     ContentHash
}

// NewSetLayout returns a layout for the device object h with the given bindings.
func NewSetLayout(h Handle, bindings []LayoutBinding) SetLayout {
	sorted := slices.Clone(bindings)
	slices.SortFunc(sorted, func(a, b LayoutBinding) int {
		return cmp.Compare(a.Binding, b.Binding)
	})

	var hash ContentHash
	Push(&hash, 32, len(sorted))
	for _, b := range sorted {
		Push(&hash, 32, b.Binding)
		Push(&hash, 8, b.Type)
		Push(&hash, 32, b.Count)
	}
	return SetLayout{handle: h, bindings: sorted, hash: hash}
}

// Handle returns the device object of the layout.
func (l SetLayout) Handle() Handle { return l.handle }

// Bindings returns the layout's slots ordered by binding number.
func (l SetLayout) Bindings() []LayoutBinding { return l.bindings }

// Hash returns the content hash of the layout's bindings.
func (l SetLayout) Hash() ContentHash { return l.hash.Clone() }

// Key returns the comparable form of Hash.
func (l SetLayout) Key() Key { return l.hash.Key() }

// PoolSize is the number of descriptors of one type a descriptor pool can hold.
type PoolSize struct {
	Type  DescriptorType
	Count uint32
}

// DescriptorPoolDesc describes a native descriptor pool.
type DescriptorPoolDesc struct {
	MaxSets uint32
	Sizes   []PoolSize
}

// PoolDescFor sizes a pool that holds maxSets sets of the given layout.
func PoolDescFor(layout SetLayout, maxSets uint32) DescriptorPoolDesc {
	counts := make(map[DescriptorType]uint32)
	for _, b := range layout.bindings {
		counts[b.Type] += max(b.Count, 1) * maxSets
	}
	desc := DescriptorPoolDesc{MaxSets: maxSets}
	for t := DescriptorCombinedImageSampler; t <= DescriptorUniformBufferDynamic; t++ {
		if n, ok := counts[t]; ok {
			desc.Sizes = append(desc.Sizes, PoolSize{Type: t, Count: n})
		}
	}
	return desc
}

// DescriptorWrite updates one binding of a descriptor set.
type DescriptorWrite struct {
	Binding uint32
	Value   Binding
}

// ImageDesc describes a device image.
type ImageDesc struct {
	Format  Format
	Extent  Extent2D
	Usage   ImageUsage
	Samples uint8
}

// Hash returns the cache key of d.
func (d ImageDesc) Hash() ContentHash {
	var h ContentHash
	Push(&h, 8, d.Format)
	Push(&h, 32, d.Extent.Width)
	Push(&h, 32, d.Extent.Height)
	Push(&h, 32, d.Usage)
	Push(&h, 8, max(d.Samples, 1))
	return h
}

// BufferDesc describes a device buffer.
type BufferDesc struct {
	Size   uint64
	Usage  BufferUsage
	Memory MemoryProperty
}

// Hash returns the cache key of d.
func (d BufferDesc) Hash() ContentHash {
	var h ContentHash
	Push(&h, 64, d.Size)
	Push(&h, 32, d.Usage)
	Push(&h, 32, d.Memory)
	return h
}

// LoadOp is what happens to an attachment's contents at the start of a render pass.
type LoadOp uint8

// Attachment load operations.
const (
	LoadOpDontCare LoadOp = iota
	LoadOpClear
	LoadOpLoad
)

// StoreOp is what happens to an attachment's contents at the end of a render pass.
type StoreOp uint8

// Attachment store operations.
const (
	StoreOpStore StoreOp = iota
	StoreOpDontCare
)

// AttachmentDesc is one attachment of a render pass.
type AttachmentDesc struct {
	Format Format
	Load   LoadOp
	Store  StoreOp
}

// NoAttachment marks an absent depth attachment in a SubpassDesc.
const NoAttachment = -1

// SubpassDesc lists the render pass attachment indices a subpass uses.
type SubpassDesc struct {
	Inputs []uint32
	Colors []uint32
	Depth  int
}

// RenderPassDesc describes a native render pass.
type RenderPassDesc struct {
	Name        string
	Attachments []AttachmentDesc
	Subpasses   []SubpassDesc
}

// FramebufferDesc binds images to the attachments of a render pass.
type FramebufferDesc struct {
	RenderPass  Handle
	Attachments []Handle
	Extent      Extent2D
}

// PipelineDesc describes a graphics pipeline.
type PipelineDesc struct {
	State      GraphicsState
	RenderPass Handle
	Subpass    uint32
	Layout     Handle

	stateHash ContentHash
}

// NewPipelineDesc snapshots the tracked state and reuses its memoized hash.
func NewPipelineDesc(state *GraphicsStateHash, renderPass Handle, subpass uint32, layout Handle) PipelineDesc {
	return PipelineDesc{
		State:      state.State(),
		RenderPass: renderPass,
		Subpass:    subpass,
		Layout:     layout,
		stateHash:  state.Hash(),
	}
}

// Hash returns the cache key of d: the state hash followed by render pass, subpass and layout.
func (d PipelineDesc) Hash() ContentHash {
	var h ContentHash
	if d.stateHash.Len() > 0 {
		h.Append(d.stateHash)
	} else {
		d.State.writeHash(&h)
	}
	PushHandle(&h, d.RenderPass)
	Push(&h, 32, d.Subpass)
	PushHandle(&h, d.Layout)
	return h
}

// Submission is one queue submission.
type Submission struct {
	Commands Handle
	Wait     []Handle
	Signal   []Handle
	Fence    Handle
}
