package domain

import "slices"

// Topology is the primitive assembly mode.
type Topology uint8

// Primitive topologies.
const (
	TopologyTriangleList Topology = iota
	TopologyTriangleStrip
	TopologyLineList
	TopologyPointList
)

// PolygonMode controls how triangles are rasterized.
type PolygonMode uint8

// Polygon modes.
const (
	PolygonFill PolygonMode = iota
	PolygonLine
	PolygonPoint
)

// CullMode selects which faces are discarded.
type CullMode uint8

// Cull modes.
const (
	CullNone CullMode = iota
	CullFront
	CullBack
	CullFrontAndBack
)

// FrontFace is the winding order of front-facing triangles.
type FrontFace uint8

// Winding orders.
const (
	FrontFaceCounterClockwise FrontFace = iota
	FrontFaceClockwise
)

// CompareOp is a depth comparison.
type CompareOp uint8

// Comparison operators.
const (
	CompareNever CompareOp = iota
	CompareLess
	CompareEqual
	CompareLessOrEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterOrEqual
	CompareAlways
)

// BlendFactor is a source or destination blend factor.
type BlendFactor uint8

// Blend factors.
const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcColor
	BlendOneMinusSrcColor
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
)

// BlendOp combines the weighted source and destination.
type BlendOp uint8

// Blend operations.
const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

// ColorMask selects the written color channels.
type ColorMask uint8

// Color channels.
const (
	ColorMaskR ColorMask = 1 << iota
	ColorMaskG
	ColorMaskB
	ColorMaskA

	ColorMaskAll = ColorMaskR | ColorMaskG | ColorMaskB | ColorMaskA
)

// Rasterization is the fixed-function rasterizer state.
type Rasterization struct {
	PolygonMode PolygonMode
	CullMode    CullMode
	FrontFace   FrontFace
	LineWidth   float32
}

// DepthState is the depth test configuration.
type DepthState struct {
	Test    bool
	Write   bool
	Compare CompareOp
}

// BlendAttachment is the blend state of one color attachment.
type BlendAttachment struct {
	Enable    bool
	SrcColor  BlendFactor
	DstColor  BlendFactor
	ColorOp   BlendOp
	SrcAlpha  BlendFactor
	DstAlpha  BlendFactor
	AlphaOp   BlendOp
	WriteMask ColorMask
}

// OpaqueBlend writes all channels without blending.
var OpaqueBlend = BlendAttachment{
	SrcColor:  BlendOne,
	SrcAlpha:  BlendOne,
	WriteMask: ColorMaskAll,
}

// VertexFormat is the format of one vertex attribute.
type VertexFormat uint8

// Vertex attribute formats.
const (
	VertexFloat VertexFormat = iota
	VertexVec2
	VertexVec3
	VertexVec4
	VertexUByte4Norm
)

// VertexBinding is one vertex buffer binding.
type VertexBinding struct {
	Binding     uint32
	Stride      uint32
	PerInstance bool
}

// VertexAttribute is one shader input fetched from a binding.
type VertexAttribute struct {
	Location uint32
	Binding  uint32
	Format   VertexFormat
	Offset   uint32
}

// VertexLayout is the vertex input state.
type VertexLayout struct {
	Bindings   []VertexBinding
	Attributes []VertexAttribute
}

// Viewport maps normalized device coordinates to the framebuffer.
type Viewport struct {
	X, Y          float32
	Width, Height float32
	MinDepth      float32
	MaxDepth      float32
}

// Rect is a scissor rectangle.
type Rect struct {
	X, Y   int32
	Extent Extent2D
}

// GraphicsState is every piece of state that determines a graphics pipeline, apart from the
// render pass, subpass and layout it is created for.
type GraphicsState struct {
	Program       uint64
	Topology      Topology
	Rasterization Rasterization
	Depth         DepthState
	Blend         []BlendAttachment
	VertexLayout  VertexLayout
	Viewport      Viewport
	Scissor       Rect
}

// DefaultGraphicsState returns the state used before anything is set: back-face culling,
// counter-clockwise front faces, and a less-than depth test with writes.
func DefaultGraphicsState() GraphicsState {
	return GraphicsState{
		Topology: TopologyTriangleList,
		Rasterization: Rasterization{
			PolygonMode: PolygonFill,
			CullMode:    CullBack,
			FrontFace:   FrontFaceCounterClockwise,
			LineWidth:   1,
		},
		Depth:    DepthState{Test: true, Write: true, Compare: CompareLess},
		Viewport: Viewport{MaxDepth: 1},
	}
}

// Clone returns a copy of s that does not share slices.
func (s GraphicsState) Clone() GraphicsState {
	s.Blend = slices.Clone(s.Blend)
	s.VertexLayout.Bindings = slices.Clone(s.VertexLayout.Bindings)
	s.VertexLayout.Attributes = slices.Clone(s.VertexLayout.Attributes)
	return s
}

// Hash returns the content hash of s.
func (s GraphicsState) Hash() ContentHash {
	var h ContentHash
	s.writeHash(&h)
	return h
}

// writeHash is the only place that decides the order and width of hashed pipeline fields.
// Slices are prefixed with their length.
func (s *GraphicsState) writeHash(h *ContentHash) {
	Push(h, 64, s.Program)
	Push(h, 4, s.Topology)

	Push(h, 2, s.Rasterization.PolygonMode)
	Push(h, 2, s.Rasterization.CullMode)
	Push(h, 1, s.Rasterization.FrontFace)
	PushFloat32(h, s.Rasterization.LineWidth)

	PushBool(h, s.Depth.Test)
	PushBool(h, s.Depth.Write)
	Push(h, 3, s.Depth.Compare)

	Push(h, 8, len(s.Blend))
	for _, b := range s.Blend {
		PushBool(h, b.Enable)
		Push(h, 4, b.SrcColor)
		Push(h, 4, b.DstColor)
		Push(h, 3, b.ColorOp)
		Push(h, 4, b.SrcAlpha)
		Push(h, 4, b.DstAlpha)
		Push(h, 3, b.AlphaOp)
		Push(h, 4, b.WriteMask)
	}

	Push(h, 8, len(s.VertexLayout.Bindings))
	for _, b := range s.VertexLayout.Bindings {
		Push(h, 8, b.Binding)
		Push(h, 32, b.Stride)
		PushBool(h, b.PerInstance)
	}
	Push(h, 8, len(s.VertexLayout.Attributes))
	for _, a := range s.VertexLayout.Attributes {
		Push(h, 8, a.Location)
		Push(h, 8, a.Binding)
		Push(h, 4, a.Format)
		Push(h, 32, a.Offset)
	}

	PushFloat32(h, s.Viewport.X)
	PushFloat32(h, s.Viewport.Y)
	PushFloat32(h, s.Viewport.Width)
	PushFloat32(h, s.Viewport.Height)
	PushFloat32(h, s.Viewport.MinDepth)
	PushFloat32(h, s.Viewport.MaxDepth)

	Push(h, 32, s.Scissor.X)
	Push(h, 32, s.Scissor.Y)
	Push(h, 32, s.Scissor.Extent.Width)
	Push(h, 32, s.Scissor.Extent.Height)
}

// GraphicsStateHash tracks a GraphicsState and memoizes its hash.
// Every mutator marks it dirty; Hash recomputes only when dirty.
type GraphicsStateHash struct {
	state GraphicsState
	hash  ContentHash
	key   Key
	dirty bool
}

// NewGraphicsStateHash starts tracking a copy of s.
func NewGraphicsStateHash(s GraphicsState) *GraphicsStateHash {
	return &GraphicsStateHash{state: s.Clone(), dirty: true}
}

// State returns a copy of the tracked state.
func (g *GraphicsStateHash) State() GraphicsState {
	return g.state.Clone()
}

// Dirty reports whether the state changed since the hash was last computed.
func (g *GraphicsStateHash) Dirty() bool {
	return g.dirty
}

// SetProgram sets the shader program id.
func (g *GraphicsStateHash) SetProgram(id uint64) {
	g.state.Program = id
	g.dirty = true
}

// SetTopology sets the primitive topology.
func (g *GraphicsStateHash) SetTopology(t Topology) {
	g.state.Topology = t
	g.dirty = true
}

// SetRasterization sets the rasterizer state.
func (g *GraphicsStateHash) SetRasterization(r Rasterization) {
	g.state.Rasterization = r
	g.dirty = true
}

// SetDepth sets the depth test state.
func (g *GraphicsStateHash) SetDepth(d DepthState) {
	g.state.Depth = d
	g.dirty = true
}

// SetBlend sets the per-attachment blend state.
func (g *GraphicsStateHash) SetBlend(attachments ...BlendAttachment) {
	g.state.Blend = slices.Clone(attachments)
	g.dirty = true
}

// SetVertexLayout sets the vertex input state.
func (g *GraphicsStateHash) SetVertexLayout(l VertexLayout) {
	g.state.VertexLayout = VertexLayout{
		Bindings:   slices.Clone(l.Bindings),
		Attributes: slices.Clone(l.Attributes),
	}
	g.dirty = true
}

// SetViewport sets the viewport and scissor.
func (g *GraphicsStateHash) SetViewport(v Viewport, scissor Rect) {
	g.state.Viewport = v
	g.state.Scissor = scissor
	g.dirty = true
}

// Update applies fn to the tracked state and marks it dirty.
func (g *GraphicsStateHash) Update(fn func(*GraphicsState)) {
	fn(&g.state)
	g.dirty = true
}

// Hash returns the hash of the current state.
// The returned value does not share storage with the memoized hash.
func (g *GraphicsStateHash) Hash() ContentHash {
	g.refresh()
	return g.hash.Clone()
}

// Key returns the comparable form of Hash.
func (g *GraphicsStateHash) Key() Key {
	g.refresh()
	return g.key
}

func (g *GraphicsStateHash) refresh() {
	if !g.dirty {
		return
	}
	var h ContentHash
	g.state.writeHash(&h)
	g.hash = h
	g.key = h.Key()
	g.dirty = false
}
