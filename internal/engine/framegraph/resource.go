package framegraph

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.trai.ch/framegraph/internal/core/domain"
)

// ResourceDesc configures a logical resource.
type ResourceDesc struct {
	Format domain.Format
	Size   domain.SizeMode
	// Extent is used when Size is domain.SizeAbsolute.
	Extent domain.Extent2D
	// Scale multiplies the output extent when Size is domain.SizeRelative. Zero means {1, 1}.
	Scale mgl32.Vec2
}

// Resource is a logical image owned by a Graph. Every setter marks the graph dirty.
type Resource struct {
	graph *Graph
	name  string
	desc  ResourceDesc
}

// Name returns the resource name.
func (r *Resource) Name() string { return r.name }

// Desc returns the current configuration.
func (r *Resource) Desc() ResourceDesc { return r.desc }

// SetFormat changes the pixel format.
func (r *Resource) SetFormat(f domain.Format) {
	r.desc.Format = f
	r.graph.markDirty()
}

// SetAbsolute sizes the resource to a fixed extent.
func (r *Resource) SetAbsolute(extent domain.Extent2D) {
	r.desc.Size = domain.SizeAbsolute
	r.desc.Extent = extent
	r.graph.markDirty()
}

// SetRelative sizes the resource as a fraction of the output extent.
func (r *Resource) SetRelative(scale mgl32.Vec2) {
	r.desc.Size = domain.SizeRelative
	r.desc.Scale = scale
	r.graph.markDirty()
}

// extent resolves the absolute size of r against the output extent.
func (r *Resource) extent(output domain.Extent2D) domain.Extent2D {
	if r.desc.Size == domain.SizeAbsolute {
		return r.desc.Extent
	}
	scale := r.desc.Scale
	if scale == (mgl32.Vec2{}) {
		scale = mgl32.Vec2{1, 1}
	}
	return output.Scale(scale)
}
