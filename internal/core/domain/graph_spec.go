package domain

import "github.com/go-gl/mathgl/mgl32"

// DefaultFramesInFlight is used when a graph description does not name a frame count.
const DefaultFramesInFlight = 2

// GraphSpec is a declarative description of a frame graph, as loaded from a graph file.
type GraphSpec struct {
	Name           string
	FramesInFlight int
	Extent         Extent2D
	Resources      []ResourceSpec
	Passes         []PassSpec
}

// ResourceSpec describes one logical resource.
type ResourceSpec struct {
	Name   string
	Format Format
	Size   SizeMode
	Extent Extent2D
	Scale  mgl32.Vec2
}

// PassSpec describes one logical pass. Passes are kept in declaration order.
type PassSpec struct {
	Name   string
	Output bool
	Draws  int
	Uses   []UseSpec
}

// UseSpec is one resource use of a pass.
type UseSpec struct {
	Resource string
	Usage    Usage
	Access   Access
	Clear    *ClearValue
}

// Resource returns the resource named name.
func (g *GraphSpec) Resource(name string) (ResourceSpec, bool) {
	for _, r := range g.Resources {
		if r.Name == name {
			return r, true
		}
	}
	return ResourceSpec{}, false
}
