package config

import (
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Graphfile represents the structure of a graph.yaml file.
type Graphfile struct {
	Version        string        `yaml:"version"`
	Name           string        `yaml:"name"`
	FramesInFlight int           `yaml:"framesInFlight"`
	Extent         []uint32      `yaml:"extent"`
	Resources      []ResourceDTO `yaml:"resources"`
	Passes         []PassDTO     `yaml:"passes"`
}

// ResourceDTO represents a resource definition in the graph file.
type ResourceDTO struct {
	Name   string    `yaml:"name"`
	Format string    `yaml:"format"`
	Size   string    `yaml:"size"`
	Extent []uint32  `yaml:"extent"`
	Scale  []float32 `yaml:"scale"`
}

// PassDTO represents a pass definition in the graph file.
type PassDTO struct {
	Name   string   `yaml:"name"`
	Output bool     `yaml:"output"`
	Draws  int      `yaml:"draws"`
	Uses   []UseDTO `yaml:"uses"`
}

// UseDTO represents one resource use of a pass.
type UseDTO struct {
	Resource string    `yaml:"resource"`
	Usage    string    `yaml:"usage"`
	Access   string    `yaml:"access"`
	Clear    *ClearDTO `yaml:"clear"`
}

// ClearDTO is either a color ([r, g, b, a]) or a depth value.
type ClearDTO struct {
	Color []float32
	Depth *float32
}

// UnmarshalYAML accepts a sequence for colors and a scalar for depth.
func (c *ClearDTO) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		return node.Decode(&c.Color)
	case yaml.ScalarNode:
		var d float32
		if err := node.Decode(&d); err != nil {
			return err
		}
		c.Depth = &d
		return nil
	default:
		return zerr.With(zerr.New("clear must be a color list or a depth value"), "line", node.Line)
	}
}
