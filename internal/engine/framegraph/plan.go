package framegraph

import (
	"go.trai.ch/framegraph/internal/core/domain"
)

// PlanEntry describes one physical pass of a plan.
type PlanEntry struct {
	Subpasses    []string
	Extent       domain.Extent2D
	Depth        string
	Dependencies []int
	Attachments  []string
}

// Plan validates the declarations against the current surface extent and returns the physical
// passes a frame would record, without creating any device object.
func (g *Graph) Plan() ([]PlanEntry, error) {
	if g.closed {
		return nil, domain.ErrGraphClosed
	}
	extent := g.surface.Extent()
	final, err := g.validate(extent)
	if err != nil {
		return nil, err
	}
	physical, err := g.build(final, extent)
	if err != nil {
		return nil, err
	}

	plan := make([]PlanEntry, 0, len(physical))
	for _, pp := range physical {
		entry := PlanEntry{
			Extent:       pp.extent,
			Dependencies: pp.deps,
		}
		for _, p := range pp.subpasses {
			entry.Subpasses = append(entry.Subpasses, p.name)
		}
		if pp.depth != nil {
			entry.Depth = pp.depth.name
		}
		for _, res := range pp.attachments {
			entry.Attachments = append(entry.Attachments, res.name)
		}
		plan = append(plan, entry)
	}
	return plan, nil
}
