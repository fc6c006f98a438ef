package framegraph

import (
	"slices"

	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// physicalPass is one native render pass: logical passes recorded as consecutive subpasses.
type physicalPass struct {
	subpasses []*Pass
	extent    domain.Extent2D
	depth     *Resource
	deps      []int

	attachments []*Resource
	desc        domain.RenderPassDesc
	clears      []domain.ClearValue

	renderPass  domain.Handle
	framebuffer domain.Handle
}

// dependencies holds the logical dependency edges of every declared pass.
type dependencies struct {
	deps [][]*Pass
	errs []error
}

// link resolves, in declaration order, the nearest earlier writer of every resource a pass uses.
// Errors are kept per pass and only reported for passes that contribute to the output.
func (g *Graph) link() dependencies {
	d := dependencies{
		deps: make([][]*Pass, len(g.passes)),
		errs: make([]error, len(g.passes)),
	}
	lastWriter := make(map[*Resource]*Pass)

	for i, p := range g.passes {
		for _, u := range p.uses {
			w := lastWriter[u.res]
			switch {
			case w != nil && u.access == domain.AccessWrite:
				d.fail(i, zerr.With(useError(domain.ErrWriteOnlyOverwrite, p, u), "writer", w.name))
			case w != nil:
				if !slices.Contains(d.deps[i], w) {
					d.deps[i] = append(d.deps[i], w)
				}
			case u.access != domain.AccessWrite:
				d.fail(i, useError(domain.ErrMissingWriter, p, u))
			}
		}
		// A pass never depends on itself, so its own writes become visible after all its uses.
		for _, u := range p.uses {
			if u.access.Writes() {
				lastWriter[u.res] = p
			}
		}
	}
	return d
}

func (d *dependencies) fail(i int, err error) {
	if d.errs[i] == nil {
		d.errs[i] = err
	}
}

func useError(sentinel error, p *Pass, u use) error {
	err := zerr.With(sentinel, "pass", p.name)
	err = zerr.With(err, "resource", u.res.name)
	return zerr.With(err, "usage", u.usage.String())
}

// order returns the passes contributing to final in execution order.
func (g *Graph) order(final *Pass, d dependencies) ([]*Pass, error) {
	list := []*Pass{final}
	for i := 0; i < len(list); i++ {
		p := list[i]
		if err := d.errs[p.index]; err != nil {
			return nil, err
		}
		for _, dep := range d.deps[p.index] {
			// A pass needed again moves behind every pass that needs it.
			if j := slices.Index(list, dep); j >= 0 {
				list = slices.Delete(list, j, j+1)
				if j < i {
					i--
				}
			}
			list = append(list, dep)
		}
	}

	out := make([]*Pass, 0, len(list))
	for _, p := range slices.Backward(list) {
		if len(p.uses) > 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

// passExtent is the extent of p's attachments, or the output extent when it has none.
func passExtent(p *Pass, output domain.Extent2D) domain.Extent2D {
	for _, u := range p.uses {
		if u.usage != domain.UsageInputAttachment {
			return u.res.extent(output)
		}
	}
	return output
}

// merge groups consecutive work into physical passes. A later pass joins the current physical
// pass when it has the same extent, a compatible depth attachment and every pass it depends on
// is either already a subpass or a dependency of the current physical pass.
func merge(order []*Pass, d dependencies, output domain.Extent2D) []*physicalPass {
	var (
		out       []*physicalPass
		placed    = make(map[*Pass]int)
		remaining = slices.Clone(order)
	)
	for len(remaining) > 0 {
		head := remaining[0]
		remaining = remaining[1:]
		pp := &physicalPass{
			subpasses: []*Pass{head},
			extent:    passExtent(head, output),
			depth:     head.depth,
		}
		satisfied := make(map[*Pass]bool)
		satisfied[head] = true
		for _, dep := range d.deps[head.index] {
			satisfied[dep] = true
		}

		for merged := true; merged; {
			merged = false
			for j, cand := range remaining {
				if !pp.accepts(cand, d, satisfied, output) {
					continue
				}
				pp.subpasses = append(pp.subpasses, cand)
				if pp.depth == nil {
					pp.depth = cand.depth
				}
				satisfied[cand] = true
				for _, dep := range d.deps[cand.index] {
					satisfied[dep] = true
				}
				remaining = slices.Delete(remaining, j, j+1)
				merged = true
				break
			}
		}

		for _, p := range pp.subpasses {
			placed[p] = len(out)
		}
		out = append(out, pp)
	}

	for i, pp := range out {
		for _, p := range pp.subpasses {
			for _, dep := range d.deps[p.index] {
				if idx, ok := placed[dep]; ok && idx != i && !slices.Contains(pp.deps, idx) {
					pp.deps = append(pp.deps, idx)
				}
			}
		}
		slices.Sort(pp.deps)
		pp.describe()
	}
	return out
}

func (pp *physicalPass) accepts(cand *Pass, d dependencies, satisfied map[*Pass]bool, output domain.Extent2D) bool {
	if passExtent(cand, output) != pp.extent {
		return false
	}
	if pp.depth != nil && cand.depth != nil && pp.depth != cand.depth {
		return false
	}
	for _, dep := range d.deps[cand.index] {
		if !satisfied[dep] {
			return false
		}
	}
	return true
}

// describe derives the attachments, subpass layout and clear values of pp.
func (pp *physicalPass) describe() {
	index := make(map[*Resource]int)
	written := make(map[*Resource]bool)
	for _, p := range pp.subpasses {
		for _, u := range p.uses {
			if u.access.Writes() {
				written[u.res] = true
			}
		}
	}

	pp.attachments = pp.attachments[:0]
	pp.clears = pp.clears[:0]
	pp.desc = domain.RenderPassDesc{Name: pp.subpasses[0].name}
	attach := func(u use) uint32 {
		if i, ok := index[u.res]; ok {
			return uint32(i)
		}
		i := len(pp.attachments)
		index[u.res] = i
		pp.attachments = append(pp.attachments, u.res)

		load := domain.LoadOpLoad
		var clear domain.ClearValue
		if u.access == domain.AccessWrite {
			load = domain.LoadOpDontCare
			if u.clear != nil {
				load = domain.LoadOpClear
				clear = *u.clear
			}
		}
		pp.desc.Attachments = append(pp.desc.Attachments, domain.AttachmentDesc{
			Format: u.res.desc.Format,
			Load:   load,
			Store:  domain.StoreOpStore,
		})
		pp.clears = append(pp.clears, clear)
		return uint32(i)
	}

	for _, p := range pp.subpasses {
		sub := domain.SubpassDesc{Depth: domain.NoAttachment}
		for _, u := range p.uses {
			switch u.usage {
			case domain.UsageInputAttachment:
				// Inputs produced by an earlier physical pass are sampled instead.
				if written[u.res] {
					sub.Inputs = append(sub.Inputs, attach(u))
				}
			case domain.UsageColorAttachment:
				sub.Colors = append(sub.Colors, attach(u))
			case domain.UsageDepthAttachment:
				sub.Depth = int(attach(u))
			}
		}
		pp.desc.Subpasses = append(pp.desc.Subpasses, sub)
	}
}

// build runs dependency resolution, ordering and merging for the current declarations.
func (g *Graph) build(final *Pass, output domain.Extent2D) ([]*physicalPass, error) {
	d := g.link()
	order, err := g.order(final, d)
	if err != nil {
		return nil, err
	}
	return merge(order, d, output), nil
}
