package framegraph

import (
	"context"
	"errors"
	"strconv"

	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// realize rebuilds the physical passes of s and creates their device objects.
func (g *Graph) realize(ctx context.Context, s *slot) error {
	ctx, span := g.tracer.Start(ctx, "framegraph.rebuild", ports.WithAttribute("slot", s.index))
	defer span.End()

	if err := g.release(s); err != nil {
		span.RecordError(err)
		return err
	}

	physical, err := g.build(g.final, g.extent)
	if err != nil {
		span.RecordError(err)
		return err
	}

	usage := g.imageUsage(physical, g.final)
	for _, res := range g.resources {
		u, ok := usage[res]
		if !ok {
			continue
		}
		h, err := g.images.Acquire(domain.ImageDesc{
			Format:  res.desc.Format,
			Extent:  res.extent(g.extent),
			Usage:   u,
			Samples: 1,
		})
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to acquire image"), "resource", res.name)
		}
		s.images[res] = h
	}

	s.physical = physical
	for i, pp := range physical {
		if err := g.createPass(s, pp); err != nil {
			return zerr.With(err, "physical_pass", i)
		}
		g.recordVertex(ctx, physical, i)
	}

	s.dirty = false
	g.rebuilds++
	span.SetAttribute("physical_passes", len(physical))
	g.logger.Debug("rebuilt frame slot", "slot", s.index, "physical_passes", len(physical), "extent", g.extent.String())
	return nil
}

// imageUsage unions the usage flags of every use of every resource touched by physical.
func (g *Graph) imageUsage(physical []*physicalPass, final *Pass) map[*Resource]domain.ImageUsage {
	usage := make(map[*Resource]domain.ImageUsage)
	for _, pp := range physical {
		for _, p := range pp.subpasses {
			for _, u := range p.uses {
				switch u.usage {
				case domain.UsageColorAttachment:
					usage[u.res] |= domain.ImageUsageColorAttachment
				case domain.UsageDepthAttachment:
					usage[u.res] |= domain.ImageUsageDepthStencilAttachment
				case domain.UsageInputAttachment:
					if writerOf(pp, u.res) != nil {
						usage[u.res] |= domain.ImageUsageInputAttachment
					} else {
						usage[u.res] |= domain.ImageUsageSampled
					}
				}
			}
		}
	}
	usage[final.firstColor()] |= domain.ImageUsageTransferSrc
	return usage
}

func writerOf(pp *physicalPass, r *Resource) *Pass {
	for _, p := range pp.subpasses {
		for _, u := range p.uses {
			if u.res == r && u.access.Writes() {
				return p
			}
		}
	}
	return nil
}

func (g *Graph) createPass(s *slot, pp *physicalPass) error {
	rp, err := g.device.CreateRenderPass(pp.desc)
	if err != nil {
		return zerr.Wrap(err, "failed to create render pass")
	}
	pp.renderPass = rp

	views := make([]domain.Handle, len(pp.attachments))
	for i, res := range pp.attachments {
		views[i] = s.images[res]
	}
	fb, err := g.device.CreateFramebuffer(domain.FramebufferDesc{
		RenderPass:  rp,
		Attachments: views,
		Extent:      pp.extent,
	})
	if err != nil {
		return zerr.Wrap(err, "failed to create framebuffer")
	}
	pp.framebuffer = fb
	return nil
}

func (g *Graph) recordVertex(ctx context.Context, physical []*physicalPass, i int) {
	if g.telemetry == nil {
		return
	}
	pp := physical[i]
	inputs := make([]string, 0, len(pp.deps))
	for _, dep := range pp.deps {
		inputs = append(inputs, physicalName(physical[dep], dep))
	}
	_, v := g.telemetry.Record(ctx, physicalName(pp, i), ports.WithInputs(inputs...))
	for _, p := range pp.subpasses {
		_, _ = v.Stdout().Write([]byte("subpass " + p.name + "\n"))
	}
	v.Complete(nil)
}

func physicalName(pp *physicalPass, i int) string {
	return "#" + strconv.Itoa(i) + " " + pp.subpasses[0].name
}

// release returns the images of s to the image cache and destroys its render passes and framebuffers.
func (g *Graph) release(s *slot) error {
	var errs []error
	for _, pp := range s.physical {
		if !pp.framebuffer.IsNull() {
			errs = append(errs, g.device.Destroy(pp.framebuffer))
		}
		if !pp.renderPass.IsNull() {
			errs = append(errs, g.device.Destroy(pp.renderPass))
		}
	}
	s.physical = nil
	for res, h := range s.images {
		errs = append(errs, g.images.Release(h))
		delete(s.images, res)
	}
	if err := errors.Join(errs...); err != nil {
		return zerr.Wrap(err, "failed to release frame slot")
	}
	return nil
}
