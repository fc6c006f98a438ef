package framegraph

import (
	"context"

	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// Process records and submits one frame, rebuilding the current frame slot first if the
// declarations or the surface extent changed since it was last built.
func (g *Graph) Process(ctx context.Context) (err error) {
	if g.closed {
		return domain.ErrGraphClosed
	}
	ctx, span := g.tracer.Start(ctx, "framegraph.process", ports.WithAttribute("frame", g.frameCount))
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	if err := g.prepare(); err != nil {
		return err
	}

	s := g.slots.Current()
	span.SetAttribute("slot", s.index)
	if err := g.device.WaitForFence(ctx, s.fence); err != nil {
		return zerr.Wrap(err, "failed to wait for frame fence")
	}
	if s.dirty {
		if err := g.realize(ctx, s); err != nil {
			return err
		}
	}
	if err := s.rec.Reset(); err != nil {
		return err
	}

	target, err := g.surface.Acquire(ctx, s.acquired)
	if err != nil {
		return zerr.Wrap(err, "failed to acquire surface image")
	}
	if err := g.record(ctx, s, target); err != nil {
		return err
	}

	// The fence stays signaled until the frame is about to be submitted, so a failed frame
	// never leaves Close waiting on it.
	if err := g.device.ResetFence(s.fence); err != nil {
		return zerr.Wrap(err, "failed to reset frame fence")
	}
	if err := g.device.Submit(ctx, domain.Submission{
		Commands: s.cmd.Handle(),
		Wait:     []domain.Handle{s.acquired},
		Signal:   []domain.Handle{s.rendered},
		Fence:    s.fence,
	}); err != nil {
		return zerr.Wrap(err, "failed to submit frame")
	}
	if err := g.surface.Present(ctx, target, s.rendered); err != nil {
		return zerr.Wrap(err, "failed to present frame")
	}

	g.frames.Advance()
	g.frameCount++
	return nil
}

// prepare validates the declarations if anything changed and marks every slot for rebuild.
func (g *Graph) prepare() error {
	if extent := g.surface.Extent(); extent != g.extent {
		g.extent = extent
		g.markDirty()
	}
	if !g.dirty {
		return nil
	}
	final, err := g.validate(g.extent)
	if err != nil {
		return err
	}
	g.final = final
	g.dirty = false
	for _, s := range g.slots.All() {
		s.dirty = true
	}
	return nil
}

func (g *Graph) record(ctx context.Context, s *slot, target domain.Handle) error {
	if err := s.cmd.Reset(); err != nil {
		return zerr.Wrap(err, "failed to reset command buffer")
	}
	if err := s.cmd.Begin(); err != nil {
		return zerr.Wrap(err, "failed to begin command buffer")
	}

	for _, pp := range s.physical {
		s.cmd.BeginRenderPass(pp.renderPass, pp.framebuffer, pp.extent, pp.clears)
		for i, p := range pp.subpasses {
			if i > 0 {
				s.cmd.NextSubpass()
			}
			s.rec.Begin(pp.renderPass, uint32(i))
			if p.record != nil {
				pc := &PassContext{rec: s.rec, pass: p, slot: s.index, extent: pp.extent, images: s.images}
				if err := p.record(ctx, pc); err != nil {
					s.rec.End()
					return zerr.With(zerr.Wrap(err, "failed to record pass"), "pass", p.name)
				}
			}
			s.rec.End()
		}
		s.cmd.EndRenderPass()
	}

	s.cmd.BlitImage(s.images[g.final.firstColor()], target)
	if err := s.cmd.End(); err != nil {
		return zerr.Wrap(err, "failed to end command buffer")
	}
	return nil
}
