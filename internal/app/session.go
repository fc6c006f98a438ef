package app

import (
	"context"
	"errors"

	"go.trai.ch/framegraph/internal/adapters/headless" //nolint:depguard // Wired in app layer
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/engine/framegraph"
	"go.trai.ch/framegraph/internal/engine/pool"
	"go.trai.ch/zerr"
)

// uniformSize is the size of the per-pass uniform block bound at set 0.
const uniformSize = 256

// session is one graph description instantiated on a headless device.
type session struct {
	spec     *domain.GraphSpec
	device   *headless.Device
	surface  *headless.Surface
	buffers  *pool.BufferCache
	uniforms domain.Handle
	programs []*headless.Program
	graph    *framegraph.Graph
}

// newSession creates the device objects for spec and declares its resources and passes.
func newSession(spec *domain.GraphSpec, opts ...framegraph.Option) (s *session, err error) {
	s = &session{spec: spec, device: headless.New()}
	defer func() {
		if err != nil {
			err = errors.Join(err, s.Close())
			s = nil
		}
	}()

	// One extra image so that acquiring never waits on a presented frame.
	if s.surface, err = headless.NewSurface(s.device, spec.Extent, spec.FramesInFlight+1); err != nil {
		return s, err
	}
	s.buffers = pool.NewBufferCache(s.device)
	s.uniforms, err = s.buffers.Acquire(domain.BufferDesc{
		Size:   uniformSize,
		Usage:  domain.BufferUsageUniform,
		Memory: domain.MemoryHostVisible | domain.MemoryHostCoherent,
	})
	if err != nil {
		return s, err
	}
	if s.graph, err = framegraph.New(s.device, s.surface, spec.FramesInFlight, opts...); err != nil {
		return s, err
	}
	return s, s.declare()
}

func (s *session) declare() error {
	resources := make(map[string]*framegraph.Resource, len(s.spec.Resources))
	for _, rs := range s.spec.Resources {
		r, err := s.graph.CreateResource(rs.Name, framegraph.ResourceDesc{
			Format: rs.Format,
			Size:   rs.Size,
			Extent: rs.Extent,
			Scale:  rs.Scale,
		})
		if err != nil {
			return err
		}
		resources[rs.Name] = r
	}

	for i, ps := range s.spec.Passes {
		var inputs []*framegraph.Resource
		for _, u := range ps.Uses {
			if u.Usage == domain.UsageInputAttachment {
				inputs = append(inputs, resources[u.Resource])
			}
		}

		var record framegraph.RecordFunc
		if ps.Draws > 0 {
			program, err := s.program(uint64(i+1), len(inputs))
			if err != nil {
				return zerr.With(err, "pass", ps.Name)
			}
			record = drawPass(program, s.uniforms, inputs, ps.Draws)
		}

		p, err := s.graph.CreatePass(ps.Name, record)
		if err != nil {
			return err
		}
		for _, u := range ps.Uses {
			r, ok := resources[u.Resource]
			if !ok {
				return zerr.With(zerr.With(domain.ErrUnknownResource, "resource", u.Resource), "pass", ps.Name)
			}
			var opts []framegraph.UseOption
			if u.Clear != nil {
				opts = append(opts, framegraph.WithClear(*u.Clear))
			}
			switch u.Usage {
			case domain.UsageInputAttachment:
				p.Input(r)
			case domain.UsageColorAttachment:
				p.Color(r, u.Access, opts...)
			case domain.UsageDepthAttachment:
				if err := p.Depth(r, u.Access, opts...); err != nil {
					return err
				}
			}
		}
		if ps.Output {
			p.Output()
		}
	}
	return nil
}

// program creates a shader program with a uniform buffer at set 0 and one sampled image per
// input at set 1.
func (s *session) program(id uint64, inputs int) (*headless.Program, error) {
	sets := map[uint32][]domain.LayoutBinding{
		0: {{Binding: 0, Type: domain.DescriptorUniformBuffer, Count: 1}},
	}
	for i := range inputs {
		sets[1] = append(sets[1], domain.LayoutBinding{
			Binding: uint32(i), //nolint:gosec // bounded by the number of uses
			Type:    domain.DescriptorCombinedImageSampler,
			Count:   1,
		})
	}
	p, err := headless.NewProgram(s.device, id, sets)
	if err != nil {
		return nil, err
	}
	s.programs = append(s.programs, p)
	return p, nil
}

func drawPass(program *headless.Program, uniforms domain.Handle, inputs []*framegraph.Resource, draws int) framegraph.RecordFunc {
	return func(_ context.Context, pc *framegraph.PassContext) error {
		rec := pc.Recorder()
		rec.SetProgram(program)

		e := pc.Extent()
		rec.Graphics().SetViewport(
			domain.Viewport{Width: float32(e.Width), Height: float32(e.Height), MaxDepth: 1},
			domain.Rect{Extent: e},
		)
		if err := rec.BindBuffer(0, 0, uniforms, 0, uniformSize); err != nil {
			return err
		}
		for i, in := range inputs {
			img, ok := pc.Image(in)
			if !ok {
				return zerr.With(zerr.New("input image is not realized"), "resource", in.Name())
			}
			//nolint:gosec // bounded by the number of uses
			if err := rec.BindImage(1, uint32(i), img, domain.FilterLinear); err != nil {
				return err
			}
		}
		for range draws {
			if err := rec.Draw(3, 1, 0, 0); err != nil {
				return err
			}
		}
		return nil
	}
}

// Close releases every device object of the session.
func (s *session) Close() error {
	var errs []error
	if s.graph != nil {
		errs = append(errs, s.graph.Close())
	}
	for _, p := range s.programs {
		errs = append(errs, p.Close())
	}
	if s.buffers != nil {
		errs = append(errs, s.buffers.DeleteAll())
	}
	if s.surface != nil {
		errs = append(errs, s.surface.Close())
	}
	return errors.Join(errs...)
}
