package framegraph

import (
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// validate checks the declarations against the output extent and returns the output pass.
// It does not modify the graph.
func (g *Graph) validate(output domain.Extent2D) (*Pass, error) {
	if output.IsZero() {
		return nil, zerr.With(domain.ErrInvalidExtent, "surface", output.String())
	}

	var final *Pass
	for _, p := range g.passes {
		if p.output {
			if final != nil {
				return nil, zerr.With(zerr.With(domain.ErrMultipleOutputPasses, "first", final.name), "second", p.name)
			}
			final = p
		}
		if err := g.validatePass(p, output); err != nil {
			return nil, err
		}
	}
	if final == nil {
		return nil, domain.ErrNoOutputPass
	}
	if final.firstColor() == nil {
		return nil, zerr.With(domain.ErrOutputWithoutColor, "pass", final.name)
	}
	return final, nil
}

func (g *Graph) validatePass(p *Pass, output domain.Extent2D) error {
	var (
		extent domain.Extent2D
		first  *Resource
	)
	for _, u := range p.uses {
		if u.res == nil || u.res.graph != g {
			name := "<nil>"
			if u.res != nil {
				name = u.res.name
			}
			return zerr.With(zerr.With(domain.ErrForeignResource, "pass", p.name), "resource", name)
		}
		if u.usage == domain.UsageInputAttachment {
			continue
		}
		if (u.usage == domain.UsageDepthAttachment) != u.res.desc.Format.IsDepth() {
			err := zerr.With(domain.ErrDepthFormatMismatch, "pass", p.name)
			err = zerr.With(err, "resource", u.res.name)
			return zerr.With(err, "format", u.res.desc.Format.String())
		}

		e := u.res.extent(output)
		if e.IsZero() {
			return zerr.With(zerr.With(domain.ErrInvalidExtent, "resource", u.res.name), "extent", e.String())
		}
		if first == nil {
			first, extent = u.res, e
			continue
		}
		if e != extent {
			err := zerr.With(domain.ErrExtentMismatch, "pass", p.name)
			err = zerr.With(err, first.name, extent.String())
			return zerr.With(err, u.res.name, e.String())
		}
	}
	return nil
}
