package framegraph

import (
	"context"

	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/engine/recorder"
	"go.trai.ch/zerr"
)

// RecordFunc records the draw calls of one pass.
type RecordFunc func(ctx context.Context, pc *PassContext) error

// UseOption configures one resource use.
type UseOption func(*use)

// WithClear clears the attachment to v when the pass creates it.
func WithClear(v domain.ClearValue) UseOption {
	return func(u *use) { u.clear = &v }
}

type use struct {
	res    *Resource
	usage  domain.Usage
	access domain.Access
	clear  *domain.ClearValue
}

// Pass is a logical render pass. Its uses are kept in declaration order.
type Pass struct {
	graph  *Graph
	name   string
	index  int
	uses   []use
	depth  *Resource
	output bool
	record RecordFunc
}

// Name returns the pass name.
func (p *Pass) Name() string { return p.name }

// Input reads r as an input attachment.
func (p *Pass) Input(r *Resource) {
	p.addUse(use{res: r, usage: domain.UsageInputAttachment, access: domain.AccessRead})
}

// Color uses r as a color attachment.
func (p *Pass) Color(r *Resource, access domain.Access, opts ...UseOption) {
	p.addUse(newUse(r, domain.UsageColorAttachment, access, opts))
}

// Depth uses r as the depth attachment. A pass has at most one.
func (p *Pass) Depth(r *Resource, access domain.Access, opts ...UseOption) error {
	if p.depth != nil {
		return zerr.With(zerr.With(domain.ErrMultipleDepthAttachments, "pass", p.name), "depth", p.depth.name)
	}
	p.depth = r
	p.addUse(newUse(r, domain.UsageDepthAttachment, access, opts))
	return nil
}

// Output marks p as the pass whose first color attachment is presented.
func (p *Pass) Output() {
	p.output = true
	p.graph.markDirty()
}

func newUse(r *Resource, usage domain.Usage, access domain.Access, opts []UseOption) use {
	u := use{res: r, usage: usage, access: access}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

func (p *Pass) addUse(u use) {
	p.uses = append(p.uses, u)
	p.graph.markDirty()
}

// attachments returns the color and depth uses of p.
func (p *Pass) attachments() []use {
	out := make([]use, 0, len(p.uses))
	for _, u := range p.uses {
		if u.usage != domain.UsageInputAttachment {
			out = append(out, u)
		}
	}
	return out
}

// firstColor returns the first color attachment of p.
func (p *Pass) firstColor() *Resource {
	for _, u := range p.uses {
		if u.usage == domain.UsageColorAttachment {
			return u.res
		}
	}
	return nil
}

// PassContext is handed to a RecordFunc while its subpass is being recorded.
type PassContext struct {
	rec    *recorder.Recorder
	pass   *Pass
	slot   int
	extent domain.Extent2D
	images map[*Resource]domain.Handle
}

// Recorder returns the recorder of the current frame slot.
func (c *PassContext) Recorder() *recorder.Recorder { return c.rec }

// Pass returns the name of the pass being recorded.
func (c *PassContext) Pass() string { return c.pass.name }

// Slot returns the frame slot being recorded.
func (c *PassContext) Slot() int { return c.slot }

// Extent returns the extent of the physical pass.
func (c *PassContext) Extent() domain.Extent2D { return c.extent }

// Image returns the backing image of r in the current frame slot.
func (c *PassContext) Image(r *Resource) (domain.Handle, bool) {
	h, ok := c.images[r]
	return h, ok
}
