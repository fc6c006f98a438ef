// Package recorder records draw calls into a command buffer and, before each draw, makes sure
// the bound pipeline and descriptor sets match the current graphics and binding state.
package recorder

import (
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/framegraph/internal/engine/pool"
	"go.trai.ch/zerr"
)

// Stats counts the work a Recorder issued.
type Stats struct {
	Draws            int
	PipelineBinds    int
	SetBinds         int
	DescriptorWrites int
}

type boundSet struct {
	set    domain.Handle
	layout domain.Key
	valid  bool
}

// Recorder records into one command buffer. It is not safe for concurrent use.
type Recorder struct {
	device    ports.Device
	cmd       ports.CommandBuffer
	pipelines *pool.PipelineCache
	sets      *pool.DescriptorSetCache

	graphics *domain.GraphicsStateHash
	bindings *domain.BindingState
	program  ports.ShaderProgram

	renderPass    domain.Handle
	subpass       uint32
	inPass        bool
	pipelineBound bool
	boundState    domain.Key
	bound         [domain.MaxDescriptorSets]boundSet
	held          []domain.Handle

	stats Stats
}

// New returns a recorder for cmd that takes pipelines from pipelines and descriptor sets from sets.
func New(device ports.Device, cmd ports.CommandBuffer, pipelines *pool.PipelineCache, sets *pool.DescriptorSetCache) *Recorder {
	return &Recorder{
		device:    device,
		cmd:       cmd,
		pipelines: pipelines,
		sets:      sets,
		graphics:  domain.NewGraphicsStateHash(domain.DefaultGraphicsState()),
		bindings:  domain.NewBindingState(),
	}
}

// Begin starts recording a subpass. Pipelines and descriptor sets bound earlier are not reused.
func (r *Recorder) Begin(renderPass domain.Handle, subpass uint32) {
	r.renderPass = renderPass
	r.subpass = subpass
	r.inPass = true
	r.pipelineBound = false
	r.bound = [domain.MaxDescriptorSets]boundSet{}
}

// End finishes the current subpass.
func (r *Recorder) End() {
	r.inPass = false
}

// Reset returns every pipeline and descriptor set acquired since the last Reset to the caches.
// It is called once the GPU has finished the frame the recorder was used for.
func (r *Recorder) Reset() error {
	for _, h := range r.held {
		if err := r.pipelines.Release(h); err != nil {
			return err
		}
	}
	r.held = r.held[:0]
	r.sets.ReleaseAll()
	r.bound = [domain.MaxDescriptorSets]boundSet{}
	r.pipelineBound = false
	r.stats = Stats{}
	return nil
}

// Command returns the command buffer being recorded.
func (r *Recorder) Command() ports.CommandBuffer { return r.cmd }

// SetProgram selects the shader program for subsequent draws.
func (r *Recorder) SetProgram(p ports.ShaderProgram) {
	r.program = p
	r.graphics.SetProgram(p.ID())
}

// Graphics returns the tracked graphics state.
func (r *Recorder) Graphics() *domain.GraphicsStateHash { return r.graphics }

// Bindings returns the tracked binding state.
func (r *Recorder) Bindings() *domain.BindingState { return r.bindings }

// BindImage binds a sampled image.
func (r *Recorder) BindImage(set, binding uint32, image domain.Handle, filter domain.Filter) error {
	return r.bindings.Bind(set, binding, domain.ImageBinding{Image: image, Filter: filter})
}

// BindInputAttachment binds an attachment written by an earlier subpass.
func (r *Recorder) BindInputAttachment(set, binding uint32, image domain.Handle) error {
	return r.bindings.Bind(set, binding, domain.InputAttachmentBinding{Image: image})
}

// BindBuffer binds a range of a uniform buffer.
func (r *Recorder) BindBuffer(set, binding uint32, buffer domain.Handle, offset, size uint64) error {
	return r.bindings.Bind(set, binding, domain.BufferBinding{Buffer: buffer, Offset: offset, Range: size})
}

// BindDynamicBuffer binds a uniform buffer with a dynamic offset.
func (r *Recorder) BindDynamicBuffer(set, binding uint32, buffer domain.Handle, size uint64, offset uint32) error {
	return r.bindings.Bind(set, binding, domain.DynamicBufferBinding{Buffer: buffer, Range: size, Offset: offset})
}

// BindVertexBuffer binds a vertex buffer directly.
func (r *Recorder) BindVertexBuffer(binding uint32, buffer domain.Handle, offset uint64) {
	r.cmd.BindVertexBuffer(binding, buffer, offset)
}

// Draw flushes state and records a non-indexed draw.
func (r *Recorder) Draw(vertices, instances, firstVertex, firstInstance uint32) error {
	if err := r.flush(); err != nil {
		return err
	}
	r.cmd.Draw(vertices, instances, firstVertex, firstInstance)
	r.stats.Draws++
	return nil
}

// DrawIndexed flushes state and records an indexed draw.
func (r *Recorder) DrawIndexed(indices, instances, firstIndex uint32, vertexOffset int32, firstInstance uint32) error {
	if err := r.flush(); err != nil {
		return err
	}
	r.cmd.DrawIndexed(indices, instances, firstIndex, vertexOffset, firstInstance)
	r.stats.Draws++
	return nil
}

// Stats returns the work recorded since the last Reset.
func (r *Recorder) Stats() Stats { return r.stats }

func (r *Recorder) flush() error {
	if r.program == nil {
		return domain.ErrNoProgram
	}
	if !r.inPass {
		return domain.ErrNotInRenderPass
	}
	if err := r.flushPipeline(); err != nil {
		return err
	}

	var flushed [domain.MaxDescriptorSets]bool
	for _, set := range r.program.ActiveSets() {
		if err := r.flushSet(set); err != nil {
			return err
		}
		if set < domain.MaxDescriptorSets {
			flushed[set] = true
		}
	}
	for set := range uint32(domain.MaxDescriptorSets) {
		// Changes to sets the program does not read must still be written by a later draw.
		if !flushed[set] && r.bindings.Dirty(set) {
			r.bound[set].valid = false
		}
	}
	r.bindings.ClearDirty()
	return nil
}

func (r *Recorder) flushPipeline() error {
	key := r.graphics.Key()
	if r.pipelineBound && key == r.boundState {
		return nil
	}
	desc := domain.NewPipelineDesc(r.graphics, r.renderPass, r.subpass, r.program.PipelineLayout())
	h, err := r.pipelines.Acquire(desc)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to acquire pipeline"), "state", r.graphics.Hash().String())
	}
	r.held = append(r.held, h)
	r.cmd.BindPipeline(h)
	r.boundState = key
	r.pipelineBound = true
	r.stats.PipelineBinds++
	return nil
}

func (r *Recorder) flushSet(set uint32) error {
	layout, ok := r.program.SetLayout(set)
	if !ok || set >= domain.MaxDescriptorSets {
		return zerr.With(domain.ErrInvalidDescriptorSet, "set", set)
	}
	b := &r.bound[set]
	if b.valid && !r.bindings.Dirty(set) && b.layout == layout.Key() {
		return nil
	}

	ds, err := r.sets.Acquire(layout)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to acquire descriptor set"), "set", set)
	}

	// A set taken from the cache has no trustworthy contents, so every binding is written.
	bound := r.bindings.Bound(set)
	if len(bound) > 0 {
		writes := make([]domain.DescriptorWrite, 0, len(bound))
		for _, res := range bound {
			writes = append(writes, domain.DescriptorWrite{Binding: res.Binding, Value: res.Value})
		}
		if err := r.device.UpdateDescriptorSet(ds, writes); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to update descriptor set"), "set", set)
		}
		r.stats.DescriptorWrites += len(writes)
	}

	r.cmd.BindDescriptorSet(r.program.PipelineLayout(), set, ds, r.bindings.DynamicOffsets(set))
	*b = boundSet{set: ds, layout: layout.Key(), valid: true}
	r.stats.SetBinds++
	return nil
}
